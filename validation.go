package triplesec

import "fmt"

// Input validation helpers for defensive programming at the package's
// external entry points.

// validatePassword checks that a password is non-empty.
func validatePassword(password []byte) error {
	if len(password) == 0 {
		return newEncryptionError(InvalidPassword, fmt.Errorf("password is empty"))
	}
	return nil
}

// validateSalt checks that a caller-supplied salt has the fixed TripleSec length.
func validateSalt(salt []byte) error {
	if len(salt) != SaltLen {
		return newEncryptionError(InvalidSaltLength,
			fmt.Errorf("salt must be %d bytes, got %d", SaltLen, len(salt)))
	}
	return nil
}

// validatePlaintext checks that a plaintext is non-empty.
func validatePlaintext(plaintext []byte) error {
	if len(plaintext) == 0 {
		return newEncryptionError(ZeroLengthPlaintext, fmt.Errorf("plaintext is empty"))
	}
	return nil
}

// validateEnvelopeLength checks that an envelope is at least long enough to
// hold a header.
func validateEnvelopeLength(envelope []byte) error {
	if len(envelope) < HeaderLen {
		return newDecryptionError(InvalidCiphertext,
			fmt.Errorf("envelope too short: got %d bytes, need at least %d", len(envelope), HeaderLen))
	}
	return nil
}

// validateKeyLen checks that a key slice has the expected length, used
// internally after partitioning the mega key.
func validateKeyLen(key []byte, name string, expected int) error {
	if len(key) != expected {
		return fmt.Errorf("%s: expected %d bytes, got %d", name, expected, len(key))
	}
	return nil
}
