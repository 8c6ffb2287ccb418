package triplesec

// Rotate re-keys an envelope under a new password without the caller having
// to separately decrypt and encrypt (and remember to zeroize the recovered
// plaintext in between). It decrypts envelope under oldCipher, derives a
// fresh Cipher from newPassword and a freshly drawn salt, re-encrypts the
// recovered plaintext under it, and scrubs the intermediate plaintext
// before returning (§4.7).
//
// Decryption failures (InvalidCiphertext, MisMatchedCipherSalt,
// MacMismatch) propagate unchanged. This is not key-wrapping: no key ever
// wraps another key, and the full cascade runs again from a fresh Cipher.
func Rotate(oldCipher *Cipher, envelope, newPassword []byte, src Source) (newEnvelope []byte, next Source, err error) {
	plaintext, err := DecryptWithCipher(oldCipher, envelope)
	if err != nil {
		return nil, src, err
	}
	defer scrub(plaintext)

	newSalt, next, err := src.Draw(SaltLen)
	if err != nil {
		return nil, src, err
	}

	newCipher, err := NewCipher(newPassword, newSalt)
	if err != nil {
		return nil, next, err
	}
	defer newCipher.Scrub()

	newEnvelope, next, err = EncryptWithCipher(newCipher, plaintext, next)
	if err != nil {
		return nil, next, err
	}

	return newEnvelope, next, nil
}

// RotatePassword is a convenience wrapper around Rotate using the system
// RNG, for callers that don't need deterministic-generator state threading.
func RotatePassword(oldCipher *Cipher, envelope, newPassword []byte) ([]byte, error) {
	newEnvelope, _, err := Rotate(oldCipher, envelope, newPassword, NewSystemRNG())
	return newEnvelope, err
}
