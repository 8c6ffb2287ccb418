package triplesec

import (
	"errors"
	"fmt"
)

// EncryptionErrorKind enumerates the ways encryption can fail.
type EncryptionErrorKind uint8

const (
	// ZeroLengthPlaintext means the caller asked to encrypt an empty message.
	ZeroLengthPlaintext EncryptionErrorKind = iota
	// InvalidPassword means the password was empty.
	InvalidPassword
	// InvalidSaltLength means a caller-supplied salt was not 16 bytes.
	InvalidSaltLength
	// RngFailure means the RNG provider could not deliver the requested bytes.
	// Failures of Scrypt key derivation and of cipher setup inside
	// EncryptWithCipher are also reported under this kind.
	RngFailure
)

func (k EncryptionErrorKind) String() string {
	switch k {
	case ZeroLengthPlaintext:
		return "zero length plaintext"
	case InvalidPassword:
		return "invalid password"
	case InvalidSaltLength:
		return "invalid salt length"
	case RngFailure:
		return "rng failure"
	default:
		return "unknown encryption error"
	}
}

// EncryptionError represents a failure to encrypt a message.
type EncryptionError struct {
	Kind EncryptionErrorKind
	Err  error // underlying error, if any
}

func (e *EncryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("triplesec: encrypt: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("triplesec: encrypt: %s", e.Kind)
}

func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// DecryptionErrorKind enumerates the ways decryption can fail.
type DecryptionErrorKind uint8

const (
	// InvalidCiphertext means the envelope was too short, had a bad magic,
	// or carried an unsupported version.
	InvalidCiphertext DecryptionErrorKind = iota
	// MisMatchedCipherSalt means the envelope's salt differs from the
	// supplied Cipher's salt. This is a batch-API misuse, distinct from
	// forgery, and is always reported before any MAC work runs.
	MisMatchedCipherSalt
	// MacMismatch means MAC verification failed: forgery or corruption.
	MacMismatch
)

func (k DecryptionErrorKind) String() string {
	switch k {
	case InvalidCiphertext:
		return "invalid ciphertext"
	case MisMatchedCipherSalt:
		return "mismatched cipher salt"
	case MacMismatch:
		return "mac mismatch"
	default:
		return "unknown decryption error"
	}
}

// DecryptionError represents a failure to decrypt or authenticate an envelope.
type DecryptionError struct {
	Kind DecryptionErrorKind
	Err  error // underlying error, if any
}

func (e *DecryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("triplesec: decrypt: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("triplesec: decrypt: %s", e.Kind)
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// newEncryptionError builds an *EncryptionError of the given kind.
func newEncryptionError(kind EncryptionErrorKind, err error) error {
	return &EncryptionError{Kind: kind, Err: err}
}

// newDecryptionError builds a *DecryptionError of the given kind.
func newDecryptionError(kind DecryptionErrorKind, err error) error {
	return &DecryptionError{Kind: kind, Err: err}
}

// IsEncryptionErrorKind reports whether err is an *EncryptionError of kind.
func IsEncryptionErrorKind(err error, kind EncryptionErrorKind) bool {
	var ee *EncryptionError
	if !errors.As(err, &ee) {
		return false
	}
	return ee.Kind == kind
}

// IsDecryptionErrorKind reports whether err is a *DecryptionError of kind.
func IsDecryptionErrorKind(err error, kind DecryptionErrorKind) bool {
	var de *DecryptionError
	if !errors.As(err, &de) {
		return false
	}
	return de.Kind == kind
}
