package triplesec

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Cipher is a reusable value holding the subkeys derived from a
// (password, salt) pair. It amortizes the Scrypt cost (§4.2) across every
// message encrypted or decrypted under the same password and salt.
//
// A Cipher is immutable after construction and safe for concurrent use by
// multiple encryptors/decryptors provided each supplies its own Source.
type Cipher struct {
	password []byte // held only to support NewCipherWithSalt-style reuse
	salt     [SaltLen]byte

	macKey1    []byte // 48B, HMAC-SHA-512
	macKey2    []byte // 48B, HMAC-SHA3-512
	aesKey     []byte // 32B
	twofishKey []byte // 32B
	salsaKey   []byte // 32B
	reserved   []byte // 72B, unused per v3
}

// NewCipher derives a fresh Cipher from password and salt.
//
// It fails with InvalidPassword if the password is empty, or with
// InvalidSaltLength if the salt is not exactly SaltLen bytes.
func NewCipher(password, salt []byte) (*Cipher, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateSalt(salt); err != nil {
		return nil, err
	}
	return newCipherUnchecked(password, salt)
}

// NewCipherWithSalt is an alias for NewCipher, named to emphasize that the
// caller is supplying a salt recovered from an existing envelope (e.g. via
// CheckPrefix) rather than asking for a fresh random one.
func NewCipherWithSalt(password, salt []byte) (*Cipher, error) {
	return NewCipher(password, salt)
}

// newCipherUnchecked derives subkeys without re-validating password/salt;
// callers that have already validated (e.g. the session façade, which
// generates its own salt) use this to avoid duplicate checks.
func newCipherUnchecked(password, salt []byte) (*Cipher, error) {
	megaKey, err := scrypt.Key(password, salt, ScryptN, ScryptR, ScryptP, megaKeyLen)
	if err != nil {
		return nil, newEncryptionError(RngFailure, err)
	}

	c := &Cipher{
		password: append([]byte(nil), password...),
	}
	copy(c.salt[:], salt)

	off := 0
	c.macKey1 = megaKey[off : off+MacKeyLen]
	off += MacKeyLen
	c.macKey2 = megaKey[off : off+MacKeyLen]
	off += MacKeyLen
	c.aesKey = megaKey[off : off+CipherKeyLen]
	off += CipherKeyLen
	c.twofishKey = megaKey[off : off+CipherKeyLen]
	off += CipherKeyLen
	c.salsaKey = megaKey[off : off+CipherKeyLen]
	off += CipherKeyLen
	c.reserved = megaKey[off : off+reservedKeyLen]
	off += reservedKeyLen

	if off != megaKeyLen {
		return nil, newEncryptionError(RngFailure, fmt.Errorf("mega key partition accounted for %d of %d bytes", off, megaKeyLen))
	}

	return c, nil
}

// Salt returns the 16-byte salt this Cipher was derived with.
func (c *Cipher) Salt() []byte {
	salt := make([]byte, SaltLen)
	copy(salt, c.salt[:])
	return salt
}

// Scrub zeroizes this Cipher's password and derived subkey material. Call
// it once the Cipher is no longer needed; operations attempted afterward
// are undefined.
func (c *Cipher) Scrub() {
	scrub(c.password)
	scrub(c.macKey1)
	scrub(c.macKey2)
	scrub(c.aesKey)
	scrub(c.twofishKey)
	scrub(c.salsaKey)
	scrub(c.reserved)
	for i := range c.salt {
		c.salt[i] = 0
	}
}

// scrub overwrites b with zeroes in place. Defense-in-depth against
// subkey material lingering in memory after a Cipher is dropped.
func scrub(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
