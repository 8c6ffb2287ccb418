package triplesec

// Encrypt is the one-shot encryption façade: it draws a fresh random salt,
// builds a Cipher, delegates to EncryptWithCipher using the system RNG, and
// discards the Cipher. Use NewCipher + EncryptWithCipher directly instead
// when encrypting more than one message under the same password, to amortize
// the Scrypt cost (§4.2 rationale).
func Encrypt(password, plaintext []byte) ([]byte, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	salt, _, err := NewSystemRNG().Draw(SaltLen)
	if err != nil {
		return nil, err
	}

	c, err := newCipherUnchecked(password, salt)
	if err != nil {
		return nil, err
	}
	defer c.Scrub()

	envelope, _, err := EncryptWithCipher(c, plaintext, NewSystemRNG())
	if err != nil {
		return nil, err
	}
	return envelope, nil
}

// Decrypt is the one-shot decryption façade: it recovers the salt from the
// envelope's header via CheckPrefix, builds a Cipher with NewCipherWithSalt,
// and delegates to DecryptWithCipher.
func Decrypt(password, envelope []byte) ([]byte, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	header, err := CheckPrefix(envelope)
	if err != nil {
		return nil, err
	}

	c, err := NewCipherWithSalt(password, header.Salt)
	if err != nil {
		return nil, err
	}
	defer c.Scrub()

	return DecryptWithCipher(c, envelope)
}
