package triplesec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha512"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/crypto/sha3"
	"golang.org/x/crypto/twofish"
)

// EncryptWithCipher runs the full TripleSec v3 cascade over plaintext using
// an already-derived Cipher and draws a fresh IV bundle from src.
//
// Pipeline (§4.4): XSalsa20, then Twofish-256-CTR, then AES-256-CTR; then
// HMAC-SHA-512 and HMAC-SHA3-512 over magic‖version‖salt‖ivs‖ciphertext.
// Fails with ZeroLengthPlaintext if plaintext is empty.
func EncryptWithCipher(c *Cipher, plaintext []byte, src Source) (envelope []byte, next Source, err error) {
	if err := validatePlaintext(plaintext); err != nil {
		return nil, src, err
	}

	ivAES, ivTwofish, ivSalsa, next, err := drawIVBundle(src)
	if err != nil {
		return nil, src, err
	}

	// The three cipher constructors below only fail on a wrong-length key,
	// which cannot happen: Cipher partitions fixed-length subkeys at
	// construction (§4.2). Errors are still threaded rather than ignored.
	c1, err := xsalsa20Encrypt(c.salsaKey, ivSalsa, plaintext)
	if err != nil {
		return nil, next, newEncryptionError(RngFailure, err)
	}
	c2, err := ctrTransform(twofishBlock, c.twofishKey, ivTwofish, c1)
	if err != nil {
		return nil, next, newEncryptionError(RngFailure, err)
	}
	c3, err := ctrTransform(aesBlock, c.aesKey, ivAES, c2)
	if err != nil {
		return nil, next, newEncryptionError(RngFailure, err)
	}

	salt := c.salt[:]
	authData := assembleAuthenticatedData(salt, ivAES, ivTwofish, ivSalsa, c3)
	mac1, mac2 := generateMacs(authData, c.macKey1, c.macKey2)

	header := encodeHeader(salt, mac1, mac2, ivAES, ivTwofish, ivSalsa)
	envelope = make([]byte, 0, HeaderLen+len(c3))
	envelope = append(envelope, header...)
	envelope = append(envelope, c3...)
	return envelope, next, nil
}

// DecryptWithCipher authenticates and inverts an envelope produced by
// EncryptWithCipher. It fails with MisMatchedCipherSalt if the envelope's
// salt doesn't match c's salt, checked strictly before any MAC work, and
// with MacMismatch if either MAC fails to verify in constant time (§4.4).
func DecryptWithCipher(c *Cipher, envelope []byte) (plaintext []byte, err error) {
	header, err := CheckPrefix(envelope)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(header.Salt, c.salt[:]) {
		return nil, newDecryptionError(MisMatchedCipherSalt, nil)
	}

	body := envelope[HeaderLen:]
	authData := assembleAuthenticatedData(c.salt[:], header.IVAES, header.IVTwofish, header.IVSalsa, body)
	mac1, mac2 := generateMacs(authData, c.macKey1, c.macKey2)

	mac1OK := hmac.Equal(mac1, header.Mac1)
	mac2OK := hmac.Equal(mac2, header.Mac2)
	if !(mac1OK && mac2OK) {
		return nil, newDecryptionError(MacMismatch, nil)
	}

	p2, err := ctrTransform(aesBlock, c.aesKey, header.IVAES, body)
	if err != nil {
		return nil, newDecryptionError(InvalidCiphertext, err)
	}
	p1, err := ctrTransform(twofishBlock, c.twofishKey, header.IVTwofish, p2)
	if err != nil {
		return nil, newDecryptionError(InvalidCiphertext, err)
	}
	plaintext, err = xsalsa20Encrypt(c.salsaKey, header.IVSalsa, p1)
	if err != nil {
		return nil, newDecryptionError(InvalidCiphertext, err)
	}

	return plaintext, nil
}

// assembleAuthenticatedData builds the canonical authenticated-data prefix
// the two MACs are computed over: magic ‖ version ‖ salt ‖ iv_aes ‖
// iv_twofish ‖ iv_salsa ‖ body. Binding salt and IVs prevents cross-envelope
// substitution (§4.4 rationale).
func assembleAuthenticatedData(salt, ivAES, ivTwofish, ivSalsa, body []byte) []byte {
	var versionBytes [VersionLen]byte
	putUint32BE(versionBytes[:], uint32(V3))

	out := make([]byte, 0, MagicLen+VersionLen+SaltLen+totalIVLen+len(body))
	out = append(out, MagicBytes[:]...)
	out = append(out, versionBytes[:]...)
	out = append(out, salt...)
	out = append(out, ivAES...)
	out = append(out, ivTwofish...)
	out = append(out, ivSalsa...)
	out = append(out, body...)
	return out
}

// generateMacs computes both MACs over data, using macKey1 with
// HMAC-SHA-512 and macKey2 with HMAC-SHA3-512.
func generateMacs(data, macKey1, macKey2 []byte) (mac1, mac2 []byte) {
	m1 := hmac.New(sha512.New, macKey1)
	m1.Write(data)
	mac1 = m1.Sum(nil)

	m2 := hmac.New(sha3.New512, macKey2)
	m2.Write(data)
	mac2 = m2.Sum(nil)

	return mac1, mac2
}

// blockCtor is the common shape of aes.NewCipher / twofish.NewCipher.
type blockCtor func(key []byte) (cipher.Block, error)

func aesBlock(key []byte) (cipher.Block, error)     { return aes.NewCipher(key) }
func twofishBlock(key []byte) (cipher.Block, error) { return twofish.NewCipher(key) }

// ctrTransform runs a block cipher in CTR mode; CTR is its own inverse, so
// this is used for both cascade layers in both directions.
func ctrTransform(newBlock blockCtor, key, iv, data []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(out, data)
	return out, nil
}

// xsalsa20Encrypt runs XSalsa20 keystream XOR over data. A 24-byte nonce
// selects the XSalsa20 (rather than plain Salsa20) construction; XOR is its
// own inverse, so this serves both encryption and decryption.
func xsalsa20Encrypt(key, nonce, data []byte) ([]byte, error) {
	if err := validateKeyLen(key, "xsalsa20 key", CipherKeyLen); err != nil {
		return nil, err
	}
	var keyArray [CipherKeyLen]byte
	copy(keyArray[:], key)
	out := make([]byte, len(data))
	salsa20.XORKeyStream(out, data, nonce, &keyArray)
	return out, nil
}

func putUint32BE(dst []byte, v uint32) {
	dst[0] = byte(v >> 24)
	dst[1] = byte(v >> 16)
	dst[2] = byte(v >> 8)
	dst[3] = byte(v)
}
