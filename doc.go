// Package triplesec implements the cryptographic core of the TripleSec v3
// authenticated-encryption protocol: password-based key derivation, a
// three-layer cipher cascade, and a two-MAC authentication structure,
// framed into a single self-describing envelope.
//
// # Overview
//
// TripleSec is a "triple-paranoid" scheme: rather than trusting a single
// cipher and a single MAC, it layers three independent stream ciphers
// (XSalsa20, Twofish-256-CTR, AES-256-CTR) and authenticates the result
// with two independent MACs (HMAC-SHA-512, HMAC-SHA3-512), both of which
// must verify for decryption to succeed.
//
// # Basic Usage
//
//	envelope, err := triplesec.Encrypt([]byte("my secret password"), []byte("attack at dawn"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := triplesec.Decrypt([]byte("my secret password"), envelope)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Batch Reuse
//
// Key derivation runs Scrypt with deliberately expensive parameters
// (N=32768, r=8, p=1). Encrypting more than one message under the same
// password should amortize that cost by building a Cipher once:
//
//	c, err := triplesec.NewCipher([]byte("my secret password"), salt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Scrub()
//
//	for _, msg := range messages {
//	    envelope, _, err := triplesec.EncryptWithCipher(c, msg, triplesec.NewSystemRNG())
//	    ...
//	}
//
// Or, for many messages at once, EncryptBatch/DecryptBatch parallelize the
// independent per-message cascade work across the reused Cipher.
//
// # Security Considerations
//
// Protected against:
//   - Tampering and corruption of the envelope (authenticated encryption,
//     both MACs verified in constant time)
//   - Cross-envelope substitution (MACs bind salt and IVs, not just the body)
//   - Offline brute-force attacks against the password (Scrypt is
//     memory-hard and deliberately expensive)
//
// Not protected against:
//   - Memory dumps while a Cipher or plaintext is live (Scrub is
//     defense-in-depth, not a guarantee against a determined attacker with
//     memory access)
//   - Side-channel attacks against the underlying primitives (delegated to
//     the standard library and golang.org/x/crypto)
//   - Key-wrapping, password storage, or streaming/chunked encryption of
//     inputs larger than a single message unit — explicitly out of scope
//
// # Envelope Format
//
// A TripleSec v3 envelope is:
//
//	magic (4) ‖ version (4) ‖ salt (16) ‖ mac1 (64) ‖ mac2 (64) ‖
//	iv_aes (16) ‖ iv_twofish (16) ‖ iv_salsa (24) ‖ body (n)
//
// 208 bytes of fixed overhead ahead of a body equal in length to the
// plaintext. CheckPrefix parses this header without decrypting.
//
// # Key Derivation
//
// Scrypt(password, salt, N=32768, r=8, p=1, dkLen=264) produces a mega key
// partitioned into, in order: a 48-byte HMAC-SHA-512 key, a 48-byte
// HMAC-SHA3-512 key, a 32-byte AES-256 key, a 32-byte Twofish-256 key, a
// 32-byte XSalsa20 key, and 72 bytes reserved per the v3 specification.
package triplesec
