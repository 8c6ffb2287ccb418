package triplesec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Header is the parsed fixed-size prefix of a TripleSec v3 envelope:
// everything before the ciphertext body.
type Header struct {
	Version    Version
	Salt       []byte // SaltLen bytes
	Mac1       []byte // MacOutputLen bytes, HMAC-SHA-512
	Mac2       []byte // MacOutputLen bytes, HMAC-SHA3-512
	IVAES      []byte // AESIVLen bytes
	IVTwofish  []byte // TwofishIVLen bytes
	IVSalsa    []byte // SalsaIVLen bytes
	BodyLen    int    // length of the body following the header
}

// encodeHeader concatenates the header fields in wire order:
// magic ‖ version ‖ salt ‖ mac1 ‖ mac2 ‖ iv_aes ‖ iv_twofish ‖ iv_salsa.
// It always produces exactly HeaderLen bytes.
func encodeHeader(salt, mac1, mac2, ivAES, ivTwofish, ivSalsa []byte) []byte {
	buf := make([]byte, 0, HeaderLen)
	buf = append(buf, MagicBytes[:]...)
	var versionBytes [VersionLen]byte
	binary.BigEndian.PutUint32(versionBytes[:], uint32(V3))
	buf = append(buf, versionBytes[:]...)
	buf = append(buf, salt...)
	buf = append(buf, mac1...)
	buf = append(buf, mac2...)
	buf = append(buf, ivAES...)
	buf = append(buf, ivTwofish...)
	buf = append(buf, ivSalsa...)
	return buf
}

// CheckPrefix parses an envelope's header without verifying its MACs or
// decrypting its body. It is the only way to recover a salt from an
// envelope without knowing the password, and is how NewCipherWithSalt is
// normally fed (§4.3).
//
// It fails with InvalidCiphertext if the envelope is shorter than
// HeaderLen, if the magic bytes don't match, or if the version isn't V3.
func CheckPrefix(envelope []byte) (*Header, error) {
	if err := validateEnvelopeLength(envelope); err != nil {
		return nil, err
	}

	if !bytes.Equal(envelope[:MagicLen], MagicBytes[:]) {
		return nil, newDecryptionError(InvalidCiphertext, fmt.Errorf("bad magic bytes"))
	}

	versionRaw := binary.BigEndian.Uint32(envelope[MagicLen : MagicLen+VersionLen])
	version := Version(versionRaw)
	if version != V3 {
		return nil, newDecryptionError(InvalidCiphertext, fmt.Errorf("unsupported version %d", versionRaw))
	}

	off := MagicLen + VersionLen
	salt := envelope[off : off+SaltLen]
	off += SaltLen
	mac1 := envelope[off : off+MacOutputLen]
	off += MacOutputLen
	mac2 := envelope[off : off+MacOutputLen]
	off += MacOutputLen
	ivAES := envelope[off : off+AESIVLen]
	off += AESIVLen
	ivTwofish := envelope[off : off+TwofishIVLen]
	off += TwofishIVLen
	ivSalsa := envelope[off : off+SalsaIVLen]
	off += SalsaIVLen

	if off != HeaderLen {
		return nil, newDecryptionError(InvalidCiphertext, fmt.Errorf("header length accounting mismatch"))
	}

	return &Header{
		Version:   version,
		Salt:      salt,
		Mac1:      mac1,
		Mac2:      mac2,
		IVAES:     ivAES,
		IVTwofish: ivTwofish,
		IVSalsa:   ivSalsa,
		BodyLen:   len(envelope) - HeaderLen,
	}, nil
}
