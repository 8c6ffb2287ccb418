package triplesec

// Version identifies the wire format of an envelope. This core implements
// TripleSec v3 only; version negotiation beyond v3 is out of scope.
type Version uint32

// V3 is the only version this core produces or accepts.
const V3 Version = 3

const (
	// SaltLen is the fixed length of a TripleSec salt.
	SaltLen = 16

	// MagicLen is the length of the magic prefix.
	MagicLen = 4

	// VersionLen is the length of the big-endian version field.
	VersionLen = 4

	// MacOutputLen is the output length of each of the two MACs.
	MacOutputLen = 64

	// MacKeyLen is the length of each of the two MAC keys.
	MacKeyLen = 48

	// CipherKeyLen is the length of each of the three cipher keys.
	CipherKeyLen = 32

	// AESIVLen is the length of the AES-CTR IV.
	AESIVLen = 16

	// TwofishIVLen is the length of the Twofish-CTR IV.
	TwofishIVLen = 16

	// SalsaIVLen is the length of the XSalsa20 nonce.
	SalsaIVLen = 24

	// totalIVLen is the combined length of the three IVs.
	totalIVLen = AESIVLen + TwofishIVLen + SalsaIVLen

	// totalMacLen is the combined length of the two MACs.
	totalMacLen = 2 * MacOutputLen

	// totalMacKeyLen is the combined length of the two MAC keys.
	totalMacKeyLen = 2 * MacKeyLen

	// reservedKeyLen is the v3 mega-key material left unused by this core.
	reservedKeyLen = 72

	// megaKeyLen is the total Scrypt output length: two MAC keys, three
	// cipher keys, and v3's reserved tail.
	megaKeyLen = totalMacKeyLen + 3*CipherKeyLen + reservedKeyLen

	// HeaderLen is the fixed length of an envelope header, i.e. everything
	// before the body: magic, version, salt, both MACs, and all three IVs.
	HeaderLen = MagicLen + VersionLen + SaltLen + totalMacLen + totalIVLen

	// ScryptN, ScryptR, ScryptP are the fixed Scrypt cost parameters for v3.
	ScryptN = 1 << 15
	ScryptR = 8
	ScryptP = 1
)

// MagicBytes are the four bytes every TripleSec v3 envelope begins with.
var MagicBytes = [MagicLen]byte{0x1c, 0x94, 0xd7, 0xde}
