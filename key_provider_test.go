package triplesec

import "testing"

func TestNewCipherRejectsEmptyPassword(t *testing.T) {
	salt := make([]byte, SaltLen)
	_, err := NewCipher(nil, salt)
	if !IsEncryptionErrorKind(err, InvalidPassword) {
		t.Fatalf("expected InvalidPassword, got %v", err)
	}
}

func TestNewCipherRejectsBadSaltLength(t *testing.T) {
	cases := []struct {
		name string
		salt []byte
	}{
		{"too short", make([]byte, SaltLen-1)},
		{"too long", make([]byte, SaltLen+1)},
		{"empty", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCipher([]byte("password"), tc.salt)
			if !IsEncryptionErrorKind(err, InvalidSaltLength) {
				t.Fatalf("expected InvalidSaltLength, got %v", err)
			}
		})
	}
}

func TestNewCipherWithSaltIsAnAliasOfNewCipher(t *testing.T) {
	salt := make([]byte, SaltLen)
	for i := range salt {
		salt[i] = byte(i)
	}

	c1, err := NewCipher([]byte("mypassword"), salt)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	c2, err := NewCipherWithSalt([]byte("mypassword"), salt)
	if err != nil {
		t.Fatalf("NewCipherWithSalt: %v", err)
	}

	if string(c1.macKey1) != string(c2.macKey1) ||
		string(c1.macKey2) != string(c2.macKey2) ||
		string(c1.aesKey) != string(c2.aesKey) ||
		string(c1.twofishKey) != string(c2.twofishKey) ||
		string(c1.salsaKey) != string(c2.salsaKey) {
		t.Fatal("NewCipher and NewCipherWithSalt derived different subkeys for identical inputs")
	}
}

func TestCipherSubkeyPartitionLengths(t *testing.T) {
	salt := make([]byte, SaltLen)
	c, err := NewCipher([]byte("password"), salt)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	checks := map[string]struct {
		got, want int
	}{
		"macKey1":    {len(c.macKey1), MacKeyLen},
		"macKey2":    {len(c.macKey2), MacKeyLen},
		"aesKey":     {len(c.aesKey), CipherKeyLen},
		"twofishKey": {len(c.twofishKey), CipherKeyLen},
		"salsaKey":   {len(c.salsaKey), CipherKeyLen},
		"reserved":   {len(c.reserved), reservedKeyLen},
	}
	for name, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %d bytes, want %d", name, c.got, c.want)
		}
	}
}

func TestCipherSubkeysAreDistinct(t *testing.T) {
	salt := make([]byte, SaltLen)
	c, err := NewCipher([]byte("password"), salt)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	keys := [][]byte{c.macKey1, c.macKey2, c.aesKey, c.twofishKey, c.salsaKey}
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if len(keys[i]) == len(keys[j]) && string(keys[i]) == string(keys[j]) {
				t.Fatalf("subkey %d and %d are identical", i, j)
			}
		}
	}
}

func TestScrubZeroesSubkeyMaterial(t *testing.T) {
	salt := make([]byte, SaltLen)
	c, err := NewCipher([]byte("password"), salt)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	c.Scrub()

	for _, b := range [][]byte{c.password, c.macKey1, c.macKey2, c.aesKey, c.twofishKey, c.salsaKey, c.reserved} {
		for i, v := range b {
			if v != 0 {
				t.Fatalf("byte %d not zeroed after Scrub", i)
			}
		}
	}
	for i, v := range c.salt {
		if v != 0 {
			t.Fatalf("salt byte %d not zeroed after Scrub", i)
		}
	}
}

func TestCipherSaltReturnsCopy(t *testing.T) {
	salt := make([]byte, SaltLen)
	for i := range salt {
		salt[i] = byte(i + 1)
	}
	c, err := NewCipher([]byte("password"), salt)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	got := c.Salt()
	got[0] = 0xff
	if c.salt[0] == 0xff {
		t.Fatal("Salt() leaked internal storage")
	}
}
