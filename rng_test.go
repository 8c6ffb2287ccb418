package triplesec

import (
	"bytes"
	"testing"
)

func TestSystemRNGDrawLength(t *testing.T) {
	b, next, err := NewSystemRNG().Draw(32)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(b) != 32 {
		t.Fatalf("got %d bytes, want 32", len(b))
	}
	if next == nil {
		t.Fatal("Draw returned a nil next Source")
	}
}

func TestSystemRNGDrawsAreNotRepeated(t *testing.T) {
	b1, _, err := NewSystemRNG().Draw(32)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	b2, _, err := NewSystemRNG().Draw(32)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if bytes.Equal(b1, b2) {
		t.Fatal("two independent SystemRNG draws produced identical bytes")
	}
}

func TestDeterministicRNGSameSeedSameSequence(t *testing.T) {
	seed := [64]byte{1, 2, 3, 4}

	b1, next1, err := NewDeterministicRNGFromSeed(seed).Draw(100)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	b2, next2, err := NewDeterministicRNGFromSeed(seed).Draw(100)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatal("identical seeds produced different first draws")
	}

	c1, _, err := next1.Draw(32)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	c2, _, err := next2.Draw(32)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !bytes.Equal(c1, c2) {
		t.Fatal("threading identical advanced states produced different second draws")
	}
}

func TestDeterministicRNGDifferentSeedsDifferentSequence(t *testing.T) {
	seedA := [64]byte{1}
	seedB := [64]byte{2}

	a, _, err := NewDeterministicRNGFromSeed(seedA).Draw(64)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	b, _, err := NewDeterministicRNGFromSeed(seedB).Draw(64)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("different seeds produced identical draws")
	}
}

func TestDeterministicRNGSuccessiveDrawsDiffer(t *testing.T) {
	seed := [64]byte{7, 7, 7}
	src := Source(NewDeterministicRNGFromSeed(seed))

	first, next, err := src.Draw(48)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	second, _, err := next.Draw(48)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Fatal("successive draws from the threaded state produced identical output")
	}
}

func TestDeterministicRNGDrawExceedingSingleBlock(t *testing.T) {
	// sha512.Size is 64 bytes per expansion block; request more than one
	// block to exercise the counter-mode loop in Draw.
	seed := [64]byte{3, 1, 4}
	b, _, err := NewDeterministicRNGFromSeed(seed).Draw(200)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(b) != 200 {
		t.Fatalf("got %d bytes, want 200", len(b))
	}
}

func TestDrawIVBundleSplitsLengthsCorrectly(t *testing.T) {
	seed := [64]byte{5, 5, 5}
	ivAES, ivTwofish, ivSalsa, next, err := drawIVBundle(NewDeterministicRNGFromSeed(seed))
	if err != nil {
		t.Fatalf("drawIVBundle: %v", err)
	}
	if len(ivAES) != AESIVLen {
		t.Fatalf("ivAES length = %d, want %d", len(ivAES), AESIVLen)
	}
	if len(ivTwofish) != TwofishIVLen {
		t.Fatalf("ivTwofish length = %d, want %d", len(ivTwofish), TwofishIVLen)
	}
	if len(ivSalsa) != SalsaIVLen {
		t.Fatalf("ivSalsa length = %d, want %d", len(ivSalsa), SalsaIVLen)
	}
	if next == nil {
		t.Fatal("drawIVBundle returned a nil next Source")
	}
}
