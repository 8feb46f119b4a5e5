package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
)

func TestMakeRandHexString_LengthAndHex(t *testing.T) {
	const n = 24
	s, err := MakeRandHexString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n*2 {
		t.Fatalf("expected hex length %d, got %d", n*2, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("string is not valid hex: %v", err)
	}
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	if err != nil {
		t.Fatalf("unexpected error for size=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for size=0, got %q", s)
	}
}

func TestMakeRandHexString_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		s, err := MakeRandHexString(24)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate token after %d iterations", i)
		}
		seen[s] = struct{}{}
	}
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestErrors_WrapAndMatch(t *testing.T) {
	err := fmt.Errorf("error creating user: %w", ErrorConflict)
	if !errors.Is(err, ErrorConflict) {
		t.Fatalf("wrapped error must match ErrorConflict")
	}
	if errors.Is(err, ErrorUnauthorized) {
		t.Fatalf("wrapped conflict must not match ErrorUnauthorized")
	}
}
