package core

import "testing"

func TestItoa(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{1230, "1230"},
		{-42, "-42"},
	}
	for _, tt := range tests {
		if got := Itoa(tt.in); got != tt.want {
			t.Errorf("Itoa(%d): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestUtoaMax(t *testing.T) {
	if got := Utoa(4294967295); got != "4294967295" {
		t.Errorf("Expected 4294967295, got %s", got)
	}
}

func TestHex8(t *testing.T) {
	if got := Hex8(0x3C); got != "3C" {
		t.Errorf("Expected 3C, got %s", got)
	}
}
