package protocol

import (
	"bytes"
	"testing"
)

func TestVLQRoundTripInt(t *testing.T) {
	values := []int32{0, 1, -1, -32, 95, 96, 127, -127, 1000, -1000, 65535, 1000000, -1000000, 1 << 30}

	for _, expected := range values {
		output := NewScratchOutput()
		EncodeVLQInt(output, expected)
		encoded := output.Result()

		data := encoded
		decoded, err := DecodeVLQInt(&data)
		if err != nil {
			t.Errorf("Failed to decode %d: %v", expected, err)
			continue
		}
		if decoded != expected {
			t.Errorf("Expected %d, got %d (encoded as %v)", expected, decoded, encoded)
		}
		if len(data) != 0 {
			t.Errorf("Decode of %d left %d bytes", expected, len(data))
		}
	}
}

func TestVLQEncodedLength(t *testing.T) {
	tests := []struct {
		v    int32
		want int
	}{
		{0, 1},
		{-32, 1},
		{95, 1},
		{96, 2},
		{-33, 2},
		{12287, 2},
		{12288, 3},
		{1 << 30, 5},
	}
	for _, tt := range tests {
		output := NewScratchOutput()
		EncodeVLQInt(output, tt.v)
		if got := len(output.Result()); got != tt.want {
			t.Errorf("EncodeVLQInt(%d): expected %d bytes, got %d", tt.v, tt.want, got)
		}
	}
}

func TestVLQUintHighBit(t *testing.T) {
	output := NewScratchOutput()
	EncodeVLQUint(output, 0xFFFFFFFF)
	data := output.Result()

	v, err := DecodeVLQUint(&data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v != 0xFFFFFFFF {
		t.Errorf("Expected 0xFFFFFFFF, got 0x%X", v)
	}
}

func TestVLQBytesAndString(t *testing.T) {
	payload := []byte{0xFF, 0xFE, 0x7E, 0x00}

	output := NewScratchOutput()
	EncodeVLQBytes(output, payload)
	EncodeVLQString(output, "GAME")
	data := output.Result()

	b, err := DecodeVLQBytes(&data)
	if err != nil {
		t.Fatalf("DecodeVLQBytes failed: %v", err)
	}
	if !bytes.Equal(b, payload) {
		t.Errorf("Expected %v, got %v", payload, b)
	}

	s, err := DecodeVLQString(&data)
	if err != nil {
		t.Fatalf("DecodeVLQString failed: %v", err)
	}
	if s != "GAME" {
		t.Errorf("Expected GAME, got %q", s)
	}
}

func TestVLQTruncated(t *testing.T) {
	data := []byte{0x80}
	if _, err := DecodeVLQInt(&data); err != ErrBufferTooSmall {
		t.Errorf("Expected ErrBufferTooSmall, got %v", err)
	}

	data = []byte{0x05, 0x01}
	if _, err := DecodeVLQBytes(&data); err != ErrBufferTooSmall {
		t.Errorf("Expected ErrBufferTooSmall for short byte field, got %v", err)
	}
}
