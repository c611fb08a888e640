package protocol

import "testing"

func TestCRC16CheckValue(t *testing.T) {
	if got := CRC16([]byte("123456789")); got != 0x6F91 {
		t.Errorf("Expected check value 0x6F91, got 0x%04X", got)
	}
	if got := CRC16(nil); got != 0xFFFF {
		t.Errorf("Expected 0xFFFF for empty input, got 0x%04X", got)
	}
}

func TestCRC16AckFrames(t *testing.T) {
	tests := []struct {
		seq  uint8
		want uint16
	}{
		{0x10, 0x9E81},
		{0x11, 0x8F08},
	}
	for _, tt := range tests {
		if got := CRC16([]byte{MessageLengthMin, tt.seq}); got != tt.want {
			t.Errorf("ACK seq 0x%02X: expected 0x%04X, got 0x%04X", tt.seq, tt.want, got)
		}
	}
}

func TestCRC16SingleBitChange(t *testing.T) {
	crc1 := CRC16([]byte{0x01, 0x02, 0x03})
	crc2 := CRC16([]byte{0x01, 0x02, 0x07})
	if crc1 == crc2 {
		t.Errorf("CRC16 collision: both inputs produced %04X", crc1)
	}
}
