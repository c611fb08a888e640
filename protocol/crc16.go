package protocol

// crc16 is the running CCITT checksum (init 0xFFFF, reflected)
type crc16 uint16

func (c crc16) add(b byte) crc16 {
	b ^= byte(c)
	b ^= b << 4
	w := crc16(b)
	return (w<<8 | c>>8) ^ (w >> 4) ^ (w << 3)
}

// CRC16 checksums the length, sequence and payload of a frame
func CRC16(data []byte) uint16 {
	c := crc16(0xFFFF)
	for _, b := range data {
		c = c.add(b)
	}
	return uint16(c)
}
