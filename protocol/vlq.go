package protocol

import "errors"

// ErrBufferTooSmall is returned when a value runs past the payload
var ErrBufferTooSmall = errors.New("buffer too small for VLQ")

// vlqShifts are the 7-bit groups above the last one, outermost first
var vlqShifts = [...]uint{28, 21, 14, 7}

// EncodeVLQInt writes v as 1-5 bytes, most significant group first. A
// group is needed when v is outside [-2^(s-2), 3*2^(s-2)), so values in
// [-32, 96) take a single byte.
func EncodeVLQInt(output OutputBuffer, v int32) {
	var buf [5]byte
	n := 0
	for _, s := range vlqShifts {
		lim := int32(1) << (s - 2)
		if v < -lim || v >= 3*lim {
			buf[n] = byte(v>>s)&0x7F | 0x80
			n++
		}
	}
	buf[n] = byte(v) & 0x7F
	output.Output(buf[:n+1])
}

func EncodeVLQUint(output OutputBuffer, v uint32) {
	EncodeVLQInt(output, int32(v))
}

// DecodeVLQInt decodes one integer and advances the slice past it
func DecodeVLQInt(data *[]byte) (int32, error) {
	in := *data
	if len(in) == 0 {
		return 0, ErrBufferTooSmall
	}

	c := uint32(in[0])
	v := c & 0x7F
	// 0b11xxxxx in the first group is a negative value
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F)
	}
	i := 1
	for ; c&0x80 != 0; i++ {
		if i >= len(in) {
			return 0, ErrBufferTooSmall
		}
		c = uint32(in[i])
		v = v<<7 | c&0x7F
	}

	*data = in[i:]
	return int32(v), nil
}

func DecodeVLQUint(data *[]byte) (uint32, error) {
	v, err := DecodeVLQInt(data)
	return uint32(v), err
}

// EncodeVLQBytes writes a length-prefixed byte string
func EncodeVLQBytes(output OutputBuffer, data []byte) {
	EncodeVLQUint(output, uint32(len(data)))
	output.Output(data)
}

// DecodeVLQBytes reads a length-prefixed byte string. The result
// aliases the input.
func DecodeVLQBytes(data *[]byte) ([]byte, error) {
	n, err := DecodeVLQUint(data)
	if err != nil {
		return nil, err
	}
	if int32(n) < 0 || int(n) > len(*data) {
		return nil, ErrBufferTooSmall
	}
	b := (*data)[:n:n]
	*data = (*data)[n:]
	return b, nil
}

func EncodeVLQString(output OutputBuffer, s string) {
	EncodeVLQBytes(output, []byte(s))
}

func DecodeVLQString(data *[]byte) (string, error) {
	b, err := DecodeVLQBytes(data)
	return string(b), err
}
