package core

// Itoa formats a signed integer without pulling fmt into the firmware image.
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + Utoa(uint32(-n))
	}
	return Utoa(uint32(n))
}

// Utoa formats an unsigned integer.
func Utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// Hex8 formats a byte as two upper-case hex digits.
func Hex8(b uint8) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0x0F]})
}

// valueToString renders dictionary constants.
func valueToString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return Itoa(val)
	case int32:
		return Itoa(int(val))
	case uint8:
		return Utoa(uint32(val))
	case uint16:
		return Utoa(uint32(val))
	case uint32:
		return Utoa(val)
	case bool:
		if val {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}
