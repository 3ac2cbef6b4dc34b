// Package conv holds allocation-free number formatting for TinyGo builds.
// All helpers append to dst and return the extended slice; no fmt/strconv.
package conv

const hexd = "0123456789ABCDEF"

// AppendInt appends the base-10 representation of n.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}

// AppendUint appends the base-10 representation of n.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// AppendHex appends n as "0x" followed by exactly digits uppercase hex
// digits, zero-padded. Higher bits are dropped.
func AppendHex(dst []byte, n uint32, digits int) []byte {
	dst = append(dst, '0', 'x')
	for s := (digits - 1) * 4; s >= 0; s -= 4 {
		dst = append(dst, hexd[(n>>uint(s))&0xF])
	}
	return dst
}

// AppendCenti appends n hundredths as a decimal with trailing zeros
// trimmed: 105 -> "1.05", 210 -> "2.1", 300 -> "3".
func AppendCenti(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		n = -n
	}
	dst = AppendUint(dst, uint64(n/100))
	frac := n % 100
	switch {
	case frac == 0:
	case frac%10 == 0:
		dst = append(dst, '.', byte('0'+frac/10))
	default:
		dst = append(dst, '.', byte('0'+frac/10), byte('0'+frac%10))
	}
	return dst
}

// Itoa is AppendInt into a fresh string.
func Itoa(n int64) string { return string(AppendInt(nil, n)) }

// Hex12 formats a 12-bit register value as "0xABC".
func Hex12(v uint16) string { return string(AppendHex(nil, uint32(v), 3)) }
