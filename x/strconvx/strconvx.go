// Package strconvx parses the numeric text accepted by driver setters.
//
// Integers are decimal unless written with an explicit 0x/0X prefix; a
// leading zero does not select octal. Host builds delegate digit parsing
// to strconv; MCU builds use the small parsers in this file to keep
// strconv out of TinyGo images.
package strconvx

import "errors"

var (
	ErrSyntax = errors.New("strconvx: invalid syntax")
	ErrRange  = errors.New("strconvx: value out of range")
)

// splitInt strips an optional sign and 0x prefix. digits is what remains.
func splitInt(s string) (neg bool, digits string, base int) {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return neg, s[2:], 16
	}
	return neg, s, 10
}

// signed applies the sign to an unsigned magnitude within int64 range.
func signed(neg bool, u uint64) (int64, error) {
	if neg {
		if u > 1<<63 {
			return 0, ErrRange
		}
		return -int64(u), nil
	}
	if u > 1<<63-1 {
		return 0, ErrRange
	}
	return int64(u), nil
}

// parseUint accepts only [0-9a-fA-F] digits valid in base (10 or 16).
func parseUint(s string, base int) (uint64, error) {
	if len(s) == 0 {
		return 0, ErrSyntax
	}
	b := uint64(base)
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint64
		switch {
		case '0' <= c && c <= '9':
			d = uint64(c - '0')
		case 'a' <= c && c <= 'f':
			d = uint64(c-'a') + 10
		case 'A' <= c && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return 0, ErrSyntax
		}
		if d >= b {
			return 0, ErrSyntax
		}
		if v > (1<<64-1-d)/b {
			return 0, ErrRange
		}
		v = v*b + d
	}
	return v, nil
}

// parseDecimal handles [+-]digits[.digits]. Precision is float64 on the
// integer part plus a scaled fraction, enough for hundredths.
func parseDecimal(s string) (float64, error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var ip, fp, scale float64 = 0, 0, 1
	i, n := 0, 0
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		ip = ip*10 + float64(s[i]-'0')
		n++
	}
	if i < len(s) && s[i] == '.' {
		for i++; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
			fp = fp*10 + float64(s[i]-'0')
			scale *= 10
			n++
		}
	}
	if n == 0 || i != len(s) {
		return 0, ErrSyntax
	}
	v := ip + fp/scale
	if neg {
		v = -v
	}
	return v, nil
}
