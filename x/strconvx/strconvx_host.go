//go:build !rp2040 && !rp2350

package strconvx

import (
	"errors"
	"strconv"
)

// ParseInt parses a signed decimal or 0x-prefixed hex integer.
func ParseInt(s string) (int64, error) {
	neg, digits, base := splitInt(s)
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrRange
		}
		return 0, ErrSyntax
	}
	return signed(neg, u)
}

// ParseFloat parses a decimal number such as "1.05" or "-2".
func ParseFloat(s string) (float64, error) {
	if _, err := parseDecimal(s); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}
