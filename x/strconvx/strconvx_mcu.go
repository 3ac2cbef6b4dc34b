//go:build rp2040 || rp2350

package strconvx

// ParseInt parses a signed decimal or 0x-prefixed hex integer.
func ParseInt(s string) (int64, error) {
	neg, digits, base := splitInt(s)
	u, err := parseUint(digits, base)
	if err != nil {
		return 0, err
	}
	return signed(neg, u)
}

// ParseFloat parses a decimal number such as "1.05" or "-2". It is not
// correctly rounded in the last bit; callers quantize anyway.
func ParseFloat(s string) (float64, error) { return parseDecimal(s) }
