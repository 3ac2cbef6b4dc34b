package drv8704

import (
	"strings"

	"drv8704-go/errcode"
	"drv8704-go/x/conv"
	"drv8704-go/x/mathx"
	"drv8704-go/x/strconvx"
)

// code pairs a datasheet bit pattern (unshifted) with its symbolic value.
type code struct {
	bits uint16
	val  int32
}

// Field is a named bit range within one register. Table-driven fields map
// each legal value to a fixed bit pattern; fields without a table are
// identity-coded integers bounded by their width.
type Field struct {
	Name    string
	Reg     Register
	Shift   uint8
	Width   uint8
	Kind    Kind
	Unit    string
	Default Value

	table  []code
	labels []string
}

// Mask returns the field's bit range within its register.
func (f *Field) Mask() uint16 {
	return uint16(1<<f.Width-1) << f.Shift
}

// Encode returns the field's bits, shifted into register position, for v.
// ok is false if v is outside the field's domain.
func (f *Field) Encode(v Value) (bits uint16, ok bool) {
	if v.Kind != f.Kind {
		return 0, false
	}
	if f.table == nil {
		if !mathx.FitsBits(v.N, f.Width) {
			return 0, false
		}
		return uint16(v.N) << f.Shift, true
	}
	for _, c := range f.table {
		if c.val == v.N {
			return c.bits << f.Shift, true
		}
	}
	return 0, false
}

// Decode extracts the field from a register value. ok is false, and the
// result Unknown, when the bits match no table entry.
func (f *Field) Decode(reg uint16) (Value, bool) {
	raw := (reg & f.Mask()) >> f.Shift
	if f.table == nil {
		return Value{Kind: f.Kind, N: int32(raw)}, true
	}
	for _, c := range f.table {
		if c.bits == raw {
			return Value{Kind: f.Kind, N: c.val}, true
		}
	}
	return Unknown, false
}

// Domain lists every legal value in encoding order.
func (f *Field) Domain() []Value {
	if f.table == nil {
		n := 1 << f.Width
		out := make([]Value, n)
		for i := range out {
			out[i] = Value{Kind: f.Kind, N: int32(i)}
		}
		return out
	}
	out := make([]Value, len(f.table))
	for i, c := range f.table {
		out[i] = Value{Kind: f.Kind, N: c.val}
	}
	return out
}

// Format renders v the way a user would pass it to the matching setter.
func (f *Field) Format(v Value) string {
	if v.Kind == KindLabel && v.Kind == f.Kind && v.N >= 0 && int(v.N) < len(f.labels) {
		return f.labels[v.N]
	}
	return v.String()
}

// Parse converts user text into a Value of the field's kind. Integers are
// decimal or 0x-prefixed hex; a leading zero is still decimal. It checks
// syntax only; domain checks happen in Encode.
func (f *Field) Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	bad := &errcode.E{C: errcode.InvalidInput, Op: f.Name, Msg: s}
	switch f.Kind {
	case KindLabel:
		for i, l := range f.labels {
			if strings.EqualFold(l, s) {
				return Label(i), nil
			}
		}
		return Unknown, bad
	case KindInt:
		n, err := strconvx.ParseInt(s)
		if err != nil {
			return Unknown, bad
		}
		return Value{Kind: KindInt, N: narrow(n)}, nil
	case KindCenti:
		x, err := strconvx.ParseFloat(s)
		if err != nil {
			return Unknown, bad
		}
		return Micros(x), nil
	}
	return Unknown, bad
}

// Describe renders the legal domain, e.g. "5|10|20|40" or "0..255".
func (f *Field) Describe() string {
	if f.table == nil {
		return "0.." + conv.Itoa(int64(1)<<f.Width-1)
	}
	var b strings.Builder
	for i, v := range f.Domain() {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(f.Format(v))
	}
	return b.String()
}
