package drv8704

import (
	"math"

	"drv8704-go/x/conv"
	"drv8704-go/x/mathx"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindUnknown marks a register bit pattern with no table entry.
	KindUnknown Kind = iota
	// KindLabel is an ordinal into a closed enumeration (on/off, decay mode).
	KindLabel
	// KindInt is a bounded integer (register counts, ns, mV, mA, V/V).
	KindInt
	// KindCenti is a fractional setting quantized to hundredths (µs).
	KindCenti
)

// Value is one symbolic field setting.
type Value struct {
	Kind Kind
	N    int32
}

// Unknown is returned by decoders for unrecognized bit patterns.
var Unknown = Value{}

// Out-of-range inputs collapse onto values no table or bound accepts.
func narrow(n int64) int32 {
	return int32(mathx.Clamp(n, math.MinInt32, math.MaxInt32))
}

func Label(ordinal int) Value { return Value{Kind: KindLabel, N: narrow(int64(ordinal))} }
func Int(n int) Value         { return Value{Kind: KindInt, N: narrow(int64(n))} }
func Centi(n int) Value       { return Value{Kind: KindCenti, N: narrow(int64(n))} }

// Micros quantizes a duration in microseconds to hundredths, the resolution
// the deglitch table is defined in.
func Micros(us float64) Value {
	if math.IsNaN(us) || math.IsInf(us, 0) {
		return Value{Kind: KindCenti, N: math.MinInt32}
	}
	return Value{Kind: KindCenti, N: narrow(int64(math.Round(mathx.Clamp(us*100, math.MinInt32, math.MaxInt32))))}
}

// IsUnknown reports whether v is the unrecognized-pattern marker.
func (v Value) IsUnknown() bool { return v.Kind == KindUnknown }

func (v Value) String() string {
	switch v.Kind {
	case KindInt, KindLabel:
		return conv.Itoa(int64(v.N))
	case KindCenti:
		return string(conv.AppendCenti(nil, int64(v.N)))
	default:
		return "unknown"
	}
}
