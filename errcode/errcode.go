package errcode

import "errors"

// Code is a stable error identifier for driver outcomes.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Register model
	InvalidInput   Code = "invalid_input"
	VerifyMismatch Code = "verify_mismatch"
	Unrecognized   Code = "unrecognized"
	UnknownField   Code = "unknown_field"

	// Addressing
	InvalidRegister  Code = "invalid_register"
	ReservedRegister Code = "reserved_register"
	InvalidFault     Code = "invalid_fault"

	// Transport
	BusError Code = "bus_error"

	Error Code = "error" // generic fallback
)

// E keeps context and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.X) match a wrapped E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Of extracts the outermost Code in err's chain, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var x interface{ Code() Code }
	if errors.As(err, &x) {
		return x.Code()
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Error
}

// Bus wraps a transport failure for op. nil stays nil.
func Bus(op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: BusError, Op: op, Err: err}
}
