package drv8704

import (
	"drv8704-go/diag"
	"drv8704-go/errcode"
)

// Fault indexes a STATUS bit.
type Fault uint8

const (
	FaultOTS  Fault = iota // overtemperature shutdown (auto-clear)
	FaultAOCP              // channel A overcurrent
	FaultBOCP              // channel B overcurrent
	FaultAPDF              // channel A predriver fault
	FaultBPDF              // channel B predriver fault
	FaultUVLO              // undervoltage lockout (auto-clear)

	NumFaults
)

var faultNames = [NumFaults]string{"OTS", "AOCP", "BOCP", "APDF", "BPDF", "UVLO"}

func (f Fault) String() string {
	if f < NumFaults {
		return faultNames[f]
	}
	return "INVALID"
}

// AutoClears reports whether hardware clears f once the condition goes away.
func (f Fault) AutoClears() bool { return f == FaultOTS || f == FaultUVLO }

// ParseFault maps a fault name (case-sensitive datasheet spelling) to a Fault.
func ParseFault(s string) (Fault, bool) {
	for i, n := range faultNames {
		if n == s {
			return Fault(i), true
		}
	}
	return NumFaults, false
}

// FaultSet is one sticky flag per STATUS fault bit.
type FaultSet [NumFaults]bool

// Any reports whether any flag is set.
func (s FaultSet) Any() bool {
	for _, v := range s {
		if v {
			return true
		}
	}
	return false
}

// Bits packs the set back into STATUS bit positions.
func (s FaultSet) Bits() uint16 {
	var b uint16
	for i, v := range s {
		if v {
			b |= 1 << i
		}
	}
	return b
}

// Faults returns the sticky fault set as of the last poll.
func (d *Device) Faults() FaultSet { return d.faults }

// PollFaults reads STATUS and latches every set fault bit into the sticky
// set. Flags already set are never cleared here.
func (d *Device) PollFaults() (FaultSet, error) {
	st, err := d.readRegister(STATUS)
	if err != nil {
		return d.faults, err
	}
	st &= statusFaultMask
	for i := Fault(0); i < NumFaults; i++ {
		if st&(1<<i) != 0 && !d.faults[i] {
			d.faults[i] = true
			d.rec.Record(diag.Error, d.tag, "STATUS fault latched:", i.String())
		}
	}
	return d.faults, nil
}

// ClearFault writes 0 to f's STATUS bit, leaving the other bits as read,
// and drops f from the sticky set. OTS and UVLO may re-assert on the next
// poll while their condition persists.
func (d *Device) ClearFault(f Fault) error {
	if f >= NumFaults {
		return &errcode.E{C: errcode.InvalidFault, Op: "STATUS", Msg: f.String()}
	}
	st, err := d.readRegister(STATUS)
	if err != nil {
		return err
	}
	if err := d.writeRegister(STATUS, st&statusFaultMask&^(1<<f)); err != nil {
		return err
	}
	d.faults[f] = false
	d.rec.Record(diag.Info, d.tag, "STATUS register,", f.String(), "cleared")
	return nil
}
