package drv8704

import (
	"drv8704-go/diag"
	"drv8704-go/errcode"
	"drv8704-go/x/conv"
)

// ReadAll reads every addressable register. The reserved slot stays zero.
func (d *Device) ReadAll() (RegisterFile, error) {
	var rf RegisterFile
	for r := CTRL; r < NumRegisters; r++ {
		if r == Reserved {
			continue
		}
		v, err := d.readRegister(r)
		if err != nil {
			return rf, err
		}
		rf[r] = v
	}
	return rf, nil
}

// Mismatch is one configuration register that differs from expectation.
type Mismatch struct {
	Reg       Register
	Want, Got uint16
}

// Diagnose compares the configuration registers against want and reports
// each difference as an Error diagnostic. STATUS and the reserved slot are
// not compared.
func (d *Device) Diagnose(want RegisterFile) ([]Mismatch, error) {
	var out []Mismatch
	for r := CTRL; r < NumRegisters; r++ {
		if !r.Configurable() {
			continue
		}
		got, err := d.readRegister(r)
		if err != nil {
			return out, err
		}
		if w := want[r] & payloadMask; got != w {
			out = append(out, Mismatch{Reg: r, Want: w, Got: got})
			d.rec.Record(diag.Error, d.tag, r.String(), "register: want", conv.Hex12(w), "got", conv.Hex12(got))
		}
	}
	if len(out) == 0 {
		d.rec.Record(diag.Info, d.tag, "registers match")
	}
	return out, nil
}

// ApplyDefaults writes PowerOnDefaults to every configuration register and
// verifies them.
func (d *Device) ApplyDefaults() error {
	return d.Apply(PowerOnDefaults)
}

// Apply writes every configuration register in rf and verifies the result.
func (d *Device) Apply(rf RegisterFile) error {
	for r := CTRL; r < NumRegisters; r++ {
		if !r.Configurable() {
			continue
		}
		if err := d.writeRegister(r, rf[r]); err != nil {
			return err
		}
	}
	mm, err := d.Diagnose(rf)
	if err != nil {
		return err
	}
	if len(mm) > 0 {
		return &errcode.E{C: errcode.VerifyMismatch, Op: "apply", Msg: mm[0].Reg.String()}
	}
	return nil
}
