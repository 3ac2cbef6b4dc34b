package drv8704

import (
	"strings"

	"drv8704-go/diag"
	"drv8704-go/errcode"
	"drv8704-go/x/conv"
)

// Bridge is the ENBL setting.
type Bridge uint8

const (
	BridgeOff Bridge = iota
	BridgeOn
)

func (b Bridge) String() string {
	if int(b) < len(bridgeLabels) {
		return bridgeLabels[b]
	}
	return "unknown"
}

// DecayMode is the DECMOD setting.
type DecayMode uint8

const (
	DecaySlow DecayMode = iota
	DecayFast
	DecayMixed
	DecayAuto

	// DecayUnknown is returned when DECMOD holds a pattern the datasheet
	// does not define for this driver (e.g. 001, 100).
	DecayUnknown DecayMode = 0xFF
)

func (m DecayMode) String() string {
	if int(m) < len(decayLabels) {
		return decayLabels[m]
	}
	return "unknown"
}

// ParseDecayMode maps "slow", "fast", "mixed" or "auto" to a DecayMode.
func ParseDecayMode(s string) (DecayMode, bool) {
	for i, l := range decayLabels {
		if strings.EqualFold(l, s) {
			return DecayMode(i), true
		}
	}
	return DecayUnknown, false
}

// Set writes v into f with a read-modify-write, reads the field back and
// verifies it. The outcome is reported to the diagnostics recorder.
//
// Returns errcode.InvalidInput (nothing written) if v is outside f's domain
// and errcode.VerifyMismatch if the read-back differs.
func (d *Device) Set(f *Field, v Value) error {
	setting := f.Format(v)
	bits, ok := f.Encode(v)
	if !ok {
		d.rec.Record(diag.Error, d.tag, f.Name, "set: invalid input", setting)
		return &errcode.E{C: errcode.InvalidInput, Op: f.Name, Msg: setting}
	}

	cur, err := d.readRegister(f.Reg)
	if err != nil {
		diag.SetOutcome(d.rec, d.tag, f.Reg.String(), f.Name, setting, false)
		return err
	}
	if err := d.writeRegister(f.Reg, cur&^f.Mask()|bits); err != nil {
		diag.SetOutcome(d.rec, d.tag, f.Reg.String(), f.Name, setting, false)
		return err
	}

	got, err := d.Get(f)
	if !diag.SetOutcome(d.rec, d.tag, f.Reg.String(), f.Name, setting, err == nil && got == v) {
		if err != nil && errcode.Of(err) == errcode.BusError {
			return err
		}
		return &errcode.E{C: errcode.VerifyMismatch, Op: f.Name, Msg: "wrote " + setting + ", read " + f.Format(got)}
	}
	return nil
}

// Get reads f. A bit pattern outside f's table yields Unknown and
// errcode.Unrecognized.
func (d *Device) Get(f *Field) (Value, error) {
	reg, err := d.readRegister(f.Reg)
	if err != nil {
		return Unknown, err
	}
	v, ok := f.Decode(reg)
	if !ok {
		return Unknown, &errcode.E{C: errcode.Unrecognized, Op: f.Name, Msg: "bits " + conv.Itoa(int64((reg&f.Mask())>>f.Shift))}
	}
	return v, nil
}

// SetByName parses text for the named field and sets it.
func (d *Device) SetByName(name, value string) error {
	f, ok := FieldByName(name)
	if !ok {
		return &errcode.E{C: errcode.UnknownField, Op: name}
	}
	v, err := f.Parse(value)
	if err != nil {
		d.rec.Record(diag.Error, d.tag, f.Name, "set: invalid input", value)
		return err
	}
	return d.Set(f, v)
}

// getInt is the shared body of the integer getters. The result is 0 on
// error.
func (d *Device) getInt(f *Field) (int, error) {
	v, err := d.Get(f)
	if err != nil {
		return 0, err
	}
	return int(v.N), nil
}

// ---------------- CTRL ----------------

// SetHBridge sets ENBL: BridgeOn enables both H-bridges.
func (d *Device) SetHBridge(b Bridge) error { return d.Set(FieldENBL, Label(int(b))) }

// HBridge reads ENBL.
func (d *Device) HBridge() (Bridge, error) {
	v, err := d.Get(FieldENBL)
	if err != nil {
		return BridgeOff, err
	}
	return Bridge(v.N), nil
}

// SetISGain sets the ISENSE amplifier gain: 5, 10, 20 or 40 V/V.
func (d *Device) SetISGain(gain int) error { return d.Set(FieldISGAIN, Int(gain)) }
func (d *Device) ISGain() (int, error)     { return d.getInt(FieldISGAIN) }

// SetDeadTime sets DTIME: 410, 460, 670 or 880 ns.
func (d *Device) SetDeadTime(ns int) error { return d.Set(FieldDTIME, Int(ns)) }
func (d *Device) DeadTime() (int, error)   { return d.getInt(FieldDTIME) }

// ---------------- TORQUE / OFF / BLANK ----------------

// SetTorque sets full-scale output current for both H-bridges, 0-255.
func (d *Device) SetTorque(v int) error { return d.Set(FieldTORQUE, Int(v)) }
func (d *Device) Torque() (int, error)  { return d.getInt(FieldTORQUE) }

// SetTOff sets the fixed off time in 525 ns steps, 0-255.
func (d *Device) SetTOff(v int) error { return d.Set(FieldTOFF, Int(v)) }
func (d *Device) TOff() (int, error)  { return d.getInt(FieldTOFF) }

// SetTBlank sets the current-trip blanking time in 21 ns steps, 0-255.
func (d *Device) SetTBlank(v int) error { return d.Set(FieldTBLANK, Int(v)) }
func (d *Device) TBlank() (int, error)  { return d.getInt(FieldTBLANK) }

// ---------------- DECAY ----------------

// SetTDecay sets the mixed-decay transition time in 525 ns steps, 0-255.
func (d *Device) SetTDecay(v int) error { return d.Set(FieldTDECAY, Int(v)) }
func (d *Device) TDecay() (int, error)  { return d.getInt(FieldTDECAY) }

// SetDecayMode sets DECMOD: slow, fast, mixed or auto. TDECAY is left as is.
func (d *Device) SetDecayMode(m DecayMode) error { return d.Set(FieldDECMOD, Label(int(m))) }

// DecayMode reads DECMOD. Patterns other than the four modes return
// DecayUnknown and errcode.Unrecognized.
func (d *Device) DecayMode() (DecayMode, error) {
	v, err := d.Get(FieldDECMOD)
	if err != nil {
		return DecayUnknown, err
	}
	return DecayMode(v.N), nil
}

// ---------------- DRIVE ----------------

// SetOCPThreshold sets the OCP threshold: 250, 500, 750 or 1000 mV.
func (d *Device) SetOCPThreshold(mV int) error { return d.Set(FieldOCPTH, Int(mV)) }
func (d *Device) OCPThreshold() (int, error)   { return d.getInt(FieldOCPTH) }

// SetOCPDeglitch sets the OCP deglitch time: 1.05, 2.1, 4.2 or 8.4 µs.
// The argument is quantized to hundredths before matching.
func (d *Device) SetOCPDeglitch(us float32) error { return d.Set(FieldOCPDEG, Micros(float64(us))) }

func (d *Device) OCPDeglitch() (float32, error) {
	v, err := d.Get(FieldOCPDEG)
	if err != nil {
		return 0, err
	}
	return float32(v.N) / 100, nil
}

// SetTDriveN sets the gate-drive sink time: 263, 525, 1050 or 2100 ns.
func (d *Device) SetTDriveN(ns int) error { return d.Set(FieldTDRIVEN, Int(ns)) }
func (d *Device) TDriveN() (int, error)   { return d.getInt(FieldTDRIVEN) }

// SetTDriveP sets the gate-drive source time: 263, 525, 1050 or 2100 ns.
func (d *Device) SetTDriveP(ns int) error { return d.Set(FieldTDRIVEP, Int(ns)) }
func (d *Device) TDriveP() (int, error)   { return d.getInt(FieldTDRIVEP) }

// SetIDriveN sets the peak sink current: 100, 200, 300 or 400 mA.
func (d *Device) SetIDriveN(mA int) error { return d.Set(FieldIDRIVEN, Int(mA)) }
func (d *Device) IDriveN() (int, error)   { return d.getInt(FieldIDRIVEN) }

// SetIDriveP sets the peak source current: 50, 100, 150 or 200 mA.
func (d *Device) SetIDriveP(mA int) error { return d.Set(FieldIDRIVEP, Int(mA)) }
func (d *Device) IDriveP() (int, error)   { return d.getInt(FieldIDRIVEP) }
