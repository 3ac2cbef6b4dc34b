package drv8704

import "strings"

// Two-bit datasheet patterns 00/01/10/11 shared by most table fields.
func quad(a, b, c, d int32) []code {
	return []code{{0b00, a}, {0b01, b}, {0b10, c}, {0b11, d}}
}

var (
	bridgeLabels = []string{"off", "on"}
	decayLabels  = []string{"slow", "fast", "mixed", "auto"}
	driveTimes   = quad(263, 525, 1050, 2100)
)

// CTRL
var (
	FieldENBL = &Field{
		Name: "ENBL", Reg: CTRL, Shift: 0, Width: 1, Kind: KindLabel,
		Default: Label(int(BridgeOn)),
		table:   []code{{0, int32(BridgeOff)}, {1, int32(BridgeOn)}},
		labels:  bridgeLabels,
	}
	FieldISGAIN = &Field{
		Name: "ISGAIN", Reg: CTRL, Shift: 8, Width: 2, Kind: KindInt, Unit: "V/V",
		Default: Int(40),
		table:   quad(5, 10, 20, 40),
	}
	FieldDTIME = &Field{
		Name: "DTIME", Reg: CTRL, Shift: 10, Width: 2, Kind: KindInt, Unit: "ns",
		Default: Int(410),
		table:   quad(410, 460, 670, 880),
	}
)

// TORQUE, OFF, BLANK, DECAY
var (
	FieldTORQUE = &Field{
		Name: "TORQUE", Reg: TORQUE, Shift: 0, Width: 8, Kind: KindInt,
		Default: Int(255),
	}
	FieldTOFF = &Field{
		Name: "TOFF", Reg: OFF, Shift: 0, Width: 8, Kind: KindInt, Unit: "x525ns",
		Default: Int(48),
	}
	FieldTBLANK = &Field{
		Name: "TBLANK", Reg: BLANK, Shift: 0, Width: 8, Kind: KindInt, Unit: "x21ns",
		Default: Int(128),
	}
	FieldTDECAY = &Field{
		Name: "TDECAY", Reg: DECAY, Shift: 0, Width: 8, Kind: KindInt, Unit: "x525ns",
		Default: Int(16),
	}
	FieldDECMOD = &Field{
		Name: "DECMOD", Reg: DECAY, Shift: 8, Width: 3, Kind: KindLabel,
		Default: Label(int(DecaySlow)),
		table: []code{
			{0b000, int32(DecaySlow)},
			{0b010, int32(DecayFast)},
			{0b011, int32(DecayMixed)},
			{0b101, int32(DecayAuto)},
		},
		labels: decayLabels,
	}
)

// DRIVE
var (
	FieldOCPTH = &Field{
		Name: "OCPTH", Reg: DRIVE, Shift: 0, Width: 2, Kind: KindInt, Unit: "mV",
		Default: Int(500),
		table:   quad(250, 500, 750, 1000),
	}
	FieldOCPDEG = &Field{
		Name: "OCPDEG", Reg: DRIVE, Shift: 2, Width: 2, Kind: KindCenti, Unit: "us",
		Default: Centi(210),
		table:   quad(105, 210, 420, 840),
	}
	FieldTDRIVEN = &Field{
		Name: "TDRIVEN", Reg: DRIVE, Shift: 4, Width: 2, Kind: KindInt, Unit: "ns",
		Default: Int(1050),
		table:   driveTimes,
	}
	FieldTDRIVEP = &Field{
		Name: "TDRIVEP", Reg: DRIVE, Shift: 6, Width: 2, Kind: KindInt, Unit: "ns",
		Default: Int(1050),
		table:   driveTimes,
	}
	FieldIDRIVEN = &Field{
		Name: "IDRIVEN", Reg: DRIVE, Shift: 8, Width: 2, Kind: KindInt, Unit: "mA",
		Default: Int(400),
		table:   quad(100, 200, 300, 400),
	}
	FieldIDRIVEP = &Field{
		Name: "IDRIVEP", Reg: DRIVE, Shift: 10, Width: 2, Kind: KindInt, Unit: "mA",
		Default: Int(200),
		table:   quad(50, 100, 150, 200),
	}
)

var allFields = [...]*Field{
	FieldENBL, FieldISGAIN, FieldDTIME,
	FieldTORQUE,
	FieldTOFF,
	FieldTBLANK,
	FieldTDECAY, FieldDECMOD,
	FieldOCPTH, FieldOCPDEG, FieldTDRIVEN, FieldTDRIVEP, FieldIDRIVEN, FieldIDRIVEP,
}

// Fields lists every settable field in register order.
func Fields() []*Field {
	out := make([]*Field, len(allFields))
	copy(out, allFields[:])
	return out
}

// FieldByName looks a field up by its datasheet name, case-insensitively.
func FieldByName(name string) (*Field, bool) {
	for _, f := range allFields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return nil, false
}
