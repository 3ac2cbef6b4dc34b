package drv8704

// Register is a 3-bit register address.
type Register uint8

const (
	CTRL     Register = 0x0
	TORQUE   Register = 0x1
	OFF      Register = 0x2
	BLANK    Register = 0x3
	DECAY    Register = 0x4
	Reserved Register = 0x5
	DRIVE    Register = 0x6
	STATUS   Register = 0x7

	NumRegisters = 8
)

const (
	frameRead   = 0x8000
	addrShift   = 12
	addrMask    = 0x7
	payloadMask = 0x0FFF

	statusFaultMask = 0x003F
)

var registerNames = [NumRegisters]string{
	"CTRL", "TORQUE", "OFF", "BLANK", "DECAY", "RESERVED", "DRIVE", "STATUS",
}

func (r Register) String() string {
	if r < NumRegisters {
		return registerNames[r]
	}
	return "INVALID"
}

// Configurable reports whether r holds configuration the driver may write
// in bulk (everything except the reserved slot and STATUS).
func (r Register) Configurable() bool {
	return r <= DRIVE && r != Reserved
}

// RegisterFile holds one 12-bit value per register address.
type RegisterFile [NumRegisters]uint16

// PowerOnDefaults are the datasheet reset values.
var PowerOnDefaults = RegisterFile{
	CTRL:     0x301, // ENBL=on, ISGAIN=40, DTIME=410ns
	TORQUE:   0x0FF, // TORQUE=255
	OFF:      0x130, // TOFF=48, PWMMODE=1
	BLANK:    0x080, // TBLANK=128
	DECAY:    0x010, // TDECAY=16, DECMOD=slow
	Reserved: 0x000,
	DRIVE:    0xFA5, // OCPTH=500mV, OCPDEG=2.1us, TDRIVEN/P=1050ns, IDRIVEN=400mA, IDRIVEP=200mA
	STATUS:   0x000,
}

// Field decodes f from the matching register in the file.
func (rf RegisterFile) Field(f *Field) (Value, bool) {
	return f.Decode(rf[f.Reg])
}
