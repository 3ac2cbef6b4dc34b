package drv8704

import "drv8704-go/errcode"

// ReadFrame builds the 16-bit command that reads r.
func ReadFrame(r Register) uint16 {
	return frameRead | uint16(r&addrMask)<<addrShift
}

// WriteFrame builds the 16-bit command that writes v (masked to 12 bits) to r.
func WriteFrame(r Register, v uint16) uint16 {
	return uint16(r&addrMask)<<addrShift | v&payloadMask
}

// transfer clocks one frame out and returns the frame clocked in.
// SCS is deasserted and the lock released on every path.
func (d *Device) transfer(frame uint16) (uint16, error) {
	if d.lock != nil {
		d.lock.Lock()
		defer d.lock.Unlock()
	}
	d.w[0] = byte(frame >> 8)
	d.w[1] = byte(frame)
	if d.cs != nil {
		d.cs(true)
		defer d.cs(false)
	}
	if err := d.spi.Tx(d.w[:], d.r[:]); err != nil {
		return 0, err
	}
	return uint16(d.r[0])<<8 | uint16(d.r[1]), nil
}

// readRegister returns the 12-bit content of r. Bits 15:12 of the response
// are not part of the register and are dropped here.
func (d *Device) readRegister(r Register) (uint16, error) {
	v, err := d.transfer(ReadFrame(r))
	if err != nil {
		return 0, errcode.Bus("read "+r.String(), err)
	}
	return v & payloadMask, nil
}

func (d *Device) writeRegister(r Register, v uint16) error {
	_, err := d.transfer(WriteFrame(r, v))
	return errcode.Bus("write "+r.String(), err)
}

func checkAddr(r Register) error {
	switch {
	case r >= NumRegisters:
		return &errcode.E{C: errcode.InvalidRegister, Op: r.String()}
	case r == Reserved:
		return &errcode.E{C: errcode.ReservedRegister, Op: r.String()}
	}
	return nil
}

// ReadRegister returns the raw 12-bit value of r.
func (d *Device) ReadRegister(r Register) (uint16, error) {
	if err := checkAddr(r); err != nil {
		return 0, err
	}
	return d.readRegister(r)
}

// WriteRegister writes v to r without verification. Bits above 11 are
// dropped.
func (d *Device) WriteRegister(r Register, v uint16) error {
	if err := checkAddr(r); err != nil {
		return err
	}
	return d.writeRegister(r, v)
}
