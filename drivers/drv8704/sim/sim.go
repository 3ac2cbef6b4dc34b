// Package sim emulates a DRV8704 register file behind the tinygo
// drivers.SPI interface, for host tests and bench tools without hardware.
package sim

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"

	"drv8704-go/drivers/drv8704"
)

var (
	ErrNotSelected = errors.New("sim: frame clocked without SCS asserted")
	ErrFrameLength = errors.New("sim: frame must be 2 bytes")
)

// Chip is a simulated DRV8704. The zero value is not usable; call New.
type Chip struct {
	mu sync.Mutex

	regs     drv8704.RegisterFile
	frozen   [drv8704.NumRegisters]bool
	selected bool
	frames   []uint16

	// RequireSelect fails any frame clocked while SCS is low.
	RequireSelect bool
	// Noise is OR'ed into bits 15:12 of every read response.
	Noise uint16
	// Err, if set, is returned from every Tx.
	Err error
}

var _ drivers.SPI = (*Chip)(nil)

// New returns a chip holding the power-on defaults.
func New() *Chip {
	return &Chip{regs: drv8704.PowerOnDefaults}
}

// Select drives SCS. Its method value fits drv8704.PinOutput.
func (c *Chip) Select(level bool) {
	c.mu.Lock()
	c.selected = level
	c.mu.Unlock()
}

// Selected reports the current SCS level.
func (c *Chip) Selected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Freeze makes writes to r have no effect, like a register that does not
// take (wrong part, unpowered chip).
func (c *Chip) Freeze(r drv8704.Register) {
	c.mu.Lock()
	c.frozen[r&7] = true
	c.mu.Unlock()
}

// Poke sets a register directly, bypassing the bus.
func (c *Chip) Poke(r drv8704.Register, v uint16) {
	c.mu.Lock()
	c.regs[r&7] = v & 0x0FFF
	c.mu.Unlock()
}

// Peek reads a register directly, bypassing the bus.
func (c *Chip) Peek(r drv8704.Register) uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs[r&7]
}

// Latch raises the given fault bits in STATUS.
func (c *Chip) Latch(faults ...drv8704.Fault) {
	c.mu.Lock()
	for _, f := range faults {
		c.regs[drv8704.STATUS] |= 1 << f
	}
	c.mu.Unlock()
}

// Frames returns a copy of every frame clocked in so far.
func (c *Chip) Frames() []uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uint16(nil), c.frames...)
}

// ResetFrames forgets the frame log.
func (c *Chip) ResetFrames() {
	c.mu.Lock()
	c.frames = c.frames[:0]
	c.mu.Unlock()
}

func (c *Chip) Tx(w, r []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	if c.RequireSelect && !c.selected {
		return ErrNotSelected
	}
	if len(w) != 2 {
		return ErrFrameLength
	}
	frame := uint16(w[0])<<8 | uint16(w[1])
	c.frames = append(c.frames, frame)

	addr := drv8704.Register(frame>>12) & 7
	var resp uint16
	if frame&0x8000 != 0 {
		resp = c.regs[addr] | c.Noise&0xF000
	} else {
		c.write(addr, frame&0x0FFF)
	}
	if len(r) >= 2 {
		r[0] = byte(resp >> 8)
		r[1] = byte(resp)
	}
	return nil
}

func (c *Chip) write(addr drv8704.Register, v uint16) {
	switch {
	case c.frozen[addr], addr == drv8704.Reserved:
	case addr == drv8704.STATUS:
		// Fault bits clear on 0 and ignore 1.
		c.regs[addr] &= v | ^uint16(0x3F)
	default:
		c.regs[addr] = v
	}
}

// Transfer is unused by the driver; single bytes return 0.
func (c *Chip) Transfer(b byte) (byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return 0, c.Err
}
