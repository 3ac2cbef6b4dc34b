// Package drv8704 provides a TinyGo driver for the TI DRV8704 dual H-bridge
// gate driver.
//
// Usage:
//
//	log := diag.New(uart, diag.Info)
//	d := drv8704.New(machine.SPI0, csPin.Set, log, drv8704.Config{})
//	if err := d.SetISGain(20); err != nil { ... }
//	gain, err := d.ISGain()
//
// Design notes (datasheet references):
// • SPI mode 0, MSB first, 16-bit frames; the driver runs the bus at 140 kHz.
// • SCS is active-high; the driver brackets every frame with it.
// • Eight 12-bit registers; address 0x5 is reserved.
// • Every setter re-reads the register, merges one field, writes, then reads
//   back and verifies. Nothing is cached except the sticky fault set.
// • STATUS bits latch and clear when 0 is written; OTS and UVLO auto-clear.
package drv8704

import (
	"sync"

	"tinygo.org/x/drivers"

	"drv8704-go/diag"
)

// Bus settings the platform must apply before handing the SPI to New.
const (
	Frequency = 140_000 // Hz
	Mode      = 0       // CPOL=0, CPHA=0
)

// DefaultTag prefixes every diagnostics line.
const DefaultTag = "DRV8704"

// PinOutput drives a logic level. Method values such as machine.Pin.Set fit.
type PinOutput func(level bool)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Tag is the diagnostics tag. Defaults to "DRV8704".
	Tag string
	// Lock, if set, is held for the duration of each frame. Use it when the
	// SPI bus is shared with other peripherals.
	Lock sync.Locker
}

// Device is a DRV8704 on an SPI bus.
type Device struct {
	spi  drivers.SPI
	cs   PinOutput
	rec  diag.Recorder
	tag  string
	lock sync.Locker

	faults FaultSet

	// Fixed buffers to avoid per-call heap allocations.
	w [2]byte
	r [2]byte
}

// New constructs a Device. The SPI bus must already be configured for
// Frequency and Mode. cs may be nil when chip-select is handled by the bus.
// rec receives write outcomes; nil discards them. New does not touch the
// hardware.
func New(spi drivers.SPI, cs PinOutput, rec diag.Recorder, cfg Config) *Device {
	if rec == nil {
		rec = diag.Discard
	}
	tag := cfg.Tag
	if tag == "" {
		tag = DefaultTag
	}
	return &Device{
		spi:  spi,
		cs:   cs,
		rec:  rec,
		tag:  tag,
		lock: cfg.Lock,
	}
}

// Tag returns the diagnostics tag in use.
func (d *Device) Tag() string { return d.tag }
