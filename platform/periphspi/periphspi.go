//go:build !rp2040 && !rp2350

// Package periphspi exposes a Linux spidev port as a tinygo drivers.SPI so
// the DRV8704 driver can run from a single-board computer.
//
// The DRV8704 chip select is active-high, which spidev cannot express, so
// the port is opened with spi.NoCS and SCS is driven from a GPIO instead.
package periphspi

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Config names the bus and the SCS line.
type Config struct {
	// Bus is a spireg name such as "SPI0.0" or "/dev/spidev0.0".
	Bus string
	// CS is a gpioreg name for the SCS line, e.g. "GPIO25".
	CS string
	// Hz overrides the clock. Zero means the DRV8704's 140 kHz.
	Hz int64
}

// Port is an open SPI connection plus its SCS pin.
type Port struct {
	mu     sync.Mutex
	port   spi.PortCloser
	conn   spi.Conn
	cs     gpio.PinOut
	csErr  error
	closed bool
}

var initOnce = sync.OnceValue(func() error {
	_, err := host.Init()
	return err
})

// Open initialises the host drivers and connects to cfg.Bus in mode 0.
func Open(cfg Config) (*Port, error) {
	if err := initOnce(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	var cs gpio.PinIO
	if cfg.CS != "" {
		if cs = gpioreg.ByName(cfg.CS); cs == nil {
			return nil, fmt.Errorf("no gpio named %q", cfg.CS)
		}
		if err := cs.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("cs %s: %w", cfg.CS, err)
		}
	}
	hz := cfg.Hz
	if hz == 0 {
		hz = 140_000
	}

	port, err := spireg.Open(cfg.Bus)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Bus, err)
	}
	conn, err := port.Connect(physic.Frequency(hz)*physic.Hertz, spi.Mode0|spi.NoCS, 8)
	if err != nil {
		return nil, multierr.Combine(fmt.Errorf("connect %s: %w", cfg.Bus, err), port.Close())
	}
	p := &Port{port: port, conn: conn}
	if cs != nil {
		p.cs = cs
	}
	return p, nil
}

// Tx performs one full-duplex transfer. It also surfaces any error from
// the last Select, since PinOutput has no error return.
func (p *Port) Tx(w, r []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("periphspi: port closed")
	}
	if err := p.csErr; err != nil {
		p.csErr = nil
		return err
	}
	if r == nil {
		r = make([]byte, len(w))
	}
	return p.conn.Tx(w, r)
}

// Transfer clocks a single byte.
func (p *Port) Transfer(b byte) (byte, error) {
	var r [1]byte
	err := p.Tx([]byte{b}, r[:])
	return r[0], err
}

// Select drives SCS. Its method value fits drv8704.PinOutput. It is a
// no-op when no CS pin was configured.
func (p *Port) Select(level bool) {
	if p.cs == nil {
		return
	}
	if err := p.cs.Out(gpio.Level(level)); err != nil {
		p.mu.Lock()
		p.csErr = multierr.Append(p.csErr, err)
		p.mu.Unlock()
	}
}

// Close deasserts SCS and releases the port.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	var err error
	if p.cs != nil {
		err = multierr.Append(err, p.cs.Out(gpio.Low))
	}
	return multierr.Combine(err, p.csErr, p.port.Close())
}
