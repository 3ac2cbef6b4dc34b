//go:build rp2040 || rp2350

// Package rp2 brings up the SPI bus, SCS pin and console UART for a DRV8704
// on an RP2040/RP2350 board.
package rp2

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"drv8704-go/drivers/drv8704"
)

// Pins selects the GPIOs used. Start from DefaultPins and override what
// differs: a zero pin is GPIO0, not a default. Only a zero Baud is
// replaced, with 115200.
type Pins struct {
	SCK, SDO, SDI, CS machine.Pin
	TX, RX            machine.Pin
	Baud              uint32
}

// DefaultPins is SPI0 on GP16-GP19 and UART0 on GP0/GP1 at 115200.
var DefaultPins = Pins{
	SCK:  machine.GPIO18,
	SDO:  machine.GPIO19,
	SDI:  machine.GPIO16,
	CS:   machine.GPIO17,
	TX:   machine.GPIO0,
	RX:   machine.GPIO1,
	Baud: 115200,
}

// Board is the configured hardware.
type Board struct {
	SPI     *machine.SPI
	CS      drv8704.PinOutput
	Console *uartx.UART
}

// Setup configures SPI0 for the DRV8704 (mode 0, MSB first), drives SCS
// low and opens UART0 as the diagnostics console.
func Setup(p Pins) (*Board, error) {
	if p.Baud == 0 {
		p.Baud = DefaultPins.Baud
	}

	cs := p.CS
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.Low()

	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		Frequency: drv8704.Frequency,
		SCK:       p.SCK,
		SDO:       p.SDO,
		SDI:       p.SDI,
		Mode:      drv8704.Mode,
		LSBFirst:  false,
	}); err != nil {
		return nil, err
	}

	u := uartx.UART0
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: p.Baud,
		TX:       p.TX,
		RX:       p.RX,
	}); err != nil {
		return nil, err
	}

	return &Board{SPI: spi, CS: cs.Set, Console: u}, nil
}
