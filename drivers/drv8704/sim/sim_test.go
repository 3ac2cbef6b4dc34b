package sim

import (
	"errors"
	"testing"

	"drv8704-go/drivers/drv8704"
)

func tx(t *testing.T, c *Chip, frame uint16) uint16 {
	t.Helper()
	r := make([]byte, 2)
	if err := c.Tx([]byte{byte(frame >> 8), byte(frame)}, r); err != nil {
		t.Fatalf("Tx(%#04x): %v", frame, err)
	}
	return uint16(r[0])<<8 | uint16(r[1])
}

func TestReadWrite(t *testing.T) {
	c := New()
	if got := tx(t, c, drv8704.ReadFrame(drv8704.DRIVE)); got != 0xFA5 {
		t.Fatalf("DRIVE = %#03x", got)
	}
	tx(t, c, drv8704.WriteFrame(drv8704.TORQUE, 0x042))
	if got := c.Peek(drv8704.TORQUE); got != 0x042 {
		t.Fatalf("TORQUE = %#03x", got)
	}
	if n := len(c.Frames()); n != 2 {
		t.Fatalf("frames = %d", n)
	}
	c.ResetFrames()
	if n := len(c.Frames()); n != 0 {
		t.Fatalf("frames after reset = %d", n)
	}
}

func TestStatusClearsOnZero(t *testing.T) {
	c := New()
	c.Latch(drv8704.FaultOTS, drv8704.FaultAOCP)
	tx(t, c, drv8704.WriteFrame(drv8704.STATUS, 0x3F)) // ones are ignored
	if got := c.Peek(drv8704.STATUS); got != 0x03 {
		t.Fatalf("STATUS = %#03x, want 0x003", got)
	}
	tx(t, c, drv8704.WriteFrame(drv8704.STATUS, 0x3E))
	if got := c.Peek(drv8704.STATUS); got != 0x02 {
		t.Fatalf("STATUS = %#03x, want 0x002", got)
	}
}

func TestReservedAndFrozenIgnoreWrites(t *testing.T) {
	c := New()
	tx(t, c, drv8704.WriteFrame(drv8704.Reserved, 0xABC))
	if c.Peek(drv8704.Reserved) != 0 {
		t.Fatal("reserved slot written")
	}
	c.Freeze(drv8704.CTRL)
	tx(t, c, drv8704.WriteFrame(drv8704.CTRL, 0))
	if c.Peek(drv8704.CTRL) != 0x301 {
		t.Fatal("frozen register written")
	}
}

func TestNoiseOnlyInUpperNibble(t *testing.T) {
	c := New()
	c.Noise = 0xFFFF
	if got := tx(t, c, drv8704.ReadFrame(drv8704.BLANK)); got != 0xF080 {
		t.Fatalf("response = %#04x", got)
	}
}

func TestErrors(t *testing.T) {
	c := New()
	if err := c.Tx([]byte{0x80}, nil); !errors.Is(err, ErrFrameLength) {
		t.Fatalf("short frame err = %v", err)
	}
	c.RequireSelect = true
	if err := c.Tx([]byte{0x80, 0}, nil); !errors.Is(err, ErrNotSelected) {
		t.Fatalf("unselected err = %v", err)
	}
	c.Select(true)
	if !c.Selected() {
		t.Fatal("Select(true) not reflected")
	}
	if err := c.Tx([]byte{0x80, 0}, nil); err != nil {
		t.Fatalf("selected Tx: %v", err)
	}
	boom := errors.New("boom")
	c.Err = boom
	if _, err := c.Transfer(0); err != boom {
		t.Fatalf("Transfer err = %v", err)
	}
}
