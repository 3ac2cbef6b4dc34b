package drv8704_test

import (
	"strings"
	"testing"

	"drv8704-go/drivers/drv8704"
	"drv8704-go/errcode"
)

func TestFaultsAreSticky(t *testing.T) {
	d, chip, out := newDev(t)

	fs, err := d.PollFaults()
	if err != nil || fs.Any() {
		t.Fatalf("initial poll = %v, %v", fs, err)
	}

	chip.Latch(drv8704.FaultAOCP)
	fs, err = d.PollFaults()
	if err != nil || !fs[drv8704.FaultAOCP] {
		t.Fatalf("AOCP not latched: %v, %v", fs, err)
	}
	if !strings.Contains(out.String(), "DRV8704 - ERROR: STATUS fault latched: AOCP\n") {
		t.Fatalf("no latch diagnostic: %q", out.String())
	}

	// Hardware drops the bit; the flag stays.
	chip.Poke(drv8704.STATUS, 0)
	fs, _ = d.PollFaults()
	if !fs[drv8704.FaultAOCP] {
		t.Fatal("sticky flag dropped by a clean poll")
	}
	if d.Faults() != fs {
		t.Fatal("Faults() disagrees with last poll")
	}

	// A second latch of a set flag is not re-announced.
	chip.Latch(drv8704.FaultAOCP)
	out.Reset()
	_, _ = d.PollFaults()
	if out.Len() != 0 {
		t.Fatalf("re-announced latched fault: %q", out.String())
	}
}

func TestClearFault(t *testing.T) {
	d, chip, out := newDev(t)
	chip.Latch(drv8704.FaultAOCP, drv8704.FaultBPDF)
	if _, err := d.PollFaults(); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := d.ClearFault(drv8704.FaultAOCP); err != nil {
		t.Fatalf("ClearFault: %v", err)
	}
	if st := chip.Peek(drv8704.STATUS); st != 1<<drv8704.FaultBPDF {
		t.Fatalf("STATUS = %#03x, want only BPDF", st)
	}
	fs := d.Faults()
	if fs[drv8704.FaultAOCP] || !fs[drv8704.FaultBPDF] {
		t.Fatalf("faults = %v", fs)
	}
	if fs.Bits() != 1<<drv8704.FaultBPDF {
		t.Fatalf("Bits = %#x", fs.Bits())
	}
	fr := chip.Frames()
	if w := fr[len(fr)-1]; w != drv8704.WriteFrame(drv8704.STATUS, 1<<drv8704.FaultBPDF) {
		t.Fatalf("clear frame = %#04x", w)
	}
	if out.String() != "DRV8704 - INFO: STATUS register, AOCP cleared\n" {
		t.Fatalf("diagnostic = %q", out.String())
	}
}

func TestAutoClearFaultReasserts(t *testing.T) {
	d, chip, _ := newDev(t)
	chip.Latch(drv8704.FaultOTS)
	_, _ = d.PollFaults()
	if err := d.ClearFault(drv8704.FaultOTS); err != nil {
		t.Fatal(err)
	}
	if d.Faults()[drv8704.FaultOTS] {
		t.Fatal("OTS still flagged after clear")
	}
	// Condition persists.
	chip.Latch(drv8704.FaultOTS)
	fs, _ := d.PollFaults()
	if !fs[drv8704.FaultOTS] {
		t.Fatal("OTS did not re-latch")
	}
	if !drv8704.FaultOTS.AutoClears() || !drv8704.FaultUVLO.AutoClears() || drv8704.FaultAOCP.AutoClears() {
		t.Fatal("AutoClears wrong")
	}
}

func TestClearFaultInvalid(t *testing.T) {
	d, chip, _ := newDev(t)
	if err := d.ClearFault(drv8704.NumFaults); errcode.Of(err) != errcode.InvalidFault {
		t.Fatalf("err = %v, want invalid_fault", err)
	}
	if len(chip.Frames()) != 0 {
		t.Fatal("bus touched for invalid fault")
	}
}

func TestStatusUpperBitsIgnored(t *testing.T) {
	d, chip, _ := newDev(t)
	chip.Poke(drv8704.STATUS, 0xFC0)
	fs, err := d.PollFaults()
	if err != nil || fs.Any() {
		t.Fatalf("bits above UVLO latched: %v, %v", fs, err)
	}
}

func TestParseFault(t *testing.T) {
	for i := drv8704.Fault(0); i < drv8704.NumFaults; i++ {
		f, ok := drv8704.ParseFault(i.String())
		if !ok || f != i {
			t.Fatalf("ParseFault(%q) = %v, %v", i.String(), f, ok)
		}
	}
	if _, ok := drv8704.ParseFault("FOO"); ok {
		t.Fatal("ParseFault accepted FOO")
	}
}
