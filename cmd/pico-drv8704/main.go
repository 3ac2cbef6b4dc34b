//go:build rp2040 || rp2350

package main

import (
	"runtime"
	"time"

	"drv8704-go/diag"
	"drv8704-go/drivers/drv8704"
	"drv8704-go/platform/rp2"
)

const pollEvery = 250 * time.Millisecond

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot")

	b, err := rp2.Setup(rp2.DefaultPins)
	if err != nil {
		println("[main] setup failed:", err.Error())
		return
	}

	log := diag.New(b.Console, diag.Error)
	log.SetLevel(drv8704.DefaultTag, diag.Info)

	d := drv8704.New(b.SPI, b.CS, log, drv8704.Config{})

	if _, err := d.Diagnose(drv8704.PowerOnDefaults); err != nil {
		println("[main] diagnose:", err.Error())
	}

	// Bench profile: 20 V/V sense gain, mixed decay, 1 V OCP, bridges on.
	steps := []func() error{
		func() error { return d.SetISGain(20) },
		func() error { return d.SetDecayMode(drv8704.DecayMixed) },
		func() error { return d.SetOCPThreshold(1000) },
		func() error { return d.SetOCPDeglitch(4.2) },
		func() error { return d.SetHBridge(drv8704.BridgeOn) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			println("[main] config:", err.Error())
		}
	}

	log.SetLevel(d.Tag(), diag.Error)

	tick := time.NewTicker(pollEvery)
	defer tick.Stop()
	var n int
	for range tick.C {
		fs, err := d.PollFaults()
		if err != nil {
			println("[main] poll:", err.Error())
			continue
		}
		// Auto-clearing faults are acknowledged so they can re-latch.
		for f := drv8704.Fault(0); f < drv8704.NumFaults; f++ {
			if fs[f] && f.AutoClears() {
				if err := d.ClearFault(f); err != nil {
					println("[main] clear", f.String()+":", err.Error())
				}
			}
		}
		if n++; n%40 == 0 {
			printMem()
		}
	}
}

// printMem prints a compact snapshot of TinyGo runtime memory stats.
func printMem() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	println(
		"[mem]",
		"alloc:", uint32(ms.Alloc),
		"heapInuse:", uint32(ms.HeapInuse),
		"mallocs:", uint32(ms.Mallocs),
		"frees:", uint32(ms.Frees),
	)
}
