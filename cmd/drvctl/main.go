//go:build !rp2040 && !rp2350

// Command drvctl reads and writes DRV8704 registers from a Linux host, or
// against the built-in simulator with --sim.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"drv8704-go/diag"
	"drv8704-go/diag/zapdiag"
	"drv8704-go/drivers/drv8704"
	"drv8704-go/drivers/drv8704/sim"
	"drv8704-go/platform/periphspi"
)

const (
	flagBus   = "bus"
	flagCS    = "cs"
	flagHz    = "hz"
	flagSim   = "sim"
	flagLevel = "level"
	flagTag   = "tag"
	flagDebug = "debug"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "drvctl:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var (
		logger *zap.Logger
		sess   *session
		closer io.Closer
	)

	// open is deferred to the first command so that --help never touches
	// the bus.
	open := func(c *cli.Context) (*session, error) {
		if sess != nil {
			return sess, nil
		}
		lvl := diag.ParseLevel(c.String(flagLevel))
		rec := zapdiag.New(logger, lvl)
		tag := c.String(flagTag)
		rec.Record(diag.Global, tag, "Log level set:", lvl.String())

		cfg := drv8704.Config{Tag: tag}
		if c.Bool(flagSim) {
			chip := sim.New()
			sess = &session{dev: drv8704.New(chip, chip.Select, rec, cfg), out: c.App.Writer}
			return sess, nil
		}
		port, err := periphspi.Open(periphspi.Config{
			Bus: c.String(flagBus),
			CS:  c.String(flagCS),
			Hz:  c.Int64(flagHz),
		})
		if err != nil {
			return nil, err
		}
		closer = port
		logger.Debug("opened spi", zap.String("bus", c.String(flagBus)), zap.String("cs", c.String(flagCS)))
		sess = &session{dev: drv8704.New(port, port.Select, rec, cfg), out: c.App.Writer}
		return sess, nil
	}

	action := func(name string) cli.ActionFunc {
		return func(c *cli.Context) error {
			s, err := open(c)
			if err != nil {
				return err
			}
			return s.exec(append([]string{name}, c.Args().Slice()...))
		}
	}

	cmds := []*cli.Command{
		{Name: "dump", Usage: "print every register and field", Action: action("dump")},
		{Name: "fields", Usage: "list settable fields and their legal values", Action: action("fields")},
		{Name: "get", Usage: "read one field", ArgsUsage: "FIELD", Action: action("get")},
		{Name: "set", Usage: "write one field and verify it", ArgsUsage: "FIELD VALUE", Action: action("set")},
		{Name: "faults", Usage: "poll STATUS and print latched faults", Action: action("faults")},
		{Name: "clear-fault", Usage: "clear one STATUS fault", ArgsUsage: "NAME|INDEX", Action: action("clear-fault")},
		{Name: "defaults", Usage: "restore power-on defaults and verify", Action: action("defaults")},
		{Name: "apply", Usage: "apply a YAML profile", ArgsUsage: "PROFILE", Action: action("apply")},
		{Name: "check", Usage: "compare the device against a YAML profile", ArgsUsage: "PROFILE", Action: action("check")},
		{
			Name:      "script",
			Usage:     "run commands from a file, one per line",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.Args().Len() != 1 {
					return errors.New("usage: script FILE")
				}
				s, err := open(c)
				if err != nil {
					return err
				}
				//nolint:gosec
				f, err := os.Open(c.Args().First())
				if err != nil {
					return err
				}
				defer f.Close()
				return s.script(f)
			},
		},
	}

	return &cli.App{
		Name:  "drvctl",
		Usage: "DRV8704 gate-driver register tool",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagBus, Value: "SPI0.0", Usage: "spidev port `NAME`"},
			&cli.StringFlag{Name: flagCS, Value: "GPIO25", Usage: "active-high chip-select `GPIO`"},
			&cli.Int64Flag{Name: flagHz, Value: drv8704.Frequency, Usage: "SPI clock in Hz"},
			&cli.BoolFlag{Name: flagSim, Usage: "use the simulated chip instead of hardware"},
			&cli.StringFlag{Name: flagLevel, Value: "info", Usage: "diagnostics level: off, global, error, info"},
			&cli.StringFlag{Name: flagTag, Value: drv8704.DefaultTag, Usage: "diagnostics tag"},
			&cli.BoolFlag{Name: flagDebug, Usage: "enable debug logging"},
		},
		Before: func(c *cli.Context) error {
			var err error
			if c.Bool(flagDebug) {
				logger, err = zap.NewDevelopment()
			} else {
				cfg := zap.NewProductionConfig()
				cfg.Encoding = "console"
				logger, err = cfg.Build()
			}
			return err
		},
		After: func(c *cli.Context) error {
			var err error
			if closer != nil {
				err = closer.Close()
			}
			if logger != nil {
				// Sync on a terminal returns EINVAL; ignore it.
				_ = logger.Sync()
			}
			return err
		},
		Commands: cmds,
	}
}
