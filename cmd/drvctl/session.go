//go:build !rp2040 && !rp2350

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"

	"drv8704-go/drivers/drv8704"
	"drv8704-go/errcode"
	"drv8704-go/x/conv"
)

// session is one open device plus where command output goes. Commands are
// methods so that the CLI and script files share a single dispatcher.
type session struct {
	dev *drv8704.Device
	out io.Writer
}

type command struct {
	usage string
	nargs int
	run   func(s *session, args []string) error
}

// commands is the script vocabulary; the CLI exposes the same set.
var commands = map[string]command{
	"dump":        {"", 0, (*session).dump},
	"fields":      {"", 0, (*session).fields},
	"get":         {"FIELD", 1, (*session).get},
	"set":         {"FIELD VALUE", 2, (*session).set},
	"faults":      {"", 0, (*session).faults},
	"clear-fault": {"NAME|INDEX", 1, (*session).clearFault},
	"defaults":    {"", 0, (*session).defaults},
	"apply":       {"PROFILE", 1, (*session).apply},
	"check":       {"PROFILE", 1, (*session).check},
}

// exec runs one command line already split into words.
func (s *session) exec(args []string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return errors.Errorf("unknown command %q", args[0])
	}
	if len(args)-1 != cmd.nargs {
		return errors.Errorf("usage: %s %s", args[0], cmd.usage)
	}
	return cmd.run(s, args[1:])
}

// script runs one command per line. Blank lines and lines starting with #
// are skipped. The first failing line stops the script.
func (s *session) script(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := shlex.Split(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
		if err := s.exec(words); err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
	}
	return sc.Err()
}

func (s *session) dump(_ []string) error {
	rf, err := s.dev.ReadAll()
	if err != nil {
		return err
	}
	for r := drv8704.CTRL; r < drv8704.NumRegisters; r++ {
		if r == drv8704.Reserved {
			continue
		}
		fmt.Fprintf(s.out, "%-8s %s\n", r, conv.Hex12(rf[r]))
		for _, f := range drv8704.Fields() {
			if f.Reg != r {
				continue
			}
			v, _ := rf.Field(f)
			fmt.Fprintf(s.out, "  %-8s %s\n", f.Name, withUnit(f, v))
		}
	}
	return nil
}

func (s *session) fields(_ []string) error {
	for _, f := range drv8704.Fields() {
		fmt.Fprintf(s.out, "%-8s %-7s %-22s default %s\n", f.Name, f.Reg, f.Describe(), withUnit(f, f.Default))
	}
	return nil
}

func (s *session) get(args []string) error {
	f, ok := drv8704.FieldByName(args[0])
	if !ok {
		return errors.Errorf("no field %q", args[0])
	}
	v, err := s.dev.Get(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %s\n", f.Name, withUnit(f, v))
	return nil
}

func (s *session) set(args []string) error {
	return s.dev.SetByName(args[0], args[1])
}

func (s *session) faults(_ []string) error {
	fs, err := s.dev.PollFaults()
	if err != nil {
		return err
	}
	if !fs.Any() {
		fmt.Fprintln(s.out, "no faults")
		return nil
	}
	for f := drv8704.Fault(0); f < drv8704.NumFaults; f++ {
		if fs[f] {
			fmt.Fprintln(s.out, f)
		}
	}
	return nil
}

func (s *session) clearFault(args []string) error {
	f, ok := drv8704.ParseFault(strings.ToUpper(args[0]))
	if !ok {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Errorf("no fault %q", args[0])
		}
		// Range-check before narrowing: Fault is a uint8.
		if n < 0 || n >= int(drv8704.NumFaults) {
			return &errcode.E{C: errcode.InvalidFault, Op: "STATUS", Msg: args[0]}
		}
		f = drv8704.Fault(n)
	}
	return s.dev.ClearFault(f)
}

func (s *session) defaults(_ []string) error {
	return s.dev.ApplyDefaults()
}

func (s *session) apply(args []string) error {
	p, err := loadProfile(args[0])
	if err != nil {
		return err
	}
	return p.apply(s.dev)
}

func (s *session) check(args []string) error {
	p, err := loadProfile(args[0])
	if err != nil {
		return err
	}
	diffs, err := p.check(s.dev)
	if err != nil {
		return err
	}
	for _, d := range diffs {
		fmt.Fprintf(s.out, "%s: want %s, have %s\n", d.Field, d.Want, d.Have)
	}
	if len(diffs) > 0 {
		return errors.Errorf("%d setting(s) differ", len(diffs))
	}
	fmt.Fprintln(s.out, "profile matches")
	return nil
}

func withUnit(f *drv8704.Field, v drv8704.Value) string {
	s := f.Format(v)
	if f.Unit != "" && !v.IsUnknown() {
		s += " " + f.Unit
	}
	return s
}
