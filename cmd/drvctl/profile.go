//go:build !rp2040 && !rp2350

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"drv8704-go/drivers/drv8704"
	"drv8704-go/errcode"
)

// Setting is one profile entry. Value uses the same text as "set".
type Setting struct {
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// Profile is an ordered list of settings applied top to bottom.
type Profile struct {
	Settings []Setting `yaml:"settings"`
}

// Diff is a profile setting the device does not currently hold.
type Diff struct {
	Field, Want, Have string
}

func loadProfile(path string) (*Profile, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := parseProfile(f)
	return p, errors.Wrap(err, path)
}

// parseProfile decodes and validates a profile. Every field name and value
// is checked before anything touches the device.
func parseProfile(r io.Reader) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode profile")
	}
	for i, s := range p.Settings {
		f, ok := drv8704.FieldByName(s.Field)
		if !ok {
			return nil, errors.Wrapf(&errcode.E{C: errcode.UnknownField, Op: s.Field}, "setting %d", i)
		}
		v, err := f.Parse(s.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "setting %d", i)
		}
		if _, ok := f.Encode(v); !ok {
			return nil, errors.Wrapf(&errcode.E{C: errcode.InvalidInput, Op: f.Name, Msg: s.Value}, "setting %d", i)
		}
	}
	return &p, nil
}

// apply sets every entry in order and stops at the first failure.
func (p *Profile) apply(d *drv8704.Device) error {
	for _, s := range p.Settings {
		if err := d.SetByName(s.Field, s.Value); err != nil {
			return err
		}
	}
	return nil
}

// check reads every field the profile names and reports the differences.
// A later entry for the same field overrides an earlier one.
func (p *Profile) check(d *drv8704.Device) ([]Diff, error) {
	want := map[*drv8704.Field]drv8704.Value{}
	var order []*drv8704.Field
	for _, s := range p.Settings {
		f, _ := drv8704.FieldByName(s.Field)
		v, _ := f.Parse(s.Value)
		if _, seen := want[f]; !seen {
			order = append(order, f)
		}
		want[f] = v
	}
	var diffs []Diff
	for _, f := range order {
		have, err := d.Get(f)
		if err != nil && errcode.Of(err) != errcode.Unrecognized {
			return diffs, err
		}
		if have != want[f] {
			diffs = append(diffs, Diff{Field: f.Name, Want: f.Format(want[f]), Have: f.Format(have)})
		}
	}
	return diffs, nil
}
