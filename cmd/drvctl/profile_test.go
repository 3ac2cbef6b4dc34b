//go:build !rp2040 && !rp2350

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"drv8704-go/drivers/drv8704"
	"drv8704-go/errcode"
)

const benchProfile = `
settings:
  - field: ISGAIN
    value: "10"
  - field: decmod
    value: auto
  - field: OCPDEG
    value: "1.05"
  - field: TORQUE
    value: "0x80"
`

func TestParseProfile(t *testing.T) {
	p, err := parseProfile(strings.NewReader(benchProfile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(p.Settings) != 4 || p.Settings[1] != (Setting{Field: "decmod", Value: "auto"}) {
		t.Fatalf("settings = %+v", p.Settings)
	}

	bad := []struct {
		src  string
		code errcode.Code
	}{
		{"settings:\n  - field: NOPE\n    value: \"1\"\n", errcode.UnknownField},
		{"settings:\n  - field: ISGAIN\n    value: \"15\"\n", errcode.InvalidInput},
		{"settings:\n  - field: DECMOD\n    value: medium\n", errcode.InvalidInput},
	}
	for _, c := range bad {
		if _, err := parseProfile(strings.NewReader(c.src)); errcode.Of(err) != c.code {
			t.Fatalf("parse %q: err = %v, want %s", c.src, err, c.code)
		}
	}
	if _, err := parseProfile(strings.NewReader("setings: []\n")); err == nil {
		t.Fatal("unknown key accepted")
	}
}

func TestApplyAndCheckProfile(t *testing.T) {
	s, chip, out := newSimSession(t)
	path := filepath.Join(t.TempDir(), "bench.yaml")
	if err := os.WriteFile(path, []byte(benchProfile), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := s.exec([]string{"check", path}); err == nil {
		t.Fatal("check passed before apply")
	}
	if !strings.Contains(out.String(), "ISGAIN: want 10, have 40\n") {
		t.Fatalf("check output = %q", out.String())
	}

	out.Reset()
	if err := s.exec([]string{"apply", path}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := s.exec([]string{"check", path}); err != nil {
		t.Fatalf("check after apply: %v", err)
	}
	if out.String() != "profile matches\n" {
		t.Fatalf("output = %q", out.String())
	}
	if got := chip.Peek(drv8704.DECAY) >> 8; got != 0b101 {
		t.Fatalf("DECMOD bits = %03b", got)
	}
}

func TestCheckReportsUnknownPattern(t *testing.T) {
	s, chip, _ := newSimSession(t)
	chip.Poke(drv8704.DECAY, 0x110)
	p, err := parseProfile(strings.NewReader("settings:\n  - field: DECMOD\n    value: slow\n"))
	if err != nil {
		t.Fatal(err)
	}
	diffs, err := p.check(s.dev)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(diffs) != 1 || diffs[0].Have != "unknown" {
		t.Fatalf("diffs = %+v", diffs)
	}
}
