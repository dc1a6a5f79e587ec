//go:build !tinygo

package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestArenaCommand(t *testing.T) {
	out, err := execute(t, "arena", "--sizes", "8,16,3,1024", "--align", "8", "--base", "0x1000")
	if err != nil {
		t.Fatalf("arena: %v", err)
	}
	for _, want := range []string{
		"#0 size=8: 0x1000",
		"#1 size=16: 0x1008",
		"#2 size=3: 0x1018",
		"#3 size=1024: 0x1020",
		"allocs=4 failures=0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestArenaCommandOutOfMemory(t *testing.T) {
	out, err := execute(t, "arena", "--sizes", "102400,1", "--align", "1")
	if err != nil {
		t.Fatalf("arena: %v", err)
	}
	if !strings.Contains(out, "#1 size=1: out of memory") {
		t.Fatalf("output missing failure:\n%s", out)
	}
}

func TestArenaCommandRejectsAlign(t *testing.T) {
	if _, err := execute(t, "arena", "--align", "12"); err == nil {
		t.Fatal("expected error for non power of two alignment")
	}
}

func TestSimCommand(t *testing.T) {
	out, err := execute(t, "sim", "--ticks", "4", "--keys", "1:w")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	for _, want := range []string{
		"ticks:   4",
		"score:   0 - 0",
		"ball:    (323,243) v=(2,2)",
		"paddles: left=190 right=222 ai=1",
		"irq:     timer=4 keyboard=1 nested=0 dropped=0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimCommandBadScript(t *testing.T) {
	if _, err := execute(t, "sim", "--keys", "nope"); err == nil {
		t.Fatal("expected error for malformed key script")
	}
}
