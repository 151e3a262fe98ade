package ui

import (
	"strings"
	"testing"
)

func TestMeter(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	if got := Meter(5, 25, 10); got != "##........ 5/25" {
		t.Fatalf("Meter = %q", got)
	}
	if got := Meter(40, 25, 5); got != "##### 25/25" {
		t.Fatalf("overfull Meter = %q", got)
	}
}

func TestPanelString_PadsByVisibleWidth(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	out := PanelString([]string{"ab", "\033[31mabcd\033[0m", "日本"})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "+------+" {
		t.Fatalf("top border = %q", lines[0])
	}
	if lines[1] != "| ab   |" {
		t.Fatalf("padded line = %q", lines[1])
	}
	if lines[3] != "| 日本 |" {
		t.Fatalf("wide runes = %q", lines[3])
	}
}

func TestC_MonoDisablesColor(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
	if got := C(fgRed, "x"); got != "x" {
		t.Fatalf("mono should not colour: %q", got)
	}
}

func TestC_Forced(t *testing.T) {
	SetTheme("classic")
	SetColorForcing(true, false)
	t.Cleanup(func() { SetColorForcing(false, false) })
	if got := C(fgRed, "x"); got != fgRed+"x"+reset {
		t.Fatalf("forced colour = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 6); got != "hello…" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("Truncate = %q", got)
	}
}
