package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.WarnLevel,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("info")
	t.Cleanup(func() { SetLevel("warn") })

	Debug().Msg("hidden")
	Info().Str("op", "add").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %s", out)
	}
	if !strings.Contains(out, `"op":"add"`) || !strings.Contains(out, "shown") {
		t.Fatalf("missing info line: %s", out)
	}
}

func TestSetup_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "lk.log")
	c, err := Setup("debug", p)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	Debug().Msg("to file")
	l := Logger()
	l.Info().Msg("via injected logger")
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{"to file", "via injected logger"} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("log file missing %q: %q", want, b)
		}
	}
	SetOutput(&bytes.Buffer{})
	SetLevel("warn")
}

func TestError_AboveWarnLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("error")
	t.Cleanup(func() { SetLevel("warn") })

	Warn().Msg("quiet")
	Error().Str("op", "tui").Msg("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("warn line leaked at error level: %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, "loud") {
		t.Fatalf("missing error line: %s", out)
	}
}
