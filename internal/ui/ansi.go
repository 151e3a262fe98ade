package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// SetOutput redirects OK, Notice and Panel to out and Fail and Hint to errOut.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

// colorCapable asks termenv whether the current stdout writer renders ANSI
// colour. It honours NO_COLOR, CLICOLOR_FORCE and non-tty writers.
func colorCapable() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return termenv.NewOutput(stdout).EnvColorProfile() != termenv.Ascii
}

func C(color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || colorCapable() {
		return color + s + reset
	}
	return s
}

func OK(msg string)     { fmt.Fprintln(stdout, C(current.Success, symCheck+" "+msg)) }
func Fail(msg string)   { fmt.Fprintln(stderr, C(current.Error, symCross+" "+msg)) }
func Notice(msg string) { fmt.Fprintln(stdout, C(current.Muted, "· "+msg)) }
func Hint(msg string)   { fmt.Fprintln(stderr, C(current.Muted, msg)) }
