package main

import (
	"fmt"
	"io"
	"os"
)

type tone string

const (
	toneInfo tone = "\033[0;34m"
	toneOK   tone = "\033[0;32m"
	toneWarn tone = "\033[1;33m"
	toneFail tone = "\033[0;31m"
)

const (
	toneReset  = "\033[0m"
	envNoColor = "NO_COLOR"
)

// out is swapped by tests
var out io.Writer = os.Stdout

func colorEnabled() bool {
	_, set := os.LookupEnv(envNoColor)
	return !set
}

func emit(t tone, prefix, format string, a ...interface{}) {
	line := prefix + fmt.Sprintf(format, a...)
	if colorEnabled() {
		line = string(t) + line + toneReset
	}
	fmt.Fprintln(out, line)
}

func PrintInfo(format string, a ...interface{})    { emit(toneInfo, "ℹ ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { emit(toneOK, "✓ ", format, a...) }
func PrintWarning(format string, a ...interface{}) { emit(toneWarn, "⚠ ", format, a...) }
func PrintError(format string, a ...interface{})   { emit(toneFail, "✗ ", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintln(out)
	emit(toneWarn, "", "=== %s ===", title)
}
