// Command fretscope analyses guitar recordings: it ranks spectral peaks,
// matches them against the fretboard and tracks band energy over time.
//
// Usage:
//
//	fretscope [flags] <command>
//
// Examples:
//
//	fretscope analyze --note 196
//	fretscope analyze --input capture.json --output json
//	fretscope bands --note 82 --duration 2 --window-size 4410
//	fretscope catalogue --string 6
//
// Input files use the worker request shape:
//
//	{"data":[{"x":0,"y":0.1}, ...],"sampleRate":44100}
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
