// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Progress reports pipeline stages. On a terminal it animates a spinner
// whose suffix is the current stage; elsewhere it prints one line per stage.
type Progress struct {
	out     *os.File
	spinner *spinner.Spinner
}

// NewProgress creates a Progress writing to f, normally os.Stderr.
func NewProgress(f *os.File) *Progress {
	p := &Progress{out: f}
	if IsTerminal(f) {
		p.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	}
	return p
}

// Step announces the stage now running.
func (p *Progress) Step(msg string) {
	if p.spinner == nil {
		fmt.Fprintln(p.out, msg)
		return
	}
	p.spinner.Lock()
	p.spinner.Suffix = " " + msg
	p.spinner.Unlock()
	if !p.spinner.Active() {
		p.spinner.Start()
	}
}

// Stop clears the spinner. It is safe to call more than once.
func (p *Progress) Stop() {
	if p.spinner != nil && p.spinner.Active() {
		p.spinner.Stop()
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
