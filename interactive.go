package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// InteractiveStepper drives the Interpreter one decoded macro at a time,
// waiting for a keypress between steps (spec.md §6 --interactive). Adapted
// from the teacher's TerminalHost raw-mode pair (term.MakeRaw/term.Restore)
// but reading single keys to advance rather than feeding an emulated
// terminal device.
type InteractiveStepper struct {
	interp *Interpreter
	fd     int
}

// NewInteractiveStepper wraps interp for single-step driving against stdin.
func NewInteractiveStepper(interp *Interpreter) *InteractiveStepper {
	return &InteractiveStepper{interp: interp, fd: int(os.Stdin.Fd())}
}

// Run steps interp to completion, pausing for a keypress after each step.
// Falls back to line-buffered Enter-to-continue if stdin is not a terminal.
func (s *InteractiveStepper) Run() {
	if !term.IsTerminal(s.fd) {
		s.runLineBuffered()
		return
	}

	oldState, err := term.MakeRaw(s.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gbd: interactive mode unavailable (%v), falling back to line mode\n", err)
		s.runLineBuffered()
		return
	}
	defer term.Restore(s.fd, oldState)

	buf := make([]byte, 1)
	for !s.interp.TaskDone && !s.interp.Diag.Crashed() {
		s.interp.Step()
		fmt.Fprint(s.interp.Out, "-- press any key to step, q to quit --\r\n")
		if _, err := os.Stdin.Read(buf); err != nil {
			break
		}
		if buf[0] == 'q' || buf[0] == 'Q' {
			break
		}
	}
	if s.interp.Diag.Crashed() {
		PrintPostMortem(s.interp)
	}
}

func (s *InteractiveStepper) runLineBuffered() {
	scanner := bufio.NewScanner(os.Stdin)
	for !s.interp.TaskDone && !s.interp.Diag.Crashed() {
		s.interp.Step()
		fmt.Fprint(s.interp.Out, "-- press Enter to step, q<Enter> to quit --\n")
		if !scanner.Scan() {
			break
		}
		if scanner.Text() == "q" {
			break
		}
	}
	if s.interp.Diag.Crashed() {
		PrintPostMortem(s.interp)
	}
}
