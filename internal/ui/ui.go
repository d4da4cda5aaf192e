package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled resolves an "auto" / "always" / "never" setting for w.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return IsTerminal(w)
	}
}

// Printer writes labelled puzzle results.
type Printer struct {
	w     io.Writer
	color bool
}

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) paint(color, s string) string {
	if !p.color {
		return s
	}
	return color + s + ColorReset
}

// Header prints a bold section title.
func (p *Printer) Header(msg string) {
	fmt.Fprintln(p.w, p.paint(ColorBold, msg))
}

// Result prints "label: value".
func (p *Printer) Result(label string, value any) {
	fmt.Fprintf(p.w, "%s: %s\n", label, p.paint(ColorGreen, fmt.Sprint(value)))
}

// Missing prints a result that has no value.
func (p *Printer) Missing(label string) {
	fmt.Fprintf(p.w, "%s: %s\n", label, p.paint(ColorYellow, "none"))
}

// Error prints err with a red "Error:" prefix.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.paint(ColorRed, "Error:"), err)
}

// Detail prints an indented secondary line.
func (p *Printer) Detail(msg string) {
	fmt.Fprintf(p.w, "  %s\n", p.paint(ColorCyan, msg))
}

// Spinner represents a loading indicator
type Spinner struct {
	w        io.Writer
	msg      string
	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
}

// StartSpinner starts a new spinner with the given message on w.
func StartSpinner(w io.Writer, msg string) *Spinner {
	s := &Spinner{
		w:        w,
		msg:      msg,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.doneChan)
	chars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	i := 0
	for {
		fmt.Fprintf(s.w, "\r%s%s%s %s", ColorCyan, chars[i], ColorReset, s.msg)
		i = (i + 1) % len(chars)
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
		}
	}
}

// Stop stops the spinner and clears the line. Safe to call multiple times.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		<-s.doneChan
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.msg)+10))
	})
}

// RunSpinner executes the given action while showing a spinner on w.
// The spinner only appears when w is a terminal.
func RunSpinner(w io.Writer, msg string, action func() error) error {
	if !IsTerminal(w) {
		return action()
	}
	s := StartSpinner(w, msg)
	defer s.Stop()
	return action()
}
