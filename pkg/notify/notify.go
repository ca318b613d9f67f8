// Package notify is the user-facing notification boundary: saves, deletes,
// and validation problems surface here rather than in the core packages.
package notify

import (
	"fmt"

	"github.com/fatih/color"
)

type Severity int

const (
	Info Severity = iota
	Success
	Error
)

// Notifier receives one notification per user-visible outcome.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// Func adapts a plain function to the Notifier interface.
type Func func(title, message string, severity Severity)

func (f Func) Notify(title, message string, severity Severity) {
	f(title, message, severity)
}

// Pretty prints notifications to the terminal.
type Pretty struct{}

func (Pretty) Notify(title, message string, severity Severity) {
	t := color.New(color.Bold)
	switch severity {
	case Success:
		t = t.Add(color.FgGreen)
	case Error:
		t = t.Add(color.FgRed)
	}
	_, _ = t.Fprint(color.Output, title)
	_, _ = fmt.Fprintf(color.Output, ": %s\n", message)
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(string, string, Severity) {}
