package console

import (
	"fmt"
	"io"
)

// Notifier is the transient user-visible notification surface. Fetch and
// submit failures go through here instead of crashing a screen.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// PrintNotifier writes notifications to a writer, normally stdout.
type PrintNotifier struct {
	Out io.Writer
}

func (n *PrintNotifier) Success(msg string) {
	fmt.Fprintf(n.Out, "✓ %s\n", msg)
}

func (n *PrintNotifier) Error(msg string) {
	fmt.Fprintf(n.Out, "✗ %s\n", msg)
}
