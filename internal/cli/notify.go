package cli

import (
	"fmt"
	"io"
)

// ConsoleNotifier renders notifications as prefixed lines on W. It stands in
// for the toast popups of a graphical console.
type ConsoleNotifier struct {
	W io.Writer
}

func (n *ConsoleNotifier) Success(msg string) {
	fmt.Fprintf(n.W, "OK: %s\n", msg)
}

func (n *ConsoleNotifier) Warning(msg string) {
	fmt.Fprintf(n.W, "WARN: %s\n", msg)
}

func (n *ConsoleNotifier) Error(msg string) {
	fmt.Fprintf(n.W, "ERROR: %s\n", msg)
}
