// Package notify provides the console implementations of the pipeline's
// presentation side effects: user notifications and forced navigation.
package notify

import (
	"fmt"
	"io"
	"sync/atomic"
)

// ConsoleNotifier prints transient user-facing messages to a terminal.
type ConsoleNotifier struct {
	Out io.Writer
}

// Error prints a failure message.
func (n *ConsoleNotifier) Error(msg string) {
	fmt.Fprintf(n.Out, "! %s\n", msg)
}

// ConsoleNavigator is the console analogue of a router redirect to the login
// view: it tells the user to log in again and raises a flag the command loop
// checks.
type ConsoleNavigator struct {
	Out      io.Writer
	redirect atomic.Bool
}

// ToLogin records the redirect and informs the user.
func (n *ConsoleNavigator) ToLogin() {
	if n.redirect.CompareAndSwap(false, true) {
		fmt.Fprintln(n.Out, "> redirected to login, use 'login' to continue")
	}
}

// ConsumeRedirect reports whether a redirect was requested since the last
// check, and resets the flag.
func (n *ConsoleNavigator) ConsumeRedirect() bool {
	return n.redirect.Swap(false)
}
