package notify

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleNotifierError(t *testing.T) {
	var buf bytes.Buffer
	n := &ConsoleNotifier{Out: &buf}
	n.Error("session expired, please log in again")

	if !strings.Contains(buf.String(), "session expired") {
		t.Errorf("notification not written, got %q", buf.String())
	}
}

func TestConsoleNavigatorRedirectOncePerConsume(t *testing.T) {
	var buf bytes.Buffer
	n := &ConsoleNavigator{Out: &buf}

	n.ToLogin()
	n.ToLogin()

	// The prompt prints once until the redirect is consumed.
	if got := strings.Count(buf.String(), "redirected to login"); got != 1 {
		t.Errorf("expected one redirect prompt, got %d", got)
	}

	if !n.ConsumeRedirect() {
		t.Error("expected a pending redirect")
	}
	if n.ConsumeRedirect() {
		t.Error("redirect should be cleared after consume")
	}
}
