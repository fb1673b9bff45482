package core

import "testing"

func TestVideoTypeLabel(t *testing.T) {
	if got := VideoTypeLabel("vlog"); got != "Vlog Diary" {
		t.Errorf("expected label for vlog, got %q", got)
	}
	if got := VideoTypeLabel("something_new"); got != "something_new" {
		t.Errorf("unknown value should fall back to itself, got %q", got)
	}
}

func TestStyleLabel(t *testing.T) {
	if got := StyleLabel("humorous"); got != "Humorous" {
		t.Errorf("expected label for humorous, got %q", got)
	}
	if got := StyleLabel(""); got != "" {
		t.Errorf("empty value should fall back to itself, got %q", got)
	}
}
