package tui

import "testing"

func TestStripANSICodes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"tabs\tkept", "tabs\tkept"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripANSICodes(tt.in); got != tt.want {
			t.Errorf("stripANSICodes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFitLine(t *testing.T) {
	if got := fitLine("hello world", 8); got != "hello..." {
		t.Errorf("fitLine = %q", got)
	}
	if got := fitLine("short", 80); got != "short" {
		t.Errorf("fitLine = %q", got)
	}
	if got := fitLine("anything", 0); got != "anything" {
		t.Errorf("width 0 should pass through, got %q", got)
	}
}
