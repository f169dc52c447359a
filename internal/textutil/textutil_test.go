package textutil

import (
	"strings"
	"testing"
)

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestWrapText(t *testing.T) {
	wrapped := WrapText("the chain rule applies to composite functions", 20)
	if wrapped == "" {
		t.Fatal("wrapped text should not be empty")
	}
	for _, line := range splitLines(wrapped) {
		if StringWidth(line) > 20 {
			t.Errorf("line %q exceeds wrap width", line)
		}
	}
	if got := WrapText("unchanged", 0); got != "unchanged" {
		t.Errorf("width 0 should leave text alone, got %q", got)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	if got := TruncateWithEllipsis("short", 10); got != "short" {
		t.Errorf("short line should pass through, got %q", got)
	}
	got := TruncateWithEllipsis("d/dx(x^3 + 2x^2 - 5x + 1)", 12)
	if StringWidth(got) > 12 {
		t.Errorf("truncated line too wide: %q", got)
	}
	if got[len(got)-3:] != "..." {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if got := TruncateWithEllipsis("abcdef", 2); got != ".." {
		t.Errorf("tiny width should collapse to dots, got %q", got)
	}
}

func TestMaxLineWidth(t *testing.T) {
	lines := []string{"x", "x^2 + 1", "dx"}
	if got := MaxLineWidth(lines); got != 7 {
		t.Errorf("MaxLineWidth = %d, want 7", got)
	}
}
