package cmdutils

import (
	"bytes"
	"testing"
)

func TestMark(t *testing.T) {
	if Mark(true) != "✓" || Mark(false) != "✗" {
		t.Fatalf("unexpected marks %q %q", Mark(true), Mark(false))
	}
}

func TestPrintResponse(t *testing.T) {
	var buf bytes.Buffer
	PrintResponse(&buf, "Credit", "")
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty text, got %q", buf.String())
	}

	PrintResponse(&buf, "Credit", "{}")
	if got := buf.String(); got != "\nCredit\n{}\n\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
