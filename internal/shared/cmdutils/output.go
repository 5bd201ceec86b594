package cmdutils

import (
	"fmt"
	"io"
)

const (
	markOK   = "✓"
	markFail = "✗"
)

// Mark returns a check mark for ok and a cross otherwise.
func Mark(ok bool) string {
	if ok {
		return markOK
	}
	return markFail
}

// PrintResponse writes a titled block of text to w. Empty text prints nothing.
func PrintResponse(w io.Writer, title, text string) {
	if text == "" {
		return
	}

	fmt.Fprintf(w, "\n%s\n%s\n\n", title, text)
}
