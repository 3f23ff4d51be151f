package gradle

import "fmt"

// ParseError reports a line that could not be understood in a context where
// malformation cannot be skipped. Parsing aborts at the first ParseError and
// no partial output is produced.
type ParseError struct {
	Line   int    // 1-based line number in the input stream
	Text   string // raw content of the offending line
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}
