package sheet

import (
	"encoding/csv"
	"io"

	"depsheet/pkg/gradle"
)

// delimitedEmitter writes CSV or TSV rows. Maven coordinate grammar should
// never produce fields needing quoting, but encoding/csv escapes commas,
// quotes and newlines anyway rather than trusting that.
type delimitedEmitter struct {
	comma rune
}

func (e delimitedEmitter) Emit(w io.Writer, artifacts []gradle.Artifact) error {
	cw := csv.NewWriter(w)
	cw.Comma = e.comma

	if err := cw.Write([]string{"group", "name", "version"}); err != nil {
		return err
	}
	for _, a := range artifacts {
		if err := cw.Write([]string{a.Group, a.Name, a.Version}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
