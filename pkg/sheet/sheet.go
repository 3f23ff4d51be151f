package sheet

import (
	"io"
	"strings"

	"depsheet/pkg/errors"
	"depsheet/pkg/gradle"
)

// Format identifies an output serialization.
type Format string

// Supported output formats.
const (
	FormatCSV   Format = "csv"
	FormatTSV   Format = "tsv"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Formats lists the supported format names in display order.
func Formats() []string {
	return []string{string(FormatCSV), string(FormatTSV), string(FormatJSON), string(FormatTable)}
}

// Emitter writes an ordered artifact list to w in a single format.
type Emitter interface {
	Emit(w io.Writer, artifacts []gradle.Artifact) error
}

// New returns the emitter for format. An unknown format is a configuration
// error; callers should surface it before reading any input.
func New(format Format) (Emitter, error) {
	switch format {
	case FormatCSV:
		return delimitedEmitter{comma: ','}, nil
	case FormatTSV:
		return delimitedEmitter{comma: '\t'}, nil
	case FormatJSON:
		return jsonEmitter{}, nil
	case FormatTable:
		return tableEmitter{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
}
