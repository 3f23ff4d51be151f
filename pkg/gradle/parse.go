package gradle

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Mode selects how much structure the parser expects from its input.
type Mode int

const (
	// ModeReport consumes raw `gradle dependencies` output, locating the
	// dependency tree among headers, legends and build noise. Lines that do
	// not look like tree entries are ignored.
	ModeReport Mode = iota

	// ModePretty consumes input the caller has already reduced to tree
	// lines. Any non-blank line that is not a coordinate entry is a
	// ParseError.
	ModePretty
)

// Tree-drawing prefixes used by Gradle. A top-level entry starts the line
// with one of the glyphs; nested entries are indented in five-column steps
// ("|    " or "     ") before the glyph.
const (
	branchGlyph = "+--- "
	lastGlyph   = `\--- `
	glyphTail   = "--- "
	indentWidth = 5
)

// Parse reads a dependency report from r and returns the flattened,
// deduplicated artifact list in first-seen order. The returned error is a
// *ParseError for malformed input, or the reader's error if reading fails.
func Parse(r io.Reader, mode Mode) ([]Artifact, error) {
	set := newArtifactSet()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var started, ended bool
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()

		var err error
		if mode == ModePretty {
			err = consumePretty(text, line, set)
		} else {
			err = consumeReport(text, line, set, &started, &ended)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dependency report: %w", err)
	}
	return set.artifacts(), nil
}

// consumeReport advances the report-mode state machine by one line.
//
// Before the first top-level tree entry everything is header noise. Inside
// the tree, a blank line or the report legend ends the scope; non-tree lines
// are tolerated. After the scope ends, another top-level entry means the
// report contains more than one configuration, which this parser cannot
// untangle.
func consumeReport(text string, line int, set *artifactSet, started, ended *bool) error {
	switch {
	case !*started:
		if !isTopLevel(text) {
			return nil
		}
		*started = true
	case *ended:
		if isTopLevel(text) {
			return &ParseError{
				Line:   line,
				Text:   text,
				Reason: "report contains multiple dependency trees; re-run Gradle with --configuration <name>",
			}
		}
		return nil
	default:
		if strings.TrimSpace(text) == "" || isLegend(text) {
			*ended = true
			return nil
		}
	}

	entry, ok := treeEntry(text)
	if !ok {
		// Wrapped or decorative text inside the scope. Known noise, not an
		// error, in report mode.
		return nil
	}
	if isProjectRef(entry) {
		return nil
	}
	a, err := parseCoordinate(entry)
	if err != nil {
		return &ParseError{Line: line, Text: text, Reason: err.Error()}
	}
	set.add(a)
	return nil
}

// consumePretty handles one line of pre-extracted tree content. The tree
// glyph prefix is optional; blank lines are skipped; everything else must be
// a coordinate entry.
func consumePretty(text string, line int, set *artifactSet) error {
	entry := strings.TrimSpace(text)
	if entry == "" {
		return nil
	}
	if stripped, ok := treeEntry(text); ok {
		entry = stripped
	}
	if isProjectRef(entry) {
		return nil
	}
	a, err := parseCoordinate(entry)
	if err != nil {
		return &ParseError{Line: line, Text: text, Reason: err.Error()}
	}
	set.add(a)
	return nil
}

// isTopLevel reports whether the line begins a depth-zero tree entry, the
// marker used to detect where a dependency tree starts.
func isTopLevel(text string) bool {
	return strings.HasPrefix(text, branchGlyph) || strings.HasPrefix(text, lastGlyph)
}

// treeEntry strips the tree-drawing prefix and returns the entry text. It
// returns false when the line carries no glyph at a well-formed indent
// position.
func treeEntry(text string) (string, bool) {
	i := strings.Index(text, glyphTail)
	if i < 1 {
		return "", false
	}
	switch text[i-1] {
	case '+', '\\':
	default:
		return "", false
	}
	if (i-1)%indentWidth != 0 {
		return "", false
	}
	return text[i+len(glyphTail):], true
}

// isProjectRef reports whether the entry names a sibling Gradle project
// ("project :lib") rather than an external artifact. Project entries are
// structural; their children are still regular coordinates.
func isProjectRef(entry string) bool {
	return entry == "project" || strings.HasPrefix(entry, "project ")
}

// isLegend reports whether the line is part of the annotation legend Gradle
// prints under the tree, e.g. `(*) - dependencies omitted (listed previously)`.
func isLegend(text string) bool {
	return strings.HasPrefix(text, "(") && strings.Contains(text, ") - ")
}
