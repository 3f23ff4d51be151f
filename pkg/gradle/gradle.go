package gradle

import (
	"fmt"
	"regexp"
	"strings"
)

// Artifact identifies a Maven artifact by its resolved coordinate.
type Artifact struct {
	Group   string // dot-separated namespace, e.g. "com.squareup.okhttp3"
	Name    string // artifact identifier, e.g. "okhttp"
	Version string // resolved version, after conflict resolution
}

// Coordinate returns the canonical group:name:version form.
func (a Artifact) Coordinate() string {
	return a.Group + ":" + a.Name + ":" + a.Version
}

// key identifies the artifact independent of version, for deduplication.
func (a Artifact) key() string {
	return a.Group + ":" + a.Name
}

// arrow separates a requested version from the version Gradle resolved it to.
const arrow = " -> "

// markerPattern matches the trailing annotations Gradle appends to entries:
// "(*)" for omitted subtrees, "(c)" for dependency constraints, "(n)" for
// entries that were not resolved. The annotation is informational and never
// carried into the output.
var markerPattern = regexp.MustCompile(`\s+\([^()]*\)$`)

// parseCoordinate decodes the text of a single dependency entry, after any
// tree-drawing prefix has been stripped.
//
// Supported shapes:
//
//	group:name:version
//	group:name:requested -> resolved
//	group:name -> resolved        (version managed by a BOM)
//
// each optionally followed by a parenthesized marker.
func parseCoordinate(text string) (Artifact, error) {
	text = markerPattern.ReplaceAllString(strings.TrimSpace(text), "")

	segments := strings.Split(text, ":")
	switch len(segments) {
	case 3:
		version := segments[2]
		if i := strings.LastIndex(version, arrow); i >= 0 {
			// The requested version left of the arrow is discarded.
			version = version[i+len(arrow):]
		}
		return newArtifact(segments[0], segments[1], version)
	case 2:
		// BOM-managed entries carry no requested version at all:
		//   androidx.compose.ui:ui-tooling -> 1.3.3
		name, version, ok := strings.Cut(segments[1], arrow)
		if !ok {
			return Artifact{}, fmt.Errorf("missing version in %q", text)
		}
		return newArtifact(segments[0], name, version)
	default:
		return Artifact{}, fmt.Errorf("expected group:name:version, got %q", text)
	}
}

func newArtifact(group, name, version string) (Artifact, error) {
	a := Artifact{
		Group:   strings.TrimSpace(group),
		Name:    strings.TrimSpace(name),
		Version: strings.TrimSpace(version),
	}
	if a.Group == "" || a.Name == "" || a.Version == "" {
		return Artifact{}, fmt.Errorf("incomplete coordinate %q", a.Coordinate())
	}
	return a, nil
}

// artifactSet accumulates artifacts keyed by (group, name) while preserving
// first-seen order. Memory is bounded by the number of distinct coordinates,
// not the number of input lines.
type artifactSet struct {
	order []Artifact
	index map[string]int
}

func newArtifactSet() *artifactSet {
	return &artifactSet{index: make(map[string]int)}
}

// add records a sighting of a. The first sighting fixes the output position;
// later sightings only update the stored version in place, so the final list
// holds the last resolution Gradle reported for each coordinate.
func (s *artifactSet) add(a Artifact) {
	if i, ok := s.index[a.key()]; ok {
		s.order[i].Version = a.Version
		return
	}
	s.index[a.key()] = len(s.order)
	s.order = append(s.order, a)
}

func (s *artifactSet) artifacts() []Artifact {
	return s.order
}
