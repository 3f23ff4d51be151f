// Package sheet serializes artifact lists into tabular output formats.
//
// Emitters are pure: they never reorder, filter or deduplicate; the parser
// owns those guarantees. Each format lives in its own file and is selected
// through [New], so adding a format does not touch the parser or the
// existing serializers.
package sheet
