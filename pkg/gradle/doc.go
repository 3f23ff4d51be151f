// Package gradle parses the textual dependency tree printed by Gradle's
// dependency-report task into a flat, deduplicated list of Maven artifact
// coordinates.
//
// # Input
//
// The parser consumes the report line by line. In [ModeReport] it locates the
// tree inside the surrounding build output (task headers, legends, timing
// noise) and tolerates anything that is not a tree line. In [ModePretty] the
// caller asserts the input already contains only tree lines, and any line
// that cannot be read as a coordinate is a hard [ParseError].
//
// # Output
//
// Coordinates are flattened: the tree hierarchy is discarded and each
// (group, name) pair appears exactly once, in first-seen order. Gradle
// repeats shared transitive dependencies throughout the tree and annotates
// version conflicts with an arrow:
//
//	+--- org.jetbrains.kotlin:kotlin-stdlib:1.6.21 -> 1.7.10
//	|    \--- org.jetbrains:annotations:13.0
//	\--- androidx.annotation:annotation:1.2.0 -> 1.5.0 (*)
//
// The version right of the arrow is the resolved one; the requested version
// is discarded. When the same coordinate resurfaces later with a different
// resolved version, the later resolution replaces the stored one without
// changing the output position.
package gradle
