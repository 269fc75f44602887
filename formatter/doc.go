// Package formatter serializes the visualization document.
//
// This package is organized into:
// - json.go: JSON serialization
// - file.go: timestamped output files
//
// Output is indented with two spaces and keeps non-ASCII station names as-is.
package formatter
