// Package placeholder classifies cell values that are technically non-blank
// but semantically meaningless: serialization artifacts, whitespace
// pretending to be blank, programmatic nulls, and spreadsheet error values.
package placeholder

import (
	"regexp"
	"strings"
)

// Category is the kind of pseudo-blank value detected in a cell.
type Category int

const (
	// None means the value is genuine data (or genuinely empty).
	None Category = iota
	// SerializationArtifact is a JavaScript "[object Object]" style value.
	SerializationArtifact
	// WhitespaceOnly is a non-empty value made entirely of whitespace.
	WhitespaceOnly
	// ProgrammaticNull is a literal null/undefined/NaN/None string.
	ProgrammaticNull
	// SpreadsheetError is a spreadsheet error value such as #REF!.
	SpreadsheetError
)

// String returns the category name used in reports.
func (c Category) String() string {
	switch c {
	case SerializationArtifact:
		return "SERIALIZATION_ARTIFACT"
	case WhitespaceOnly:
		return "WHITESPACE_ONLY"
	case ProgrammaticNull:
		return "PROGRAMMATIC_NULL"
	case SpreadsheetError:
		return "SPREADSHEET_ERROR"
	default:
		return "NONE"
	}
}

// Description returns a human-readable explanation for display.
func (c Category) Description() string {
	switch c {
	case SerializationArtifact:
		return "serialization artifact (should be real data)"
	case WhitespaceOnly:
		return "whitespace-only value (should be truly empty)"
	case ProgrammaticNull:
		return "literal null/undefined placeholder"
	case SpreadsheetError:
		return "spreadsheet error value"
	default:
		return "not a placeholder"
	}
}

// objectArtifactRe catches the generic "[object Something]" form produced
// when a JavaScript object is coerced to a string.
var objectArtifactRe = regexp.MustCompile(`(?i)^\[object .+\]$`)

var nullWords = map[string]bool{
	"null":      true,
	"undefined": true,
	"nan":       true,
	"none":      true,
}

var spreadsheetErrors = map[string]bool{
	"#N/A":    true,
	"#REF!":   true,
	"#VALUE!": true,
	"#DIV/0!": true,
}

// Classify reports which placeholder category a cell value falls into, or
// None when the value is genuine. An empty string is never a placeholder:
// emptiness is judged by the pattern layer, not here. Categories are tested
// in a fixed order and the first match wins.
func Classify(value string) Category {
	if value == "" {
		return None
	}
	trimmed := strings.TrimSpace(value)
	if objectArtifactRe.MatchString(trimmed) {
		return SerializationArtifact
	}
	if trimmed == "" {
		return WhitespaceOnly
	}
	if nullWords[strings.ToLower(trimmed)] {
		return ProgrammaticNull
	}
	if spreadsheetErrors[trimmed] {
		return SpreadsheetError
	}
	return None
}
