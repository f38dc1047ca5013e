// Package pattern resolves the cell specifications used by reference
// definitions. A specification is either a literal string that must match
// the cell exactly, or one of a closed set of tokens standing in for a
// class of dynamic values (timestamps, numeric IDs, emptiness constraints).
package pattern

import "regexp"

// Token identifies the class of values a cell specification accepts.
type Token int

const (
	// TokenLiteral requires byte-for-byte equality with the spec text
	TokenLiteral Token = iota
	// TokenDatetime matches dd-Mon-yyyy HH:MM:SS (e.g. 19-Feb-2026 11:55:33)
	TokenDatetime
	// TokenDateSlash matches dd/mm/yyyy (e.g. 24/02/2000)
	TokenDateSlash
	// TokenInteger matches one or more ASCII digits, no sign or separators
	TokenInteger
	// TokenAny matches every value, including the empty string
	TokenAny
	// TokenEmpty matches only the empty string
	TokenEmpty
	// TokenNonEmpty matches any value of length >= 1
	TokenNonEmpty
)

// tokenNames maps the token vocabulary used in reference data to Token
// values. DATE_ONLY and NUMERIC_ID are aliases kept for compatibility with
// older reference definitions.
var tokenNames = map[string]Token{
	"DATETIME":   TokenDatetime,
	"DATE_ONLY":  TokenDatetime,
	"DATE_SLASH": TokenDateSlash,
	"INTEGER":    TokenInteger,
	"NUMERIC_ID": TokenInteger,
	"ANY":        TokenAny,
	"EMPTY":      TokenEmpty,
	"NONEMPTY":   TokenNonEmpty,
}

// Anchored at both ends: a cell must consist of the pattern in full,
// partial matches do not count.
var (
	datetimeRe  = regexp.MustCompile(`^\d{2}-[A-Za-z]{3}-\d{4} \d{2}:\d{2}:\d{2}$`)
	dateSlashRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	integerRe   = regexp.MustCompile(`^[0-9]+$`)
)

// Spec is one parsed cell specification from a reference definition.
type Spec struct {
	Token Token
	// Text is the raw specification as authored: the token name for token
	// specs, the expected value for literal specs.
	Text string
}

// ParseSpec interprets raw specification text. Text that is not a
// recognized token is treated as a literal, so a typoed token fails loudly
// as a mismatch instead of silently matching everything.
func ParseSpec(text string) Spec {
	if tok, ok := tokenNames[text]; ok {
		return Spec{Token: tok, Text: text}
	}
	return Spec{Token: TokenLiteral, Text: text}
}

// Matches reports whether actual satisfies the specification.
func (s Spec) Matches(actual string) bool {
	switch s.Token {
	case TokenDatetime:
		return datetimeRe.MatchString(actual)
	case TokenDateSlash:
		return dateSlashRe.MatchString(actual)
	case TokenInteger:
		return integerRe.MatchString(actual)
	case TokenAny:
		return true
	case TokenEmpty:
		return actual == ""
	case TokenNonEmpty:
		return actual != ""
	default:
		return actual == s.Text
	}
}

// String returns the specification as authored in the reference data.
func (s Spec) String() string {
	return s.Text
}

// IsLiteral reports whether the specification requires an exact value.
func (s Spec) IsLiteral() bool {
	return s.Token == TokenLiteral
}
