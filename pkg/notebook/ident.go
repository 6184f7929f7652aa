package notebook

import (
	"regexp"
	"strings"
)

// MaxIDLength is the maximum length of a normalized cell id.
const MaxIDLength = 64

// invalidIDRuns matches every maximal run of characters outside the id
// charset. Compiled once; a compiled Regexp is immutable and safe for
// concurrent use.
var invalidIDRuns = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// NormalizeID converts an arbitrary string into a valid cell id matching
// ^[a-z0-9_-]{1,64}$. The steps apply in this exact order:
//
//  1. Replace each maximal run of characters outside [A-Za-z0-9_-] with a
//     single hyphen.
//  2. Strip runs of hyphens/underscores from the start and end.
//  3. Truncate to the first 64 characters.
//  4. Lowercase.
//  5. If nothing is left, return "_".
//
// The ordering is load-bearing: replacement must precede trimming so that
// separator noise introduced in step 1 is stripped, and trimming must
// precede truncation so the 64-character window is taken from the trimmed
// string.
func NormalizeID(s string) string {
	s = invalidIDRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-_")
	if len(s) > MaxIDLength {
		// Everything outside [A-Za-z0-9_-] was replaced in step 1, so the
		// string is pure ASCII here and byte indexing is safe.
		s = s[:MaxIDLength]
	}
	s = strings.ToLower(s)
	if s == "" {
		return "_"
	}
	return s
}
