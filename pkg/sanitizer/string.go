package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var reKeepAlnum = regexp.MustCompile(`[^0-9A-Za-z]+`)

// TrimAndNormalize collapses runs of whitespace into single spaces and trims
// the result.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeLabel cleans a lot name or similar display label.
func NormalizeLabel(label string) string {
	p := Pipeline{
		TrimAndNormalize,
		strings.ToLower,
	}
	return p.Apply(label)
}

// NormalizePlate canonicalizes a vehicle plate: uppercase, letters and digits
// only. "abc 123" and "ABC-123" normalize to the same value.
func NormalizePlate(plate string) string {
	p := Pipeline{
		strings.TrimSpace,
		func(s string) string { return reKeepAlnum.ReplaceAllString(s, "") },
		strings.ToUpper,
	}
	return p.Apply(plate)
}
