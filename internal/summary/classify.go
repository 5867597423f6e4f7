package summary

import (
	"regexp"
	"strings"
)

// Category is a bit set of the buckets a line belongs to.
type Category uint8

const (
	Passed Category = 1 << iota
	Failed
	Warning
	Error
)

// errorPrefixWindow is the number of leading characters in which "error" is
// ignored by the generic error check.
const errorPrefixWindow = 10

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var (
	passMarkers = []string{"[PASS]", "[SUCCESS]", "✓"}
	failMarkers = []string{"[FAIL]", "[ERROR]", "✗"}
	warnMarkers = []string{"[WARN]"}
)

// Has reports whether c includes every bit of other.
func (c Category) Has(other Category) bool {
	return other != 0 && c&other == other
}

// String renders the set as a plus-joined list, e.g. "failed+error".
func (c Category) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(Passed) {
		parts = append(parts, "passed")
	}
	if c.Has(Failed) {
		parts = append(parts, "failed")
	}
	if c.Has(Warning) {
		parts = append(parts, "warning")
	}
	if c.Has(Error) {
		parts = append(parts, "error")
	}
	return strings.Join(parts, "+")
}

// StripANSI removes terminal color sequences from line.
func StripANSI(line string) string {
	return ansiPattern.ReplaceAllString(line, "")
}

// ClassifyLine returns the buckets a cleaned line belongs to.
func ClassifyLine(line string) Category {
	var c Category
	if containsAny(line, passMarkers) {
		c |= Passed
	}
	if containsAny(line, failMarkers) {
		c |= Failed
	}
	if containsAny(line, warnMarkers) {
		c |= Warning
	}
	if isGenericError(line) {
		c |= Error
	}
	return c
}

// Classification holds the classified lines of one log, in input order.
type Classification struct {
	Passed   []string
	Failed   []string
	Warnings []string
	Errors   []string
}

// Classify buckets every line of text.
func Classify(text string) Classification {
	var out Classification
	if text == "" {
		return out
	}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(StripANSI(raw))
		c := ClassifyLine(line)
		if c.Has(Passed) {
			out.Passed = append(out.Passed, line)
		}
		if c.Has(Failed) {
			out.Failed = append(out.Failed, line)
		}
		if c.Has(Warning) {
			out.Warnings = append(out.Warnings, line)
		}
		if c.Has(Error) {
			out.Errors = append(out.Errors, line)
		}
	}
	return out
}

func isGenericError(line string) bool {
	lower := strings.ToLower(line)
	if !strings.Contains(lower, "error") {
		return false
	}
	prefix := []rune(lower)
	if len(prefix) > errorPrefixWindow {
		prefix = prefix[:errorPrefixWindow]
	}
	return !strings.Contains(string(prefix), "error")
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
