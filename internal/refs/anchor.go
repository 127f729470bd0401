// Package refs implements MyST cross-reference normalization: generating
// explicit heading targets, inserting them into documents, and resolving
// relative links against them.
package refs

import (
	"regexp"
	"strings"
)

// Label prefix for targets generated by this tool. The resolver only returns
// labels carrying this prefix; hand-written targets suppress insertion but are
// never emitted as {ref} destinations.
const labelPrefix = "ref-"

var (
	// headingPattern matches any ATX heading: marker run, whitespace, text.
	headingPattern = regexp.MustCompile(`^(#+)\s+(.*)`)

	// anyLabelPattern matches any explicit target line, (identifier)=,
	// regardless of naming convention.
	anyLabelPattern = regexp.MustCompile(`^\([^)]+\)=$`)

	// refLabelPattern matches target lines following this tool's convention
	// and captures the identifier.
	refLabelPattern = regexp.MustCompile(`^\((ref-[^)]+)\)=$`)

	anchorSeparators = regexp.MustCompile(`[\s_]+`)
	anchorInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
)

// NormalizeAnchor converts raw heading text to its anchor form: lower-case,
// whitespace and underscore runs collapsed to single hyphens, everything
// outside [a-z0-9-] removed, leading and trailing hyphens trimmed.
//
// This is the single normalization rule shared by label generation and
// fragment matching; the two must agree or resolution can never succeed.
// Heading text with no alphanumeric content normalizes to the empty string,
// which makes labels for such headings collide within a document.
func NormalizeAnchor(text string) string {
	anchor := strings.ToLower(text)
	anchor = anchorSeparators.ReplaceAllString(anchor, "-")
	anchor = anchorInvalid.ReplaceAllString(anchor, "")
	return strings.Trim(anchor, "-")
}

// Label derives the target identifier for a heading in a document.
//
// The stem (filename without extension) is used verbatim so that labels stay
// stable against files annotated by earlier runs.
func Label(stem, headingText string) string {
	return labelPrefix + stem + "-" + NormalizeAnchor(headingText)
}

// LabelLine renders a label identifier as a MyST explicit target line.
func LabelLine(label string) string {
	return "(" + label + ")="
}

// Heading is a parsed ATX heading line.
type Heading struct {
	Level int
	Text  string
}

// ParseHeading parses a line as an ATX heading, returning ok=false for
// non-heading lines. Text is trimmed.
func ParseHeading(line string) (Heading, bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return Heading{}, false
	}
	return Heading{Level: len(m[1]), Text: strings.TrimSpace(m[2])}, true
}

// IsLabelLine reports whether the line (trimmed) is an explicit target of any
// naming convention.
func IsLabelLine(line string) bool {
	return anyLabelPattern.MatchString(strings.TrimSpace(line))
}

// ParseRefLabel extracts the identifier from a target line following this
// tool's ref- convention. Returns ok=false for other lines, including targets
// with foreign naming.
func ParseRefLabel(line string) (string, bool) {
	m := refLabelPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return m[1], true
}
