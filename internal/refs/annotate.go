package refs

// HeadingScope selects which headings the annotator targets.
type HeadingScope int

const (
	// ScopeAllHeadings annotates every heading level.
	ScopeAllHeadings HeadingScope = iota
	// ScopeLevelOne annotates only top-level headings.
	ScopeLevelOne
)

// Annotate inserts an explicit target line above every in-scope heading that
// does not already have one, and reports whether anything changed.
//
// The lookback inspects the previously emitted line rather than the original
// previous line, so a label inserted earlier in the same pass is seen by the
// next iteration. Any existing target line suppresses insertion, not only
// ref- prefixed ones: a hand-written label already owns its heading.
//
// Annotate is idempotent: running it over its own output changes nothing.
func Annotate(stem string, lines []string, scope HeadingScope) ([]string, bool) {
	out := make([]string, 0, len(lines))
	changed := false
	prev := ""

	for _, line := range lines {
		heading, ok := ParseHeading(line)
		if ok && scope == ScopeLevelOne && heading.Level != 1 {
			ok = false
		}

		if ok && !IsLabelLine(prev) {
			out = append(out, LabelLine(Label(stem, heading.Text)))
			changed = true
		}

		out = append(out, line)
		prev = line
	}

	return out, changed
}
