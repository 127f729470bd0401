package markdown

import (
	"fmt"
	"sort"
)

// Edit is a targeted byte-range replacement against an original source buffer.
//
// Start and End are offsets into the original source, End exclusive.
// Applying an edit replaces source[Start:End] with Replacement.
type Edit struct {
	Start       int
	End         int
	Replacement []byte
}

// ApplyEdits applies non-overlapping edits to source and returns the result.
//
// Edits are applied from the end of the buffer toward the beginning so that
// earlier edits never invalidate the offsets of later ones. Overlapping or
// out-of-bounds ranges are rejected.
func ApplyEdits(source []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return source, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	for i, e := range sorted {
		if e.Start < 0 || e.End < e.Start || e.End > len(source) {
			return nil, fmt.Errorf("invalid edit range [%d,%d) for source of %d bytes", e.Start, e.End, len(source))
		}
		if i > 0 && e.End > sorted[i-1].Start {
			return nil, fmt.Errorf("overlapping edits at offset %d", e.Start)
		}
	}

	out := append([]byte(nil), source...)
	for _, e := range sorted {
		next := make([]byte, 0, len(out)-(e.End-e.Start)+len(e.Replacement))
		next = append(next, out[:e.Start]...)
		next = append(next, e.Replacement...)
		next = append(next, out[e.End:]...)
		out = next
	}

	return out, nil
}
