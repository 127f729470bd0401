package refs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeAnchor(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "My Section", "my-section"},
		{"underscores", "snake_case_title", "snake-case-title"},
		{"mixed separators", "A  B\t_ C", "a-b-c"},
		{"punctuation stripped", "What's New?", "whats-new"},
		{"leading and trailing hyphens", "--- Fancy Title ---", "fancy-title"},
		{"digits kept", "Step 2 of 3", "step-2-of-3"},
		{"no alphanumeric content", "!!! ???", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NormalizeAnchor(tc.in))
		})
	}
}

func TestNormalizeAnchor_Deterministic(t *testing.T) {
	require.Equal(t, NormalizeAnchor("Some Heading_Text"), NormalizeAnchor("Some Heading_Text"))
}

func TestLabel(t *testing.T) {
	require.Equal(t, "ref-guide-my-section", Label("guide", "My Section"))
	// Stem is used verbatim, not normalized.
	require.Equal(t, "ref-My_File-intro", Label("My_File", "Intro"))
	// Degenerate heading text still yields a (collision-prone) label.
	require.Equal(t, "ref-guide-", Label("guide", "???"))
}

func TestLabelLine(t *testing.T) {
	require.Equal(t, "(ref-guide-my-section)=", LabelLine("ref-guide-my-section"))
}

func TestParseHeading(t *testing.T) {
	h, ok := ParseHeading("## My Section ")
	require.True(t, ok)
	require.Equal(t, 2, h.Level)
	require.Equal(t, "My Section", h.Text)

	_, ok = ParseHeading("plain text")
	require.False(t, ok)

	// Marker run with no whitespace separator is not a heading.
	_, ok = ParseHeading("#hashtag")
	require.False(t, ok)
}

func TestIsLabelLine(t *testing.T) {
	require.True(t, IsLabelLine("(ref-guide-intro)="))
	require.True(t, IsLabelLine("(hand-written-target)="))
	require.True(t, IsLabelLine("  (ref-guide-intro)=  "))
	require.False(t, IsLabelLine("(unclosed="))
	require.False(t, IsLabelLine("(ref-guide-intro)= trailing"))
	require.False(t, IsLabelLine(""))
}

func TestParseRefLabel(t *testing.T) {
	label, ok := ParseRefLabel("(ref-guide-intro)=")
	require.True(t, ok)
	require.Equal(t, "ref-guide-intro", label)

	// Foreign naming conventions suppress insertion but are not resolvable.
	_, ok = ParseRefLabel("(hand-written-target)=")
	require.False(t, ok)
}

// The label generator and the fragment matcher share one normalizer; a label
// built from heading text must always match a fragment normalized from the
// same text.
func TestNormalizationAgreement(t *testing.T) {
	for _, text := range []string{"My Section", "API_Reference v2", "  Weird --- Heading!  "} {
		require.Equal(t, "ref-doc-"+NormalizeAnchor(text), Label("doc", text))
	}
}
