package asciidoc

import "testing"

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rendered     string
		preformatted bool
		want         string
	}{
		{
			name:     "plain text",
			rendered: "hello",
			want:     "hello",
		},
		{
			name:     "newline collapses to space",
			rendered: "first\nsecond",
			want:     "first second",
		},
		{
			name:     "inline markup stripped",
			rendered: "a <em>b</em> c",
			want:     "a b c",
		},
		{
			name:     "nested markup stripped",
			rendered: `see <a href="x"><code>thing</code></a> here`,
			want:     "see thing here",
		},
		{
			name:     "entities decoded",
			rendered: "Tom &amp; Jerry",
			want:     "Tom & Jerry",
		},
		{
			name:     "angle bracket entities decoded",
			rendered: "&lt;config&gt;",
			want:     "<config>",
		},
		{
			name:     "surrounding whitespace trimmed",
			rendered: "  spaced  ",
			want:     "spaced",
		},
		{
			name:     "whitespace runs collapse",
			rendered: "a  \t b",
			want:     "a b",
		},
		{
			name:         "preformatted keeps newlines",
			rendered:     "// c\nx = 1",
			preformatted: true,
			want:         "// c\nx = 1",
		},
		{
			name:         "preformatted keeps internal spacing",
			rendered:     "col1    col2",
			preformatted: true,
			want:         "col1    col2",
		},
		{
			name:         "preformatted keeps trailing space",
			rendered:     "x ",
			preformatted: true,
			want:         "x ",
		},
		{
			name:         "preformatted decodes entities",
			rendered:     "if a &lt; b {",
			preformatted: true,
			want:         "if a < b {",
		},
		{
			name:     "empty",
			rendered: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeValue(tt.rendered, tt.preformatted); got != tt.want {
				t.Errorf("normalizeValue(%q, %v) = %q, want %q", tt.rendered, tt.preformatted, got, tt.want)
			}
		})
	}
}

func TestCollapseSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"a b", "a b"},
		{"a  b", "a b"},
		{"a\nb", "a b"},
		{"a\t\r\nb", "a b"},
		{" a ", " a "},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		if got := collapseSpace(tt.in); got != tt.want {
			t.Errorf("collapseSpace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
