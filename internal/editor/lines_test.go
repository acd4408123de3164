package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty text",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "   \n ",
			want: nil,
		},
		{
			name: "single plain line",
			raw:  "Hello world",
			want: []string{"Hello world"},
		},
		{
			name: "grouping macro with text wrappers",
			raw:  `\displaylines{\text{Line A}\\\text{Line B}}`,
			want: []string{"Line A", "Line B"},
		},
		{
			name: "math delimiter wrapper around macro",
			raw:  `$$\displaylines{\text{Line A}\\\text{Line B}}$$`,
			want: []string{"Line A", "Line B"},
		},
		{
			name: "newline fallback without macro",
			raw:  "first line\nsecond line\nthird line",
			want: []string{"first line", "second line", "third line"},
		},
		{
			name: "brace wrapped segments",
			raw:  `\displaylines{{alpha}\\{beta}}`,
			want: []string{"alpha", "beta"},
		},
		{
			name: "empty segments discarded",
			raw:  `\displaylines{one\\\\two\\}`,
			want: []string{"one", "two"},
		},
		{
			name: "macro with surrounding whitespace",
			raw:  `  \displaylines{ a \\ b }  `,
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLines(tt.raw))
		})
	}
}

func TestDetectLinesIdempotent(t *testing.T) {
	inputs := []string{
		`\displaylines{\text{Line A}\\\text{Line B}}`,
		"first\nsecond",
		`$$\displaylines{x\\y\\z}$$`,
	}
	for _, raw := range inputs {
		first := DetectLines(raw)
		rejoined := `\displaylines{` + strings.Join(first, `\\`) + `}`
		assert.Equal(t, first, DetectLines(rejoined), "input %q", raw)
	}
}
