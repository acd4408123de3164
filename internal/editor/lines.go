package editor

import (
	"regexp"
	"strings"
)

// Authors mark discrete display lines inside one rich-text/math field using a
// grouping macro such as \displaylines{...} with \\-separated lines, or plain
// newline-separated text. DetectLines is the single source of truth for how
// many lines a sub-heading renders, and therefore for timing array length.

var (
	// The grouping macro must sit at the end of the field; matching an
	// arbitrary macro name there would swallow trailing \text wrappers.
	groupingMacroRe = regexp.MustCompile(`(?s)\\displaylines\s*\{(.*)\}\s*$`)
	textWrapperRe   = regexp.MustCompile(`(?s)^\\text\s*\{(.*)\}$`)
)

// DetectLines maps raw sub-heading text to its ordered display lines.
// Pure and deterministic; re-applying it to its own output joined with the
// line-break marker yields the same sequence.
func DetectLines(raw string) []string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	text = unwrapMathDelimiters(text)

	if m := groupingMacroRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	segments := strings.Split(text, `\\`)
	if len(segments) == 1 {
		segments = strings.Split(text, "\n")
	}

	lines := make([]string, 0, len(segments))
	for _, segment := range segments {
		line := cleanSegment(segment)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// unwrapMathDelimiters strips one whole-string math delimiter pair.
func unwrapMathDelimiters(text string) string {
	pairs := [][2]string{
		{"$$", "$$"},
		{`\[`, `\]`},
		{`\(`, `\)`},
		{"$", "$"},
	}
	for _, pair := range pairs {
		open, closing := pair[0], pair[1]
		if len(text) >= len(open)+len(closing) && strings.HasPrefix(text, open) && strings.HasSuffix(text, closing) {
			return strings.TrimSpace(text[len(open) : len(text)-len(closing)])
		}
	}
	return text
}

func cleanSegment(segment string) string {
	line := strings.TrimSpace(segment)
	if m := textWrapperRe.FindStringSubmatch(line); m != nil {
		line = strings.TrimSpace(m[1])
	}
	line = strings.TrimPrefix(line, "{")
	line = strings.TrimSuffix(line, "}")
	return strings.TrimSpace(line)
}
