package content

import (
	"regexp"
	"strings"
)

// MaxLineLength caps a logical line; longer text is cut
const MaxLineLength = 400

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// sanitizeLine strips terminal control from line, trims it and caps its length
func sanitizeLine(line string) string {
	out := strings.TrimSpace(stripControl(line))
	if len([]rune(out)) > MaxLineLength {
		out = string([]rune(out)[:MaxLineLength])
	}
	return out
}

// stripControl removes ANSI sequences and control characters so content cannot drive the terminal
// Tabs become single spaces
func stripControl(line string) string {
	line = ansiPattern.ReplaceAllString(line, "")

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		switch {
		case r == '\t':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
