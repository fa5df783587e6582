package content

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lixenwraith/techfolio/parameter"
)

// Initials returns up to two uppercase initials from the profile name, "?" when there is no name
// Drawn in place of the avatar when the profile image cannot be loaded
func (p Profile) Initials() string {
	var out []rune
	for _, word := range strings.Fields(p.Name) {
		for _, r := range word {
			if unicode.IsLetter(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
	}
	switch len(out) {
	case 0:
		return "?"
	case 1:
		return string(out)
	default:
		return string([]rune{out[0], out[len(out)-1]})
	}
}

// FooterText returns the footer with the year token replaced by year
func (p Profile) FooterText(year int) string {
	if !strings.Contains(p.Footer, parameter.FooterYearToken) {
		return p.Footer
	}
	return strings.ReplaceAll(p.Footer, parameter.FooterYearToken, strconv.Itoa(year))
}
