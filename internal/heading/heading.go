// Package heading decides whether a paragraph is a heading and at which
// level, using paragraph styles first and numbering conventions second.
package heading

import (
	"regexp"
	"strconv"
	"strings"
)

// cjkNumerals are the Chinese numerals accepted in chapter and appendix
// designators.
const cjkNumerals = "零一二三四五六七八九十百千万"

var (
	tabPageRe   = regexp.MustCompile(`\t\p{Nd}+`)
	operatorRe  = regexp.MustCompile(`[+\-*/=]`)
	latinRunRe  = regexp.MustCompile(`[A-Za-z]{2,}`)
	chapterRe   = regexp.MustCompile(`^第[` + cjkNumerals + `\p{Nd}]+章`)
	sectionRe   = regexp.MustCompile(`^\p{Nd}+(?:\.\p{Nd}+)+`)
	annexRe     = regexp.MustCompile(`^(?:附录|附件|附表)[\s\p{Z}]*([A-Za-z\p{Nd}` + cjkNumerals + `]*)$`)
	enumerateRe = regexp.MustCompile(`^\p{Nd}+(?:\.\p{Nd}+)*[\s\p{Z}]*`)
)

// annexMarkers open appendix, attachment and schedule headings.
var annexMarkers = []string{"附录", "附件", "附表"}

// Clean removes tab-and-digits runs (page numbers in contents entries) and
// surrounding whitespace.
func Clean(text string) string {
	return strings.TrimSpace(tabPageRe.ReplaceAllString(text, ""))
}

// Classify returns the heading level of a cleaned paragraph, or 0 if it is
// body text. style is the paragraph style name and may be empty.
func Classify(text, style string) int {
	if strings.HasPrefix(style, "toc") {
		return 0
	}
	if strings.HasPrefix(style, "Heading") {
		raw := strings.TrimSpace(strings.ReplaceAll(style, "Heading ", ""))
		if n, err := strconv.Atoi(raw); err == nil {
			return max(n, 0)
		}
	}

	// Formulas and unit strings ("2.5 kg/m", "1.2 Overview") look numbered
	// but are not headings. Nothing below may override this.
	if operatorRe.MatchString(text) || latinRunRe.MatchString(text) {
		return 0
	}

	if chapterRe.MatchString(text) {
		return 1
	}
	if m := sectionRe.FindString(text); m != "" {
		return strings.Count(m, ".") + 1
	}
	for _, marker := range annexMarkers {
		if !strings.HasPrefix(text, marker) {
			continue
		}
		m := annexRe.FindStringSubmatch(strings.TrimSpace(text))
		switch {
		case m == nil:
			return 0
		case m[1] != "":
			return 2
		default:
			return 1
		}
	}
	return 0
}

// StripEnumeration drops one leading numeric enumeration such as "3 " or
// "2.1.4 " for comparison purposes.
func StripEnumeration(text string) string {
	loc := enumerateRe.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[loc[1]:]
}
