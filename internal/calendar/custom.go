package calendar

import (
	"regexp"
	"strings"
	"unicode"
)

// customDatePattern only checks the shape of a token. 2025-13-99 passes:
// calendar validity is not enforced on custom holidays.
var customDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseCustomHolidays extracts YYYY-MM-DD tokens from free text.
//
// Tokens are separated by whitespace or commas. Empty and malformed tokens are
// dropped silently. The result keeps input order and is not deduplicated.
func ParseCustomHolidays(text string) []string {
	if text == "" {
		return []string{}
	}
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || !customDatePattern.MatchString(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
