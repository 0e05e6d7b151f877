package library

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxAuthorCodeLen = 8

// AuthorCode derives the shelving code of an author: the letters of the last
// name, upper-cased and cut to eight.
func AuthorCode(author string) string {
	author = strings.TrimSpace(author)
	last := author
	if i := strings.Index(author, ","); i >= 0 {
		last = author[:i]
	} else if f := strings.Fields(author); len(f) > 0 {
		last = f[len(f)-1]
	}

	letters := make([]rune, 0, maxAuthorCodeLen)
	for _, r := range last {
		if !unicode.IsLetter(r) {
			continue
		}
		letters = append(letters, r)
		if len(letters) == maxAuthorCodeLen {
			break
		}
	}
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Upper(language.Und).String(string(letters))
}

// languageCode turns "fr", "FR" or "fr-CA" into "FR". Input that is not a
// language tag is returned upper-cased for the validator to reject.
func languageCode(raw string) string {
	tag, err := language.Parse(raw)
	if err != nil {
		return strings.ToUpper(raw)
	}
	base, _ := tag.Base()
	return strings.ToUpper(base.String())
}
