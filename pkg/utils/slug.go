package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength bounds generated slugs so they stay usable in URLs and cache keys.
const MaxSlugLength = 96

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Letters that do not decompose under NFD.
var transliterations = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "sch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
	'ß': "ss", 'æ': "ae", 'ø': "o", 'ł': "l", 'đ': "d", 'œ': "oe",
}

// GenerateSlug turns a title into a lowercase ASCII slug of hyphen-separated words.
func GenerateSlug(text string) string {
	text = transliterate(strings.ToLower(text))

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	text, _, _ = transform.String(t, text)

	slug := strings.Trim(nonSlugChars.ReplaceAllString(text, "-"), "-")
	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
		if cut := strings.LastIndex(slug, "-"); cut > 0 {
			slug = slug[:cut]
		}
		slug = strings.Trim(slug, "-")
	}
	return slug
}

func transliterate(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	for _, char := range text {
		if replacement, ok := transliterations[char]; ok {
			result.WriteString(replacement)
			continue
		}
		result.WriteRune(char)
	}
	return result.String()
}
