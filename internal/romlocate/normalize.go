package romlocate

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	tagPattern = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]|\{[^}]*\}`)

	punctReplacer = strings.NewReplacer(
		":", "", "-", " ", "_", " ",
		"'", "", "&", " and ", "!", "",
		".", "", ",", "", "/", " ",
	)

	stopWords = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "of": {},
		"in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	}

	foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize reduces a title or ROM file stem to a canonical matching form:
// region/language tags in brackets are stripped, diacritics folded away,
// punctuation removed, and stop words dropped.
func Normalize(name string) string {
	name = tagPattern.ReplaceAllString(name, " ")
	if folded, _, err := transform.String(foldTransformer, name); err == nil {
		name = folded
	}
	name = punctReplacer.Replace(name)
	name = strings.ToLower(name)

	words := strings.Fields(name)
	kept := words[:0]
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// ExpandVariants splits titles like "Pokemon Red/Blue" into per-variant
// candidates plus the raw title. Titles without a slash return themselves.
func ExpandVariants(title string) []string {
	if !strings.Contains(title, "/") {
		return []string{title}
	}
	variants := make([]string, 0, 3)
	base, tail := "", title
	if idx := strings.LastIndex(title, " "); idx >= 0 && strings.Contains(title[idx+1:], "/") {
		base, tail = title[:idx], title[idx+1:]
	}
	for _, part := range strings.Split(tail, "/") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if base != "" {
			variants = append(variants, base+" "+part)
		} else {
			variants = append(variants, part)
		}
	}
	return append(variants, title)
}
