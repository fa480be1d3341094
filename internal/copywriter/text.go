package copywriter

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxTaglineWords        = 8
	maxCaptionWords        = 24
	maxEnforcedCaptionWord = 26
	maxDescriptionSentence = 3
	maxProductWords        = 4
	maxTagRunes            = 24
)

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// clampWords keeps at most max whole words of s and drops dangling separators
// left at the cut.
func clampWords(s string, max int) string {
	fields := strings.Fields(s)
	if len(fields) <= max {
		return strings.Join(fields, " ")
	}
	return strings.TrimRight(strings.Join(fields[:max], " "), ",;:-")
}

func clampSentences(s string, max int) string {
	s = strings.TrimSpace(s)
	count := 0
	for i, r := range s {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(s) && s[i+1] != ' ' {
			continue
		}
		count++
		if count == max {
			return s[:i+1]
		}
	}
	return s
}

// containsFold reports whether needle occurs in haystack under Unicode case
// folding. An empty needle never matches.
func containsFold(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return false
	}
	return strings.Contains(cases.Fold().String(haystack), cases.Fold().String(needle))
}

func equalFoldTrim(a, b string) bool {
	return cases.Fold().String(strings.TrimSpace(a)) == cases.Fold().String(strings.TrimSpace(b))
}

func capitalizeFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	first, rest, _ := strings.Cut(s, " ")
	first = cases.Title(language.English, cases.NoLower).String(first)
	if rest == "" {
		return first
	}
	return first + " " + rest
}

// ShortProduct returns the product name clamped to the prefix used inside
// templates and mention checks.
func ShortProduct(product string) string {
	return clampWords(product, maxProductWords)
}

// mentions reports whether text names the product, either in full or by its
// clamped prefix.
func mentions(text, product string) bool {
	return containsFold(text, ShortProduct(product))
}

// ensureMention prefixes text with the product when it is missing, keeping the
// result within max words.
func ensureMention(text, product string, max int) string {
	short := ShortProduct(product)
	if short == "" || containsFold(text, short) {
		return clampWords(text, max)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return clampWords(short, max)
	}
	return clampWords(short+": "+text, max)
}

// tagify lowercases text and keeps letters and digits of its first maxWords
// words, producing the body of a hashtag.
func tagify(text string, maxWords int) string {
	fields := strings.Fields(strings.TrimLeft(strings.TrimSpace(text), "#"))
	if maxWords > 0 && len(fields) > maxWords {
		fields = fields[:maxWords]
	}
	var b strings.Builder
	n := 0
	for _, field := range fields {
		for _, r := range strings.ToLower(field) {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				continue
			}
			if n == maxTagRunes {
				return b.String()
			}
			b.WriteRune(r)
			n++
		}
	}
	return b.String()
}

func hashtag(text string, maxWords int) string {
	body := tagify(text, maxWords)
	if body == "" {
		return ""
	}
	return "#" + body
}

func productHashtag(product string) string {
	fields := strings.Fields(product)
	if len(fields) == 0 {
		return ""
	}
	return hashtag(fields[0], 1)
}

func categoryHashtag(category string) string {
	if tag := CategoryTag(category); tag != CategoryOther {
		return "#" + tag
	}
	return hashtag(category, 2)
}

// NormalizeHashtags turns arbitrary tag entries into the canonical form:
// exactly one leading '#', lowercase letters and digits, unique, at most five.
func NormalizeHashtags(entries []string) []string {
	return mergeHashtags(entries)
}

func mergeHashtags(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, entry := range list {
			tag := hashtag(entry, 0)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
			if len(out) == maxHashtags {
				return out
			}
		}
	}
	return out
}

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}
