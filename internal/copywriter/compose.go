package copywriter

import (
	"hash/fnv"
	"strings"

	"adcraft/internal/domain"
)

const seedDelimiter = "|"

// Seed hashes the textual fields of a brief with 32-bit FNV-1a. Identical
// briefs always yield the same seed.
func Seed(b domain.Brief) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.Join([]string{
		b.Product, b.Category, b.KeyBenefit, b.Audience, b.Tone, b.Platform,
	}, seedDelimiter)))
	return h.Sum32()
}

func pickIndex(n int, seed uint32, salt uint64) int {
	return int((uint64(seed) + salt) % uint64(n))
}

func pick(list []string, seed uint32, salt uint64) string {
	if len(list) == 0 {
		return ""
	}
	return list[pickIndex(len(list), seed, salt)]
}

// Compose builds the baseline copy for a brief. It performs no I/O and never
// fails; the same brief always produces the same copy.
func Compose(b domain.Brief) domain.Copy {
	seed := Seed(b)
	tag := CategoryTag(b.Category)
	product := coalesce(ShortProduct(b.Product), "This product")

	adjectives := toneAdjectives[NormalizeTone(b.Tone)]
	i1 := pickIndex(len(adjectives), seed, saltToneWord1)
	i2 := pickIndex(len(adjectives), seed, saltToneWord2)
	if i2 == i1 {
		i2 = (i1 + 1) % len(adjectives)
	}

	benefit := coalesce(b.KeyBenefit, pick(benefitFallbacks[tag], seed, saltBenefit))
	audience := "for you"
	if a := strings.TrimSpace(b.Audience); a != "" {
		audience = "for " + a
	}

	category := pick(categoryPhrases[tag], seed, saltCategoryPhrase)
	slots := strings.NewReplacer(
		"{product}", product,
		"{tone1}", adjectives[i1],
		"{tone2}", adjectives[i2],
		"{a tone1}", withArticle(adjectives[i1]),
		"{a tone2}", withArticle(adjectives[i2]),
		"{a category}", withArticle(category),
		"{verb}", pick(verbs, seed, saltVerb),
		"{closer}", pick(closers, seed, saltCloser),
		"{usecase}", pick(useCases[tag], seed, saltUseCase),
		"{category}", category,
		"{benefit}", benefit,
		"{audience}", audience,
	)
	tpl := templates[int(seed%uint32(len(templates)))]

	tagline := clampWords(sentenceCase(slots.Replace(tpl.tagline), product), maxTaglineWords)
	caption := clampWords(sentenceCase(slots.Replace(tpl.caption), product), maxCaptionWords)
	description := clampSentences(sentenceCase(slots.Replace(tpl.description), product), maxDescriptionSentence)

	return domain.Copy{
		Tagline:          ensureMention(tagline, product, maxTaglineWords),
		Caption:          ensureMention(caption, product, maxCaptionWords),
		ShortDescription: description,
		Hashtags: mergeHashtags(
			[]string{productHashtag(product), categoryHashtag(b.Category), hashtag(benefit, 3)},
			fillerHashtags,
		),
	}
}

// sentenceCase capitalizes the first word unless the text opens with the
// product name, whose casing is the caller's.
func sentenceCase(text, product string) string {
	if strings.HasPrefix(text, product) {
		return text
	}
	return capitalizeFirst(text)
}
