package copywriter

import (
	"strings"
	"unicode"

	"adcraft/internal/domain"
)

const maxHashtags = domain.MaxHashtags

// Category tags recognised by the composer.
const (
	CategoryBeverage = "beverage"
	CategorySkincare = "skincare"
	CategoryApparel  = "apparel"
	CategoryGadget   = "gadget"
	CategoryPet      = "pet"
	CategoryHome     = "home"
	CategoryFood     = "food"
	CategoryOther    = "other"
)

// Tones recognised by the composer.
const (
	ToneFriendly = "friendly"
	TonePlayful  = "playful"
	ToneLuxury   = "luxury"
	ToneBold     = "bold"
	ToneCalm     = "calm"
)

// Order matters: the first matching entry wins.
var categoryKeywords = []struct {
	tag      string
	keywords []string
}{
	{CategoryBeverage, []string{"beverage", "drink", "coffee", "brew", "tea", "latte", "espresso", "juice", "soda", "smoothie", "kombucha", "water", "beer", "wine"}},
	{CategorySkincare, []string{"skincare", "skin", "serum", "cream", "lotion", "moistur", "cleanser", "sunscreen", "spf", "beauty", "cosmetic"}},
	{CategoryApparel, []string{"apparel", "clothing", "fashion", "shirt", "tee", "hoodie", "dress", "jacket", "sneaker", "shoe", "sock", "hat", "wear"}},
	{CategoryGadget, []string{"gadget", "tech", "electronic", "device", "phone", "headphone", "earbud", "speaker", "charger", "watch", "smart"}},
	{CategoryPet, []string{"pet", "dog", "cat", "puppy", "kitten", "leash"}},
	{CategoryHome, []string{"home", "decor", "candle", "furniture", "kitchen", "mug", "lamp", "pillow", "blanket", "plant"}},
	{CategoryFood, []string{"food", "snack", "cookie", "chocolate", "sauce", "granola", "bakery", "bread", "cake", "candy", "meal"}},
}

var toneAdjectives = map[string][]string{
	ToneFriendly: {"warm", "easygoing", "welcoming"},
	TonePlayful:  {"fun", "cheeky", "bright"},
	ToneLuxury:   {"refined", "elegant", "indulgent"},
	ToneBold:     {"fearless", "striking", "powerful"},
	ToneCalm:     {"soothing", "gentle", "mindful"},
}

var toneSynonyms = []struct {
	tone     string
	keywords []string
}{
	{TonePlayful, []string{"playful", "fun", "quirky", "cheeky", "witty"}},
	{ToneLuxury, []string{"luxury", "luxurious", "premium", "elegant", "upscale", "sophisticated"}},
	{ToneBold, []string{"bold", "energetic", "confident", "edgy", "loud"}},
	{ToneCalm, []string{"calm", "relaxed", "serene", "minimal", "soft"}},
	{ToneFriendly, []string{"friendly", "warm", "casual", "approachable"}},
}

// Fixed salts, one per template slot.
const (
	saltToneWord1      = 3
	saltToneWord2      = 7
	saltVerb           = 11
	saltCloser         = 13
	saltUseCase        = 17
	saltCategoryPhrase = 19
	saltBenefit        = 23
)

var verbs = []string{"Discover", "Meet", "Enjoy", "Unlock", "Experience"}

var closers = []string{
	"Made for your everyday.",
	"Your new favorite starts here.",
	"Grab yours today.",
	"Feel the difference.",
	"Little upgrades, big smiles.",
}

var useCases = map[string][]string{
	CategoryBeverage: {"your morning ritual", "afternoon pick-me-ups", "slow weekend mornings"},
	CategorySkincare: {"your daily routine", "glowy mornings", "self-care evenings"},
	CategoryApparel:  {"everyday wear", "weekend plans", "nights out"},
	CategoryGadget:   {"busy workdays", "life on the go", "your desk setup"},
	CategoryPet:      {"daily walks", "playtime", "cozy nights in"},
	CategoryHome:     {"cozy evenings", "your living space", "slow Sundays"},
	CategoryFood:     {"snack breaks", "family dinners", "weekend treats"},
	CategoryOther:    {"everyday moments", "busy days", "the little things"},
}

var categoryPhrases = map[string][]string{
	CategoryBeverage: {"small-batch sip", "refreshing pour", "smooth sip"},
	CategorySkincare: {"skin ritual", "glow essential", "skincare staple"},
	CategoryApparel:  {"wardrobe staple", "everyday fit", "statement piece"},
	CategoryGadget:   {"smart companion", "everyday gadget", "tech essential"},
	CategoryPet:      {"pet favorite", "tail-wagging treat", "furry-friend essential"},
	CategoryHome:     {"home essential", "cozy upgrade", "living-space staple"},
	CategoryFood:     {"tasty bite", "pantry favorite", "snack essential"},
	CategoryOther:    {"everyday essential", "go-to pick", "new favorite"},
}

var benefitFallbacks = map[string][]string{
	CategoryBeverage: {"bold, smooth flavor", "a clean, refreshing finish", "rich flavor in every sip"},
	CategorySkincare: {"a healthy-looking glow", "lightweight daily care", "soft, comfortable skin"},
	CategoryApparel:  {"all-day comfort", "an easy, flattering fit", "effortless style"},
	CategoryGadget:   {"effortless everyday performance", "smart convenience", "reliable power"},
	CategoryPet:      {"happy, healthy routines", "tail-wagging joy", "everyday comfort"},
	CategoryHome:     {"cozy comfort", "thoughtful design", "everyday ease"},
	CategoryFood:     {"real, satisfying flavor", "craveable taste", "wholesome goodness"},
	CategoryOther:    {"everyday quality", "thoughtful design", "real value"},
}

var fillerHashtags = []string{"#newarrival", "#shopsmall"}

type template struct {
	tagline     string
	caption     string
	description string
}

var templates = []template{
	{
		tagline:     "{product}: the {tone1} {category}",
		caption:     "{verb} {product}, {a tone1} {category} with {benefit}, made {audience}.",
		description: "{product} brings {benefit} to {usecase}. It's {tone2} and {tone1}, made {audience}. {closer}",
	},
	{
		tagline:     "{verb} {product}, {tone2} every time",
		caption:     "{product} turns {usecase} into something {tone2}: {benefit}, made {audience}.",
		description: "Meet {product}, {a category} built around {benefit}. Perfect {audience}, especially for {usecase}. {closer}",
	},
	{
		tagline:     "{tone1} {category}, meet {product}",
		caption:     "Made {audience}: {product} delivers {benefit} with {a tone2} twist.",
		description: "{product} is the {tone1} {category} for {usecase}. Expect {benefit}. {closer}",
	},
	{
		tagline:     "{product} for {usecase}",
		caption:     "{verb} the {tone1} side of {usecase} with {product} and {benefit}.",
		description: "Designed {audience}, {product} pairs {benefit} with {a tone2} feel. {closer}",
	},
}

// withArticle prefixes word with "a" or "an" by its first letter.
func withArticle(word string) string {
	if word == "" {
		return word
	}
	switch unicode.ToLower([]rune(word)[0]) {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + word
	}
	return "a " + word
}

// CategoryTag maps free-text category input onto the closed tag set.
func CategoryTag(category string) string {
	lower := strings.ToLower(strings.TrimSpace(category))
	if lower == "" {
		return CategoryOther
	}
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.tag
			}
		}
	}
	return CategoryOther
}

// NormalizeTone maps free-text tone input onto the known vocabulary,
// defaulting to friendly.
func NormalizeTone(tone string) string {
	lower := strings.ToLower(strings.TrimSpace(tone))
	if lower == "" {
		return ToneFriendly
	}
	for _, entry := range toneSynonyms {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.tone
			}
		}
	}
	return ToneFriendly
}

// ToneWords returns the ordered adjectives for a normalized tone.
func ToneWords(tone string) []string {
	return append([]string(nil), toneAdjectives[NormalizeTone(tone)]...)
}
