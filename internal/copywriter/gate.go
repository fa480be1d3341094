package copywriter

import "adcraft/internal/domain"

// Enforce rescues a provider candidate before it is judged. The tagline gets a
// product prefix when it lacks one and every text field is clamped, the
// description to three sentences. Product and category hashtags are merged in.
// Applying it twice changes nothing.
func Enforce(c domain.Copy, b domain.Brief) domain.Copy {
	out := c.Clone()
	out.Tagline = ensureMention(out.Tagline, b.Product, maxTaglineWords)
	out.Caption = clampWords(out.Caption, maxEnforcedCaptionWord)
	out.ShortDescription = clampSentences(out.ShortDescription, maxDescriptionSentence)
	out.Hashtags = withRequiredHashtags(NormalizeHashtags(out.Hashtags),
		productHashtag(b.Product), categoryHashtag(b.Category))
	return out
}

// withRequiredHashtags keeps the required tags, dropping trailing existing
// entries when the set would exceed the cap.
func withRequiredHashtags(existing []string, required ...string) []string {
	present := make(map[string]struct{}, len(existing))
	for _, tag := range existing {
		present[tag] = struct{}{}
	}
	var missing []string
	for _, tag := range required {
		if tag == "" {
			continue
		}
		if _, ok := present[tag]; ok {
			continue
		}
		present[tag] = struct{}{}
		missing = append(missing, tag)
	}
	keep := maxHashtags - len(missing)
	if keep > len(existing) {
		keep = len(existing)
	}
	out := append(append([]string(nil), existing[:keep]...), missing...)
	return out
}

// IsAcceptable decides whether a provider candidate may replace the composed
// baseline. Any one failed check rejects the candidate.
//
// The product must appear in the tagline or caption. Names of up to four words
// must appear in full; longer names only need their first four words, the same
// prefix the composer writes.
func IsAcceptable(c domain.Copy, product, category, benefit string) bool {
	return RejectionReason(c, product, category, benefit) == ""
}

// RejectionReason names the first failed acceptance check, or returns an empty
// string for acceptable copy.
func RejectionReason(c domain.Copy, product, category, benefit string) string {
	switch {
	case !mentions(c.Tagline, product) && !mentions(c.Caption, product):
		return "missing_product"
	case category != "" && benefit != "" && !groundedIn(c, category, benefit):
		return "ungrounded"
	case wordCount(c.Tagline) < 2 || wordCount(c.Caption) < 4:
		return "too_short"
	case isCanned(c, product):
		return "canned"
	default:
		return ""
	}
}

func groundedIn(c domain.Copy, terms ...string) bool {
	for _, field := range []string{c.Tagline, c.Caption} {
		for _, term := range terms {
			if containsFold(field, term) {
				return true
			}
		}
	}
	return false
}

func isCanned(c domain.Copy, product string) bool {
	canned := Defaults(product)
	return equalFoldTrim(c.Tagline, canned.Tagline) || equalFoldTrim(c.Caption, canned.Caption)
}
