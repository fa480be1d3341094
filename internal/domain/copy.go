package domain

// MaxHashtags caps the hashtag set on every Copy.
const MaxHashtags = 5

// Copy is the marketing text produced for a brief.
type Copy struct {
	Tagline          string   `json:"tagline"`
	Caption          string   `json:"caption"`
	ShortDescription string   `json:"shortDescription"`
	Hashtags         []string `json:"hashtags"`
}

// Clone returns a deep copy so callers can mutate hashtags safely.
func (c Copy) Clone() Copy {
	out := c
	out.Hashtags = append([]string(nil), c.Hashtags...)
	return out
}
