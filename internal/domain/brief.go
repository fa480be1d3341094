package domain

import "strings"

// Brief is the product description submitted by the caller. It is built fresh
// for every request and never persisted.
type Brief struct {
	Product      string `json:"product"`
	Category     string `json:"category"`
	KeyBenefit   string `json:"keyBenefit"`
	Audience     string `json:"audience"`
	Tone         string `json:"tone"`
	Platform     string `json:"platform"`
	ImageStyle   string `json:"imageStyle"`
	ColorHint    string `json:"colorHint"`
	IncludeImage *bool  `json:"includeImage,omitempty"`
	ImageQuery   string `json:"imageQuery"`
}

// Normalize trims every free-text field in place.
func (b *Brief) Normalize() {
	if b == nil {
		return
	}
	fields := []*string{
		&b.Product, &b.Category, &b.KeyBenefit, &b.Audience, &b.Tone,
		&b.Platform, &b.ImageStyle, &b.ColorHint, &b.ImageQuery,
	}
	for _, f := range fields {
		*f = strings.Join(strings.Fields(*f), " ")
	}
}

// Validate reports whether the brief can be processed at all.
func (b Brief) Validate() error {
	if strings.TrimSpace(b.Product) == "" {
		return ErrProductRequired
	}
	return nil
}

// WantsImage applies the default of including imagery when the caller did not
// say otherwise.
func (b Brief) WantsImage() bool {
	if b.IncludeImage == nil {
		return true
	}
	return *b.IncludeImage
}
