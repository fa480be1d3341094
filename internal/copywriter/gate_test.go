package copywriter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"adcraft/internal/domain"
)

func TestQualityGate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		copy     domain.Copy
		product  string
		category string
		benefit  string
		reason   string
	}{
		{
			name:    "accepts_grounded_copy",
			copy:    domain.Copy{Tagline: "Widget, tidy desks daily", Caption: "Say hello to Widget, the tidy desk helper."},
			product: "Widget",
			reason:  "",
		},
		{
			name:    "rejects_missing_product",
			copy:    domain.Copy{Tagline: "The best desk helper ever", Caption: "Everyone will love this amazing new thing."},
			product: "Widget",
			reason:  "missing_product",
		},
		{
			name:     "rejects_ungrounded_when_category_and_benefit_given",
			copy:     domain.Copy{Tagline: "Widget is here", Caption: "Widget is the thing you need now."},
			product:  "Widget",
			category: "Beverage",
			benefit:  "zero sugar",
			reason:   "ungrounded",
		},
		{
			name:     "accepts_benefit_grounding",
			copy:     domain.Copy{Tagline: "Widget is here", Caption: "Widget, now with zero sugar for everyone."},
			product:  "Widget",
			category: "Beverage",
			benefit:  "zero sugar",
			reason:   "",
		},
		{
			name:     "category_only_needs_no_grounding",
			copy:     domain.Copy{Tagline: "Widget is here", Caption: "Widget is the thing you need now."},
			product:  "Widget",
			category: "Beverage",
			reason:   "",
		},
		{
			name:    "rejects_short_tagline",
			copy:    domain.Copy{Tagline: "Widget", Caption: "Widget is the thing you need now."},
			product: "Widget",
			reason:  "too_short",
		},
		{
			name:    "rejects_short_caption",
			copy:    domain.Copy{Tagline: "Widget rocks hard", Caption: "Widget rocks."},
			product: "Widget",
			reason:  "too_short",
		},
		{
			name:    "rejects_canned_defaults",
			copy:    domain.Copy{Tagline: "Meet Widget", Caption: "Say hello to Widget!"},
			product: "Widget",
			reason:  "canned",
		},
		{
			name:    "short_name_must_appear_in_full",
			copy:    domain.Copy{Tagline: "Cold brew, all day", Caption: "Cold brew that keeps your mornings moving."},
			product: "Cold Brew Coffee",
			reason:  "missing_product",
		},
		{
			name:    "long_name_matches_four_word_prefix",
			copy:    domain.Copy{Tagline: "Ultra Soft Organic Cotton, all day", Caption: "Ultra Soft Organic Cotton comfort from morning to night."},
			product: "Ultra Soft Organic Cotton Bamboo Blend Tee",
			reason:  "",
		},
		{
			name:    "rejects_canned_tagline_alone",
			copy:    domain.Copy{Tagline: "meet widget", Caption: "Widget organizes every cable on your desk."},
			product: "Widget",
			reason:  "canned",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := RejectionReason(tc.copy, tc.product, tc.category, tc.benefit); got != tc.reason {
				t.Fatalf("RejectionReason = %q, want %q", got, tc.reason)
			}
			if got, want := IsAcceptable(tc.copy, tc.product, tc.category, tc.benefit), tc.reason == ""; got != want {
				t.Fatalf("IsAcceptable = %t, want %t", got, want)
			}
		})
	}
}

func TestCannedProviderOutputIsRejected(t *testing.T) {
	t.Parallel()
	brief := domain.Brief{Product: "Widget"}
	candidate := Enforce(Normalize(`{"tagline":"Meet Widget","caption":"Say hello to Widget!"}`, brief.Product), brief)
	if IsAcceptable(candidate, brief.Product, brief.Category, brief.KeyBenefit) {
		t.Fatalf("canned copy accepted: %+v", candidate)
	}
	if reason := RejectionReason(candidate, brief.Product, "", ""); reason != "canned" {
		t.Fatalf("reason = %q, want canned", reason)
	}
}

func TestEnforce(t *testing.T) {
	t.Parallel()
	brief := domain.Brief{Product: "Widget", Category: "Gadget"}
	in := domain.Copy{
		Tagline:  "Tidy desks start here",
		Caption:  "Clean up your setup in seconds.",
		Hashtags: []string{"#one", "two", "#three", "#four", "#five"},
	}
	got := Enforce(in, brief)
	if got.Tagline != "Widget: Tidy desks start here" {
		t.Fatalf("Tagline = %q", got.Tagline)
	}
	want := []string{"#one", "#two", "#three", "#widget", "#gadget"}
	if diff := cmp.Diff(want, got.Hashtags); diff != "" {
		t.Fatalf("Hashtags mismatch (-want +got):\n%s", diff)
	}
	if in.Hashtags[1] != "two" {
		t.Fatal("Enforce mutated its input")
	}
	if diff := cmp.Diff(got, Enforce(got, brief)); diff != "" {
		t.Fatalf("Enforce is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestEnforceClampsDescriptionSentences(t *testing.T) {
	t.Parallel()
	brief := domain.Brief{Product: "Widget"}
	raw := `{"tagline":"Widget keeps desks tidy","caption":"Widget sorts every cable on your desk.","shortDescription":"One. Two. Three. Four. Five."}`
	got := Enforce(Normalize(raw, brief.Product), brief)
	if got.ShortDescription != "One. Two. Three." {
		t.Fatalf("ShortDescription = %q, want %q", got.ShortDescription, "One. Two. Three.")
	}
	if diff := cmp.Diff(got, Enforce(got, brief)); diff != "" {
		t.Fatalf("Enforce is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestEnforceClampsLongTagline(t *testing.T) {
	t.Parallel()
	got := Enforce(domain.Copy{Tagline: "one two three four five six seven eight nine ten"}, domain.Brief{Product: "Widget"})
	if wordCount(got.Tagline) != maxTaglineWords {
		t.Fatalf("tagline %q not clamped", got.Tagline)
	}
	if !mentions(got.Tagline, "Widget") {
		t.Fatalf("tagline %q lost product", got.Tagline)
	}
}
