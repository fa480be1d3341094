package prompt

import (
	"strings"
	"testing"

	"adcraft/internal/domain"
)

func TestBuildCopyPrompt(t *testing.T) {
	t.Parallel()
	b := domain.Brief{Product: "Pumpkin Spice Cold Brew", Category: "Beverage", Tone: "playful"}
	got := buildCopyPrompt(b, formatJSON)
	for _, want := range []string{
		`"Pumpkin Spice Cold Brew"`,
		"Category: Beverage",
		"Tone: playful",
		guardrail,
		`"shortDescription":string`,
		"Ground the tagline or caption",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Audience:") {
		t.Fatalf("prompt should omit empty fields:\n%s", got)
	}
}

func TestBuildCopyPromptLineFormat(t *testing.T) {
	t.Parallel()
	got := buildCopyPrompt(domain.Brief{Product: "Widget"}, formatLines)
	if !strings.Contains(got, "Short Description: ...") {
		t.Fatalf("line format missing:\n%s", got)
	}
	if strings.Contains(got, "Respond strictly with JSON") {
		t.Fatalf("line format should not ask for JSON:\n%s", got)
	}
	if strings.Contains(got, "Ground the tagline") {
		t.Fatalf("grounding requirement without category or benefit:\n%s", got)
	}
}
