package generation

import (
	"strings"
	"testing"

	"adcraft/internal/copywriter"
	"adcraft/internal/domain"
	"adcraft/internal/providers/image"
)

func TestBuildKit(t *testing.T) {
	t.Parallel()
	placeholder, err := image.RenderPlaceholder("Widget", 1)
	if err != nil {
		t.Fatalf("RenderPlaceholder returned error: %v", err)
	}
	res := &domain.GenerationResult{
		Provider:     domain.ProviderFallback,
		Demo:         true,
		Copy:         domain.Copy{Tagline: "Widget rocks", Caption: "Widget keeps going all day.", ShortDescription: "Widget.", Hashtags: []string{"#widget", "#gadget"}},
		Images:       []string{"https://img/1", "https://img/2"},
		ImageDataURL: placeholder,
	}
	assets, err := BuildKit(res)
	if err != nil {
		t.Fatalf("BuildKit returned error: %v", err)
	}
	var names []string
	for _, a := range assets {
		names = append(names, a.Filename)
	}
	want := []string{KitResultFile, KitCopyFile, KitImagesFile, KitPlaceholderFile}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("entries = %v, want %v", names, want)
	}
	if !strings.Contains(string(assets[1].Data), "Hashtags: #widget #gadget") {
		t.Fatalf("copy sheet = %q", assets[1].Data)
	}
	if string(assets[3].Data[1:4]) != "PNG" {
		t.Fatalf("placeholder is not png data")
	}
}

func TestBuildKitMinimal(t *testing.T) {
	t.Parallel()
	assets, err := BuildKit(&domain.GenerationResult{Provider: domain.ProviderLocal})
	if err != nil {
		t.Fatalf("BuildKit returned error: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("len(assets) = %d, want 2", len(assets))
	}
	if _, err := BuildKit(nil); err == nil {
		t.Fatal("expected error for nil result")
	}
}

func TestCopySheetRoundTripsThroughNormalizer(t *testing.T) {
	t.Parallel()
	brief := domain.Brief{Product: "Cold Brew", Category: "coffee", KeyBenefit: "smooth finish"}
	c := copywriter.Compose(brief)
	got := copywriter.Normalize(CopySheet(c), brief.Product)
	if got.Tagline != c.Tagline || got.Caption != c.Caption || got.ShortDescription != c.ShortDescription {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, c)
	}
}

func TestKitFilename(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Cold Brew":          "cold-brew-kit.zip",
		"  iPhone 15 Pro!! ": "iphone-15-pro-kit.zip",
		"***":                "campaign-kit.zip",
		"Café Crème":         "caf-cr-me-kit.zip",
	}
	for in, want := range cases {
		if got := KitFilename(in); got != want {
			t.Fatalf("KitFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
