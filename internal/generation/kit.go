package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"adcraft/internal/domain"
	"adcraft/internal/providers/image"
	"adcraft/pkg/zip"
)

// Kit entry names.
const (
	KitResultFile      = "result.json"
	KitCopyFile        = "copy.txt"
	KitImagesFile      = "images.txt"
	KitPlaceholderFile = "placeholder.png"
)

// BuildKit lays a result out as downloadable files: the full JSON result, a
// plain-text copy sheet, the photo URL list and the decoded placeholder.
func BuildKit(res *domain.GenerationResult) ([]zip.Asset, error) {
	if res == nil {
		return nil, fmt.Errorf("kit: nil result")
	}
	payload, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("kit: encode result: %w", err)
	}
	assets := []zip.Asset{
		{Filename: KitResultFile, MIME: "application/json", Data: append(payload, '\n')},
		{Filename: KitCopyFile, MIME: "text/plain; charset=utf-8", Data: []byte(CopySheet(res.Copy))},
	}
	if len(res.Images) > 0 {
		assets = append(assets, zip.Asset{
			Filename: KitImagesFile,
			MIME:     "text/plain; charset=utf-8",
			Data:     []byte(strings.Join(res.Images, "\n") + "\n"),
		})
	}
	if res.ImageDataURL != "" {
		png, err := image.DecodeDataURL(res.ImageDataURL)
		if err != nil {
			return nil, fmt.Errorf("kit: %w", err)
		}
		assets = append(assets, zip.Asset{Filename: KitPlaceholderFile, MIME: "image/png", Data: png})
	}
	return assets, nil
}

// CopySheet renders copy in the same "Key: value" layout providers are asked
// for, so a sheet can be fed back through the normalizer.
func CopySheet(c domain.Copy) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tagline: %s\n", c.Tagline)
	fmt.Fprintf(&sb, "Caption: %s\n", c.Caption)
	fmt.Fprintf(&sb, "Short Description: %s\n", c.ShortDescription)
	fmt.Fprintf(&sb, "Hashtags: %s\n", strings.Join(c.Hashtags, " "))
	return sb.String()
}

// KitFilename derives a download name such as "cold-brew-kit.zip".
func KitFilename(product string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(product) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			dash = false
		case sb.Len() > 0 && !dash:
			sb.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(sb.String(), "-")
	if len(slug) > 40 {
		slug = strings.TrimSuffix(slug[:40], "-")
	}
	if slug == "" {
		slug = "campaign"
	}
	return slug + "-kit.zip"
}
