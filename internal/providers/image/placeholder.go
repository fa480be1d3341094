package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	stdimage "image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// PlaceholderSize is the edge length of the square placeholder in pixels.
	PlaceholderSize = 1024

	placeholderMaxRunes = 28
	dataURLPrefix       = "data:image/png;base64,"
)

// RenderPlaceholder draws the product name over a seeded two-tone background
// and returns the PNG as a data URL.
func RenderPlaceholder(product string, seed uint32) (string, error) {
	data, err := renderPlaceholderPNG(product, seed)
	if err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(data), nil
}

func renderPlaceholderPNG(product string, seed uint32) ([]byte, error) {
	base, accent := placeholderPalette(seed)

	img := stdimage.NewRGBA(stdimage.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.Draw(img, img.Bounds(), &stdimage.Uniform{C: base}, stdimage.Point{}, draw.Src)
	band := stdimage.Rect(0, PlaceholderSize*2/3, PlaceholderSize, PlaceholderSize)
	draw.Draw(img, band, &stdimage.Uniform{C: accent}, stdimage.Point{}, draw.Src)

	label := placeholderLabel(product)
	if label != "" {
		drawLabel(img, label, textColor(base))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLabel renders text with the fixed-size basic font on a small canvas and
// scales it up, centred in the upper two thirds of dst.
func drawLabel(dst *stdimage.RGBA, label string, ink color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, label).Ceil()
	height := face.Height
	if width <= 0 {
		return
	}
	small := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  small,
		Src:  stdimage.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(label)

	scale := (PlaceholderSize * 8 / 10) / width
	if scale < 1 {
		scale = 1
	}
	if scale > 12 {
		scale = 12
	}
	w, h := width*scale, height*scale
	x0 := (PlaceholderSize - w) / 2
	y0 := (PlaceholderSize*2/3 - h) / 2
	target := stdimage.Rect(x0, y0, x0+w, y0+h)
	draw.NearestNeighbor.Scale(dst, target, small, small.Bounds(), draw.Over, nil)
}

// placeholderLabel keeps the printable ASCII the basic font can draw.
func placeholderLabel(product string) string {
	var sb strings.Builder
	for _, r := range strings.Join(strings.Fields(product), " ") {
		if r < 0x20 || r > 0x7e {
			r = '?'
		}
		sb.WriteRune(r)
	}
	label := sb.String()
	if len(label) > placeholderMaxRunes {
		label = strings.TrimSpace(label[:placeholderMaxRunes-3]) + "..."
	}
	return label
}

func textColor(bg color.RGBA) color.RGBA {
	luma := (299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)) / 1000
	if luma > 140 {
		return color.RGBA{R: 24, G: 24, B: 24, A: 255}
	}
	return color.RGBA{R: 250, G: 250, B: 250, A: 255}
}

// placeholderPalette spreads the brief seed into a base and an accent colour.
// Each colour takes three bytes of a mixed copy of the seed.
func placeholderPalette(seed uint32) (base, accent color.RGBA) {
	return rgbFrom(mix32(seed)), rgbFrom(mix32(seed ^ accentSalt))
}

const accentSalt = 0x9e3779b9

// mix32 is the murmur3 finalizer; neighbouring seeds land far apart.
func mix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func rgbFrom(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: 255}
}

// DecodeDataURL returns the PNG bytes carried by a data URL produced by
// RenderPlaceholder.
func DecodeDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		return nil, fmt.Errorf("not a png data url")
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, dataURLPrefix))
	if err != nil {
		return nil, fmt.Errorf("decode data url: %w", err)
	}
	return data, nil
}
