package copywriter

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"adcraft/internal/domain"
)

var fieldAliases = struct {
	tagline, caption, description, hashtags []string
}{
	tagline:     []string{"tagline", "title", "headline", "slogan"},
	caption:     []string{"caption", "socialcaption", "social_caption", "post"},
	description: []string{"shortdescription", "short_description", "description", "body"},
	hashtags:    []string{"hashtags", "tags", "hash_tags"},
}

var (
	lineKeyPattern   = regexp.MustCompile(`(?i)^[\s>*#\-•\d.)]*\**\s*(tagline|caption|short[\s_-]*description|description|hashtags|tags)\s*\**\s*[:：]\s*(.*)$`)
	hashtagSeparator = regexp.MustCompile(`[\s,;|]+`)
)

type extracted struct {
	tagline     string
	caption     string
	description string
	hashtags    []string
}

// Defaults is the canned copy used for any field a provider failed to supply.
func Defaults(product string) domain.Copy {
	product = coalesce(product, "our product")
	return domain.Copy{
		Tagline:          "Meet " + product,
		Caption:          "Say hello to " + product + "!",
		ShortDescription: product + " is here. Crafted for everyday moments.",
		Hashtags:         mergeHashtags([]string{productHashtag(product), "#new"}),
	}
}

// Normalize converts raw provider text into a complete Copy. Structured JSON is
// preferred, "Key: value" lines are the second choice and Defaults fill
// whatever is still missing.
func Normalize(raw, product string) domain.Copy {
	fields, ok := parseStructured(raw)
	lines := parseLines(raw)
	if !ok {
		fields = lines
	} else {
		fields = fields.fillFrom(lines)
	}

	defaults := Defaults(product)
	hashtags := NormalizeHashtags(fields.hashtags)
	if len(hashtags) == 0 {
		hashtags = defaults.Hashtags
	}
	return domain.Copy{
		Tagline:          coalesce(fields.tagline, defaults.Tagline),
		Caption:          coalesce(fields.caption, defaults.Caption),
		ShortDescription: coalesce(fields.description, defaults.ShortDescription),
		Hashtags:         hashtags,
	}
}

func (e extracted) fillFrom(other extracted) extracted {
	e.tagline = coalesce(e.tagline, other.tagline)
	e.caption = coalesce(e.caption, other.caption)
	e.description = coalesce(e.description, other.description)
	if len(e.hashtags) == 0 {
		e.hashtags = other.hashtags
	}
	return e
}

func parseStructured(raw string) (extracted, bool) {
	fragment := extractObject(raw)
	if fragment == "" {
		return extracted{}, false
	}
	obj, ok := decodeObject(fragment)
	if !ok {
		return extracted{}, false
	}
	if nested, ok := lookup(obj, "copy").(map[string]any); ok {
		obj = nested
	}
	out := extracted{
		tagline:     firstString(obj, fieldAliases.tagline),
		caption:     firstString(obj, fieldAliases.caption),
		description: firstString(obj, fieldAliases.description),
	}
	for _, key := range fieldAliases.hashtags {
		if tags := toStrings(lookup(obj, key)); len(tags) > 0 {
			out.hashtags = tags
			break
		}
	}
	return out, true
}

func decodeObject(fragment string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(fragment), &obj); err == nil {
		return obj, true
	}
	repaired, err := jsonrepair.JSONRepair(fragment)
	if err != nil {
		return nil, false
	}
	obj = nil
	if err := json.Unmarshal([]byte(repaired), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// extractObject strips code fences and returns the greedy {...} span.
func extractObject(raw string) string {
	text := trimCodeFence(raw)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.Contains(trimmed, "```") {
		return trimmed
	}
	if idx := strings.Index(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[idx+3:]
		if nl := strings.IndexByte(trimmed, '\n'); nl >= 0 && !strings.Contains(trimmed[:nl], "{") {
			trimmed = trimmed[nl+1:]
		}
	}
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

func lookup(obj map[string]any, key string) any {
	if v, ok := obj[key]; ok {
		return v
	}
	for k, v := range obj {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return nil
}

func firstString(obj map[string]any, aliases []string) string {
	for _, key := range aliases {
		if s, ok := lookup(obj, key).(string); ok {
			if s = cleanValue(s); s != "" {
				return s
			}
		}
	}
	return ""
}

func toStrings(v any) []string {
	switch t := v.(type) {
	case []any:
		var out []string
		for _, item := range t {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return splitHashtags(t)
	default:
		return nil
	}
}

func splitHashtags(s string) []string {
	var out []string
	for _, part := range hashtagSeparator.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func cleanValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_`")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"'“”")
	return strings.TrimSpace(s)
}

// parseLines scans "Key: value" lines. A key with an empty value takes the
// next plain line; the short description keeps collecting lines until the
// next key.
func parseLines(raw string) extracted {
	var out extracted
	var current string
	var description []string
	assign := func(key, value string) {
		value = cleanValue(value)
		if value == "" {
			return
		}
		switch key {
		case "tagline":
			if out.tagline == "" {
				out.tagline = value
			}
		case "caption":
			if out.caption == "" {
				out.caption = value
			}
		case "description":
			description = append(description, value)
		case "hashtags":
			out.hashtags = append(out.hashtags, splitHashtags(value)...)
		}
	}
	for _, line := range strings.Split(trimCodeFence(raw), "\n") {
		if m := lineKeyPattern.FindStringSubmatch(line); m != nil {
			current = canonicalLineKey(m[1])
			assign(current, m[2])
			continue
		}
		if strings.TrimSpace(line) == "" || current == "" {
			continue
		}
		switch current {
		case "description":
			assign(current, line)
		case "tagline":
			if out.tagline == "" {
				assign(current, line)
			}
		case "caption":
			if out.caption == "" {
				assign(current, line)
			}
		case "hashtags":
			if len(out.hashtags) == 0 {
				assign(current, line)
			}
		}
	}
	out.description = strings.Join(description, " ")
	return out
}

func canonicalLineKey(key string) string {
	key = strings.ToLower(key)
	switch {
	case key == "tagline":
		return "tagline"
	case key == "caption":
		return "caption"
	case key == "hashtags" || key == "tags":
		return "hashtags"
	default:
		return "description"
	}
}
