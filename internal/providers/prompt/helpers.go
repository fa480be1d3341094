package prompt

import (
	"fmt"
	"strings"

	"adcraft/internal/domain"
)

const (
	openAIProviderName = "openai"
	groqProviderName   = "groq"
	ollamaProviderName = "ollama"
)

const systemInstruction = "You are a careful marketing copywriter for small businesses. You only use facts present in the brief."

const guardrail = "Do not invent facts that are not in the brief: no ingredients, specs, materials, prices, certifications, awards or health claims unless the brief states them."

type promptFormat int

const (
	formatJSON promptFormat = iota
	formatLines
)

// buildCopyPrompt renders the instruction sent to text providers. The
// expected output shape is spelled out in the text because most providers do
// not enforce a schema.
func buildCopyPrompt(b domain.Brief, format promptFormat) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Write marketing copy for the product %q.", b.Product)
	details := []struct{ label, value string }{
		{"Category", b.Category},
		{"Key benefit", b.KeyBenefit},
		{"Audience", b.Audience},
		{"Tone", b.Tone},
		{"Platform", b.Platform},
	}
	for _, d := range details {
		if v := strings.TrimSpace(d.value); v != "" {
			fmt.Fprintf(sb, "\n%s: %s", d.label, v)
		}
	}
	sb.WriteString("\n\nRequirements:")
	sb.WriteString("\n- The tagline must mention the product name and stay under 8 words.")
	sb.WriteString("\n- The caption is one sentence of at most 24 words and mentions the product.")
	if b.Category != "" || b.KeyBenefit != "" {
		sb.WriteString("\n- Ground the tagline or caption in the category or key benefit.")
	}
	sb.WriteString("\n- The short description has at most three sentences.")
	fmt.Fprintf(sb, "\n- Give exactly %d lowercase hashtags.", domain.MaxHashtags)
	sb.WriteString("\n- " + guardrail)
	switch format {
	case formatLines:
		sb.WriteString("\n\nAnswer with exactly these four lines and nothing else:")
		sb.WriteString("\nTagline: ...\nCaption: ...\nShort Description: ...\nHashtags: #a #b #c #d #e")
	default:
		sb.WriteString("\n\nRespond strictly with JSON matching this schema: ")
		sb.WriteString(`{"tagline":string,"caption":string,"shortDescription":string,"hashtags":string[]}`)
	}
	return sb.String()
}
