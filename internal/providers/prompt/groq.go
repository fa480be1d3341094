package prompt

import "adcraft/internal/domain"

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.1-8b-instant"
	backupGroqModel    = "llama-3.3-70b-versatile"
)

// NewGroqGenerator builds the secondary cloud generator on Groq's
// OpenAI-compatible endpoint.
func NewGroqGenerator(opts ChatOptions) (*ChatGenerator, error) {
	return newChatGenerator(domain.ProviderSecondaryCloud, groqProviderName, opts,
		defaultGroqBaseURL, modelVariants(opts.Model, defaultGroqModel, backupGroqModel), true)
}
