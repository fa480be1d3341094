package domain

// ProviderID identifies which path produced the copy in a GenerationResult.
type ProviderID string

const (
	ProviderPrimaryCloud   ProviderID = "primary-cloud"
	ProviderSecondaryCloud ProviderID = "secondary-cloud"
	ProviderLocal          ProviderID = "local"
	ProviderFallback       ProviderID = "fallback"
)

// Valid reports whether p belongs to the closed provider set.
func (p ProviderID) Valid() bool {
	switch p {
	case ProviderPrimaryCloud, ProviderSecondaryCloud, ProviderLocal, ProviderFallback:
		return true
	default:
		return false
	}
}

// GenerationResult is the response returned for a single brief.
type GenerationResult struct {
	Provider     ProviderID `json:"provider"`
	Demo         bool       `json:"demo"`
	Copy         Copy       `json:"copy"`
	Images       []string   `json:"images"`
	ImageDataURL string     `json:"imageDataUrl,omitempty"`
	Message      string     `json:"message,omitempty"`
	Raw          string     `json:"raw,omitempty"`
}
