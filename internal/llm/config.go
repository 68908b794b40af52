// Package llm provides the generative-text client abstraction used by the
// profiling, pathway research, and advisor stages.
package llm

// ModelTier represents the capability level requested for a generation call.
type ModelTier string

const (
	// TierLite is for simple extraction and classification.
	TierLite ModelTier = "lite"
	// TierStandard is for structured output with moderate reasoning.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for planning and multi-constraint recommendations.
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM provider.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
)

// Config holds the per-tier model configuration.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back through standard
// and lite when the requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Provider: c.Provider, Models: make(map[ModelTier]string, len(c.Models))}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
