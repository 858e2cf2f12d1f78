package models

// LLMSettings stores per-provider API keys. The keys are inert configuration:
// nothing in this service ever dispatches them to a provider.
type LLMSettings struct {
	AnthropicAPIKey string `json:"anthropic_api_key"`
	OpenAIAPIKey    string `json:"openai_api_key"`
	MetaAPIKey      string `json:"meta_api_key"`
	XAIAPIKey       string `json:"xai_api_key"`
}

// ActiveProviders lists the services that have a key configured, in the
// display order used on the settings page.
func (s LLMSettings) ActiveProviders() []string {
	providers := make([]string, 0, 4)
	if s.AnthropicAPIKey != "" {
		providers = append(providers, "Anthropic (Claude)")
	}
	if s.OpenAIAPIKey != "" {
		providers = append(providers, "OpenAI (GPT)")
	}
	if s.MetaAPIKey != "" {
		providers = append(providers, "Meta (Llama)")
	}
	if s.XAIAPIKey != "" {
		providers = append(providers, "XAI")
	}
	return providers
}
