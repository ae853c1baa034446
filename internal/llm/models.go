package llm

var supportedModels = map[string][]string{
	ProviderOpenAI: {
		"gpt-4.1-nano",
		"gpt-4o-mini",
		"gpt-4o",
		"gpt-3.5-turbo",
	},
	ProviderAnthropic: {
		"claude-3-5-sonnet-20241022",
		"claude-3-sonnet-20240229",
		"claude-3-haiku-20240307",
	},
}

// SupportedModels lists the models offered for a provider. Ollama serves
// whatever is pulled locally, so only its configured model is listed.
func (c Config) SupportedModels(provider string) []string {
	if provider == ProviderOllama {
		return []string{c.Ollama.Model}
	}
	return append([]string(nil), supportedModels[provider]...)
}

// DefaultModel returns the model used when a request names none.
// MAILFORGE_LLM_MODEL overrides the default provider's model only.
func (c Config) DefaultModel(provider string) string {
	if c.Model != "" && provider == c.Provider {
		return c.Model
	}
	switch provider {
	case ProviderOpenAI:
		return c.OpenAI.Model
	case ProviderAnthropic:
		return c.Anthropic.Model
	case ProviderOllama:
		return c.Ollama.Model
	default:
		return ""
	}
}
