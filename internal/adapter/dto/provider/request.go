package provider

// TestProviderRequest verifies a provider credential end to end
type TestProviderRequest struct {
	Provider string `json:"provider" validate:"required,oneof=openai gemini mistral xai deepseek"`
	Model    string `json:"model,omitempty" validate:"omitempty,max=100"`
	APIKey   string `json:"api_key" validate:"required"`
}

// TestProviderResponse reports the outcome of a credential check
type TestProviderResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
	Response  string `json:"response,omitempty"`
}
