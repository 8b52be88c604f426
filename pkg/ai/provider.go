package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/debateclub/arena/pkg/config"
)

// Supported provider identifiers
const (
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
	ProviderMistral  = "mistral"
	ProviderXAI      = "xai"
	ProviderDeepSeek = "deepseek"
)

// GenerateParams is the input of a single text-generation call
type GenerateParams struct {
	Provider    string
	Model       string
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
	APIKey      string
}

// Generator produces text for a prompt. Implementations must be safe to
// retry: a failed call leaves no state behind.
type Generator interface {
	Generate(ctx context.Context, params GenerateParams) (string, error)
}

// Registry routes generation calls to the configured provider clients.
// When demo mode is on or no credential exists for the requested
// provider, calls fall through to the mock generator.
type Registry struct {
	cfg      *config.Config
	clients  map[string]Generator
	mock     *MockGenerator
	demoMode bool
	logger   *zap.Logger
}

// NewRegistry builds clients for every supported provider
func NewRegistry(cfg *config.Config, logger *zap.Logger) *Registry {
	clients := map[string]Generator{
		ProviderOpenAI:   NewChatClient(ProviderOpenAI, cfg.Providers.OpenAI.BaseURL),
		ProviderMistral:  NewChatClient(ProviderMistral, cfg.Providers.Mistral.BaseURL),
		ProviderXAI:      NewChatClient(ProviderXAI, cfg.Providers.XAI.BaseURL),
		ProviderDeepSeek: NewChatClient(ProviderDeepSeek, cfg.Providers.DeepSeek.BaseURL),
		ProviderGemini:   NewGeminiClient(),
	}

	return &Registry{
		cfg:      cfg,
		clients:  clients,
		mock:     NewMockGenerator(),
		demoMode: cfg.Debate.DemoMode,
		logger:   logger,
	}
}

// Generate resolves the provider, fills the credential from config when
// the caller did not supply one, and dispatches the call.
func (r *Registry) Generate(ctx context.Context, params GenerateParams) (string, error) {
	name := strings.ToLower(params.Provider)

	if params.APIKey == "" {
		if pc, ok := r.cfg.Provider(name); ok {
			params.APIKey = pc.APIKey
		}
	}

	if r.demoMode || params.APIKey == "" {
		return r.mock.Generate(ctx, params)
	}

	client, ok := r.clients[name]
	if !ok {
		return "", fmt.Errorf("unknown provider: %s", params.Provider)
	}

	text, err := client.Generate(ctx, params)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("provider generation failed",
				zap.String("provider", name),
				zap.String("model", params.Model),
				zap.Error(err),
			)
		}
		return "", err
	}
	return text, nil
}

// TestProvider verifies a credential with a minimal generation call. It
// always dials the real provider, even in demo mode.
func (r *Registry) TestProvider(ctx context.Context, provider, model, apiKey string) (string, error) {
	name := strings.ToLower(provider)
	client, ok := r.clients[name]
	if !ok {
		return "", fmt.Errorf("unknown provider: %s", provider)
	}
	if model == "" {
		model = "default"
	}
	return client.Generate(ctx, GenerateParams{
		Provider:    name,
		Model:       model,
		System:      "You are a helpful assistant.",
		Prompt:      `Say "API test successful" in exactly 3 words.`,
		Temperature: 0.3,
		MaxTokens:   20,
		APIKey:      apiKey,
	})
}

// HasCredential reports whether a provider can be called for real
func (r *Registry) HasCredential(provider string) bool {
	pc, ok := r.cfg.Provider(strings.ToLower(provider))
	return ok && pc.APIKey != ""
}

// DemoMode reports whether all calls are routed to the mock generator
func (r *Registry) DemoMode() bool {
	return r.demoMode
}
