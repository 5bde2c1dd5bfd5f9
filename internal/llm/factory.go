package llm

import (
	"context"
	"fmt"
	"time"
)

// NewProvider builds a Provider from cfg. When log is non-nil the
// provider is wrapped so every request is recorded with sessionID.
func NewProvider(ctx context.Context, cfg Config, log RequestLog, sessionID string) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if cfg.Timeout > 0 {
		base = &timeoutProvider{inner: base, timeout: cfg.Timeout}
	}
	if log != nil {
		base = WithLogging(base, log, sessionID)
	}
	return base, nil
}

// timeoutProvider bounds every request with the configured timeout.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}

// NewProviderFromEnv builds a Provider from BOPOMO_* env vars, falling
// back to probing the standard API key vars.
func NewProviderFromEnv(ctx context.Context, log RequestLog, sessionID string) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log, sessionID)
}
