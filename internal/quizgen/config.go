package quizgen

// Config controls the LLM-backed source.
type Config struct {
	// Count is the number of questions requested per batch.
	Count int

	// MaxCount bounds what a response may contain; anything above fails
	// the batch.
	MaxCount int

	// MaxTokens is the token budget for one batch.
	MaxTokens int

	// Temperature for generation; quizzes want variety.
	Temperature float64
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		Count:       10,
		MaxCount:    20,
		MaxTokens:   4096,
		Temperature: 0.8,
	}
}
