package gateway

// Config controls the sampling parameters of the two gateway calls.
type Config struct {
	AskTemperature float64
	AskTopP        float64
	AskMaxTokens   int

	QuizTemperature float64
	QuizMaxTokens   int
}

// DefaultConfig returns a gentle, child-friendly sampling setup. Quiz
// generation leaves temperature at zero so the provider default applies.
func DefaultConfig() Config {
	return Config{
		AskTemperature:  0.5,
		AskTopP:         0.9,
		AskMaxTokens:    512,
		QuizTemperature: 0,
		QuizMaxTokens:   2048,
	}
}
