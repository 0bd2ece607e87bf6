package extractor

// Config holds configuration for the LLM extraction client.
type Config struct {
	// APIKey authenticates against the chat completion API.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL is the chat completion endpoint.
	BaseURL string `mapstructure:"base_url" default:"https://openrouter.ai/api/v1/chat/completions"`
	// Model is the model identifier to request.
	Model string `mapstructure:"model" default:"google/gemini-2.5-flash"`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"120"`
}
