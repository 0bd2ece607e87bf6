package legacyhtml

// Config holds configuration for the legacy result page fetcher.
type Config struct {
	// BaseURL is the root of the legacy results site.
	BaseURL string `mapstructure:"base_url" default:"https://results.example.org"`
	// CacheDir is the directory for cached pages.
	CacheDir string `mapstructure:"cache_dir" default:".cache/legacy-pages"`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
