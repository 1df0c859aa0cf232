package config

import "os"

// ScorerConfig holds configuration for the external semantic scorer
type ScorerConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultScorerConfig returns the default semantic scorer configuration
func DefaultScorerConfig() *ScorerConfig {
	return &ScorerConfig{
		APIKey:    os.Getenv("SCORER_API_KEY"),
		BaseURL:   getEnvOrDefault("SCORER_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		Model:     getEnvOrDefault("SCORER_MODEL", "gemini-2.0-flash"),
		TimeoutMS: 10000, // 10 second default timeout
	}
}

// IsEnabled returns true if the semantic scorer is configured
func (c *ScorerConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for the configured model
func (c *ScorerConfig) ModelEndpoint() string {
	return c.BaseURL + "/" + c.Model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
