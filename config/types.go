package config

// Config represents the complete configuration structure
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds GReader server connection details
type ServerConfig struct {
	// URL is the server root, e.g. https://rss.example.com/api/greader.php
	URL      string `mapstructure:"url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	// AuthToken, when set, skips the login exchange entirely.
	AuthToken string `mapstructure:"auth_token"`
	// ClientID is the client identifier sent on every request.
	ClientID string `mapstructure:"client_id"`
	// RequestsPerMinute throttles outgoing calls; zero disables throttling.
	RequestsPerMinute float64 `mapstructure:"requests_per_minute"`
}

// FilterConfig contains item filter settings
type FilterConfig struct {
	DefaultExpression string                  `mapstructure:"default"`
	Presets           map[string]FilterPreset `mapstructure:"presets"`
}

// FilterPreset is a named, reusable filter expression
type FilterPreset struct {
	Expression  string `mapstructure:"expression"`
	Description string `mapstructure:"description"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
