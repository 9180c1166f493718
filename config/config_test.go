package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				URL:      "https://rss.example.com/api/greader.php",
				Username: "user",
				Password: "pass",
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "console",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing server URL",
			mutate:  func(c *Config) { c.Server.URL = "" },
			wantErr: true,
		},
		{
			name: "missing credentials",
			mutate: func(c *Config) {
				c.Server.Username = ""
				c.Server.Password = ""
			},
			wantErr: true,
		},
		{
			name: "auth token replaces credentials",
			mutate: func(c *Config) {
				c.Server.Username = ""
				c.Server.Password = ""
				c.Server.AuthToken = "sometoken"
			},
			wantErr: false,
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *Config) { c.Server.RequestsPerMinute = -1 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
