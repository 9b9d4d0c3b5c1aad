package config

import (
	"time"

	"github.com/mindful-ai-dude/multilingo/internal/audio"
)

// Config holds runtime settings for the MultiLingo CLI.
//
// Secrets (Gemini API key, device token secret, object-storage credentials)
// come from the environment only, never from flags or JSON.
type Config struct {
	// DatabaseDSN is the path of the local sqlite database.
	DatabaseDSN string

	// RemoteEndpointAddr is the base URL of the hosted collaboration store.
	// Empty means offline mode: an in-process store serves the contract.
	RemoteEndpointAddr string

	// ProbeURL is the endpoint the connectivity check issues HEAD requests
	// against.
	ProbeURL string

	// GeminiAPIKey enables the online AI translation stage.
	GeminiAPIKey string

	// TokenSecret signs the device identity token.
	TokenSecret string

	// DeviceID identifies this installation. Generated when empty.
	DeviceID string

	OnlineCheckInterval time.Duration
	SyncInterval        time.Duration
	SweepInterval       time.Duration

	// S3 settings for the optional phrase-recording bucket.
	S3 audio.S3Settings
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "multilingo.db"
	c.ProbeURL = "https://clients3.google.com/generate_204"
	c.OnlineCheckInterval = 3 * time.Second
	c.SyncInterval = 30 * time.Second
	c.SweepInterval = time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
