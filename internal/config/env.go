package config

import "os"

// Environment variable names. The .env file loaded in main populates these
// for local development.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvRemoteAddr   = "MULTILINGO_REMOTE_ADDR"
	EnvDatabaseDSN  = "MULTILINGO_DB"
	EnvTokenSecret  = "MULTILINGO_TOKEN_SECRET"
	EnvDeviceID     = "MULTILINGO_DEVICE_ID"

	EnvS3Region       = "MULTILINGO_S3_REGION"
	EnvS3BaseEndpoint = "MULTILINGO_S3_ENDPOINT"
	EnvS3Bucket       = "MULTILINGO_S3_BUCKET"
	EnvS3AccessKey    = "MULTILINGO_S3_ACCESS_KEY"
	EnvS3SecretKey    = "MULTILINGO_S3_SECRET_KEY"
)

// parseEnv overlays Config with values from the environment. Unset variables
// leave the current value alone.
func parseEnv(cfg *Config) {
	overlay(&cfg.GeminiAPIKey, EnvGeminiAPIKey)
	overlay(&cfg.RemoteEndpointAddr, EnvRemoteAddr)
	overlay(&cfg.DatabaseDSN, EnvDatabaseDSN)
	overlay(&cfg.TokenSecret, EnvTokenSecret)
	overlay(&cfg.DeviceID, EnvDeviceID)

	overlay(&cfg.S3.Region, EnvS3Region)
	overlay(&cfg.S3.BaseEndpoint, EnvS3BaseEndpoint)
	overlay(&cfg.S3.Bucket, EnvS3Bucket)
	overlay(&cfg.S3.AccessKey, EnvS3AccessKey)
	overlay(&cfg.S3.SecretKey, EnvS3SecretKey)
}

func overlay(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
