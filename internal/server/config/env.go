package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// dotenvFile is read, if present, before the process environment is consulted.
// Variables already set in the environment win over the file.
var dotenvFile = ".env"

// parseEnv overlays Config with JOBKEEPER_* environment variables.
// Durations use time.ParseDuration syntax; malformed values are ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(dotenvFile)

	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := os.LookupEnv(key); ok {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	str("JOBKEEPER_GRPC_ADDR", &cfg.EndpointAddrGRPC)
	str("JOBKEEPER_DATABASE_DSN", &cfg.DatabaseDSN)
	str("JOBKEEPER_SECRET_KEY", &cfg.SecretKey)
	dur("JOBKEEPER_ACCESS_TOKEN_TTL", &cfg.AccessTokenValidityDuration)
	dur("JOBKEEPER_REFRESH_TOKEN_TTL", &cfg.RefreshTokenValidityDuration)
	str("JOBKEEPER_S3_USER", &cfg.S3RootUser)
	str("JOBKEEPER_S3_PASSWORD", &cfg.S3RootPassword)
	str("JOBKEEPER_S3_BUCKET", &cfg.S3Bucket)
	str("JOBKEEPER_S3_REGION", &cfg.S3Region)
	str("JOBKEEPER_S3_ENDPOINT", &cfg.S3BaseEndpoint)
	str("JOBKEEPER_S3_PUBLIC_URL", &cfg.S3PublicBaseURL)
}
