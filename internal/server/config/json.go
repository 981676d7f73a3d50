package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jobkeeper/internal/flagx"
	"github.com/dmitrijs2005/jobkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations accept
// "15m" strings or integer nanoseconds. Absent keys leave Config untouched.
type JsonConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	SecretKey                    *string         `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   *string         `json:"s3_root_user"`
	S3RootPassword               *string         `json:"s3_root_password"`
	S3Bucket                     *string         `json:"s3_bucket"`
	S3Region                     *string         `json:"s3_region"`
	S3BaseEndpoint               *string         `json:"s3_base_endpoint"`
	S3PublicBaseURL              *string         `json:"s3_public_base_url"`
}

// parseJson loads the file named by -c/-config, if any, over cfg.
// It panics if the file cannot be read or parsed.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	set(&cfg.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&cfg.DatabaseDSN, c.DatabaseDSN)
	set(&cfg.SecretKey, c.SecretKey)
	set(&cfg.S3RootUser, c.S3RootUser)
	set(&cfg.S3RootPassword, c.S3RootPassword)
	set(&cfg.S3Bucket, c.S3Bucket)
	set(&cfg.S3Region, c.S3Region)
	set(&cfg.S3BaseEndpoint, c.S3BaseEndpoint)
	set(&cfg.S3PublicBaseURL, c.S3PublicBaseURL)
	if c.AccessTokenValidityDuration != nil {
		cfg.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		cfg.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
