package config

import "time"

// Config holds runtime settings for the jobkeeper client.
type Config struct {
	// ServerEndpointAddr is host:port of the backend gRPC endpoint.
	ServerEndpointAddr string
	// DBPath is the SQLite file that keeps the persisted session.
	DBPath string
	// AuthTimeout bounds session restore; on expiry the client starts anonymous.
	AuthTimeout time.Duration
	// LoadTimeout bounds the initial load of all collections.
	LoadTimeout time.Duration
	// RequestTimeout bounds single mutations.
	RequestTimeout time.Duration
	// Verbose enables debug logging.
	Verbose bool
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DBPath = "jobkeeper.db"
	c.AuthTimeout = 5 * time.Second
	c.LoadTimeout = 15 * time.Second
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
