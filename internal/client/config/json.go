package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jobkeeper/internal/flagx"
	"github.com/dmitrijs2005/jobkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the client config file.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	DBPath             *string         `json:"db_path"`
	AuthTimeout        *timex.Duration `json:"auth_timeout"`
	LoadTimeout        *timex.Duration `json:"load_timeout"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	Verbose            *bool           `json:"verbose"`
}

// parseJson overlays cfg with the file named by -c/-config. Panics on read
// or parse errors.
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

	if c.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *c.ServerEndpointAddr
	}
	if c.DBPath != nil {
		cfg.DBPath = *c.DBPath
	}
	if c.AuthTimeout != nil {
		cfg.AuthTimeout = c.AuthTimeout.Duration
	}
	if c.LoadTimeout != nil {
		cfg.LoadTimeout = c.LoadTimeout.Duration
	}
	if c.RequestTimeout != nil {
		cfg.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.Verbose != nil {
		cfg.Verbose = *c.Verbose
	}
}
