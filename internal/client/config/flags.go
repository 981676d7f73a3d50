package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/flagx"
)

func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t", "-l", "-q", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DBPath, "f", cfg.DBPath, "local session database file")
	authTimeout := fs.Int("t", int(cfg.AuthTimeout.Seconds()), "session restore timeout (in seconds)")
	loadTimeout := fs.Int("l", int(cfg.LoadTimeout.Seconds()), "initial load timeout (in seconds)")
	requestTimeout := fs.Int("q", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthTimeout = time.Duration(*authTimeout) * time.Second
	cfg.LoadTimeout = time.Duration(*loadTimeout) * time.Second
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
