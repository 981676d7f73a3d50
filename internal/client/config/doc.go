// Package config loads runtime configuration for the jobkeeper client.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. Command-line flags.
//
// Flags:
//
//	-a string   address:port of the backend gRPC endpoint
//	-f string   path of the local session database
//	-t int      session restore timeout (seconds)
//	-l int      initial load timeout (seconds)
//	-q int      request timeout (seconds)
//	-v          verbose (debug) logging
//
// JSON durations use timex.Duration, so "5s" and integer nanoseconds both work:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "db_path": "/home/ann/.jobkeeper.db",
//	  "auth_timeout": "5s",
//	  "load_timeout": "15s"
//	}
package config
