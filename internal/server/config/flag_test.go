package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"cmd",
		"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
		"-t", "1", "-r", "3", "-u", "user", "-p", "password", "-b", "bucket",
		"-g", "us-west-1", "-e", "http://endpoint", "-w", "http://cdn/",
	}

	config := &Config{}
	require.NotPanics(t, func() { parseFlags(config) })

	want := &Config{
		EndpointAddrGRPC:             "127.0.0.1:9090",
		DatabaseDSN:                  "db",
		SecretKey:                    "secret",
		AccessTokenValidityDuration:  1 * time.Minute,
		RefreshTokenValidityDuration: 3 * time.Minute,
		S3RootUser:                   "user",
		S3RootPassword:               "password",
		S3Bucket:                     "bucket",
		S3Region:                     "us-west-1",
		S3BaseEndpoint:               "http://endpoint",
		S3PublicBaseURL:              "http://cdn/",
	}
	assert.Empty(t, cmp.Diff(want, config))
}

func TestParseFlags_BadValuePanics(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"cmd", "-t", "soon"}
	require.Panics(t, func() { parseFlags(&Config{}) })
}
