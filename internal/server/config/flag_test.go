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
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "short flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
			"-t", "60", "-r", "5", "-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
		}, expected: &Config{
			EndpointAddrGRPC:             "127.0.0.1:9090",
			DatabaseDSN:                  "db",
			SecretKey:                    "secret",
			SessionTokenValidityDuration: 60 * time.Minute,
			AuthRequestValidityDuration:  5 * time.Minute,
			S3RootUser:                   "user",
			S3RootPassword:               "password",
			S3Bucket:                     "bucket",
			S3Region:                     "us-west-1",
			S3BaseEndpoint:               "http://endpoint",
		}},
		{name: "long flags", args: []string{"cmd",
			"-storage", "memory", "-containers=s3", "--code-length", "8", "-log-level", "debug", "-mail", "smtp",
			"-smtp-addr", "mail:25", "-smtp-user", "u", "-smtp-password", "pw", "-mail-from", "a@b.c",
			"-unknown", "ignored",
		}, expected: &Config{
			Storage:          StorageMemory,
			ContainerStorage: ContainersS3,
			CodeLength:       8,
			LogLevel:         "debug",
			MailBackend:      MailSMTP,
			SMTPAddr:         "mail:25",
			SMTPUser:         "u",
			SMTPPassword:     "pw",
			MailFrom:         "a@b.c",
		}},
		{name: "bad int", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
