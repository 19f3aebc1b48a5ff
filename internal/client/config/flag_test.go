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
		{name: "all flags", args: []string{"cmd", "-a", "127.0.0.1:9090", "-token-file", "/tmp/s.json", "-timeout", "5"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", TokenFile: "/tmp/s.json", RequestTimeout: 5 * time.Second}},
		{name: "subcommand args ignored", args: []string{"cmd", "put-store", "-a", "h:1", "-f", "store.json"},
			expected: &Config{ServerEndpointAddr: "h:1"}},
		{name: "bad timeout", args: []string{"cmd", "-timeout", "abc"}, expectPanic: true},
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
