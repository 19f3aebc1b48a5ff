package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/flagx"
)

// FlagNames lists every global flag of the CLI, the JSON config flags
// included, so callers can separate them from command arguments.
var FlagNames = []string{"a", "token-file", "timeout", "c", "config"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string            address and port of the backend server
//	-token-file string   session file path
//	-timeout int         per-call timeout in seconds
//
// Only these flags are picked out of os.Args, so subcommand arguments pass
// through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], "a", "token-file", "timeout")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "file holding the session token")
	timeout := fs.Int("timeout", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
