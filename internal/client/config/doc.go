// Package config loads runtime configuration for the VaultKeeper CLI.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. VAULTKEEPER_SERVER_ADDR, VAULTKEEPER_TOKEN_FILE and
//     VAULTKEEPER_REQUEST_TIMEOUT.
//  4. Command-line flags -a, -token-file and -timeout.
//
// JSON example:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "token_file": "/home/me/.config/vaultkeeper/session.json",
//	  "request_timeout": "10s"
//	}
package config
