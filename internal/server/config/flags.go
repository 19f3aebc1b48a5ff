package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string              gRPC bind address (e.g., ":50051")
//	-d string              PostgreSQL DSN
//	-s string              session token HMAC secret key
//	-t int                 session token validity, minutes
//	-r int                 login code validity, minutes
//	-u string              S3 root user
//	-p string              S3 root password
//	-b string              S3 bucket name
//	-g string              S3 region
//	-e string              S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-storage string        postgres | memory
//	-containers string     database | s3
//	-code-length int       login code digits
//	-log-level string      debug | info | warn | error
//	-mail string           log | smtp
//	-smtp-addr string      SMTP relay host:port
//	-smtp-user string      SMTP user, enables PLAIN auth
//	-smtp-password string  SMTP password
//	-mail-from string      sender address
//
// Duration flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		"a", "d", "s", "t", "r", "u", "p", "b", "g", "e",
		"storage", "containers", "code-length", "log-level", "mail",
		"smtp-addr", "smtp-user", "smtp-password", "mail-from",
	)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionTokenValidity := fs.Int("t", int(config.SessionTokenValidityDuration.Minutes()), "session token validity (in minutes)")
	authRequestValidity := fs.Int("r", int(config.AuthRequestValidityDuration.Minutes()), "login code validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.Storage, "storage", config.Storage, "storage engine: postgres or memory")
	fs.StringVar(&config.ContainerStorage, "containers", config.ContainerStorage, "container storage: database or s3")
	fs.IntVar(&config.CodeLength, "code-length", config.CodeLength, "login code digits")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&config.MailBackend, "mail", config.MailBackend, "mail backend: log or smtp")
	fs.StringVar(&config.SMTPAddr, "smtp-addr", config.SMTPAddr, "SMTP relay address")
	fs.StringVar(&config.SMTPUser, "smtp-user", config.SMTPUser, "SMTP user")
	fs.StringVar(&config.SMTPPassword, "smtp-password", config.SMTPPassword, "SMTP password")
	fs.StringVar(&config.MailFrom, "mail-from", config.MailFrom, "mail sender address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTokenValidityDuration = time.Duration(*sessionTokenValidity) * time.Minute
	config.AuthRequestValidityDuration = time.Duration(*authRequestValidity) * time.Minute
}
