package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/vaultkeeper/internal/api"
	"github.com/dmitrijs2005/vaultkeeper/internal/client/client"
	"github.com/dmitrijs2005/vaultkeeper/internal/client/config"
)

// apiClient is the part of client.GRPCClient the CLI uses.
type apiClient interface {
	SetToken(token string)
	Token() string
	StartSession(ctx context.Context, email string) (*api.Session, error)
	ActivateSession(ctx context.Context, sessionID, code string) (*api.Session, error)
	RevokeSession(ctx context.Context, sessionID string) error
	GetAccount(ctx context.Context) (*api.Account, error)
	GetStore(ctx context.Context, id string) (json.RawMessage, error)
	PutStore(ctx context.Context, id string, store json.RawMessage) (json.RawMessage, error)
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config  *config.Config
	api     apiClient
	session *savedSession
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp connects to the configured endpoint and restores a saved session,
// if there is one.
func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewVaultKeeperClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, bufio.NewReader(os.Stdin), os.Stdout)
}

func newApp(c *config.Config, ac apiClient, r *bufio.Reader, w io.Writer) (*App, error) {
	a := &App{config: c, api: ac, reader: r, out: w}

	s, err := loadSession(c.TokenFile)
	if err != nil {
		log.Printf("ignoring saved session: %s", err.Error())
	}
	if s != nil {
		a.session = s
		ac.SetToken(s.Token)
	}
	return a, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return a.session.Email
}

// call runs fn under the configured request timeout.
func (a *App) call(ctx context.Context, fn func(ctx context.Context) error) error {
	if a.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.RequestTimeout)
		defer cancel()
	}
	return fn(ctx)
}

// Run executes args as a single command, or starts the interactive loop when
// args is empty.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.api.Close()

	if len(args) > 0 {
		_, err := dispatch(ctx, a, args[0], args[1:])
		return err
	}

	a.println("VaultKeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}
