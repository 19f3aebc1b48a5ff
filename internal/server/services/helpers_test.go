package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/config"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/authrequests"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/containers"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return f.err
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// stubManager overrides selected repositories of an underlying manager.
type stubManager struct {
	repomanager.RepositoryManager
	accounts     accounts.Repository
	authRequests authrequests.Repository
	containers   containers.Repository
}

func (m *stubManager) Accounts(db dbx.DBTX) accounts.Repository {
	if m.accounts != nil {
		return m.accounts
	}
	return m.RepositoryManager.Accounts(db)
}

func (m *stubManager) AuthRequests(db dbx.DBTX) authrequests.Repository {
	if m.authRequests != nil {
		return m.authRequests
	}
	return m.RepositoryManager.AuthRequests(db)
}

func (m *stubManager) Containers(db dbx.DBTX) containers.Repository {
	if m.containers != nil {
		return m.containers
	}
	return m.RepositoryManager.Containers(db)
}

// countingAccounts wraps a repository, counts writes and can fail calls.
type countingAccounts struct {
	accounts.Repository
	getErr  error
	saveErr error
	saves   int
}

func (r *countingAccounts) Get(ctx context.Context, email string) (*models.Account, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.Repository.Get(ctx, email)
}

func (r *countingAccounts) Save(ctx context.Context, a *models.Account) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	return r.Repository.Save(ctx, a)
}

// ---- fixture ----

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		SessionTokenValidityDuration: time.Hour,
		AuthRequestValidityDuration:  15 * time.Minute,
		CodeLength:                   6,
	}
}

type fixture struct {
	rm           repomanager.RepositoryManager
	mem          *repomanager.InMemoryRepositoryManager
	mailer       *fakeMailer
	authRequests *AuthRequestService
	accounts     *AccountService
	sessions     *SessionService
	stores       *StoreService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := repomanager.NewInMemoryRepositoryManager()
	return newFixtureWith(t, mem, mem)
}

func newFixtureWith(t *testing.T, mem *repomanager.InMemoryRepositoryManager, rm repomanager.RepositoryManager) *fixture {
	t.Helper()
	cfg := testConfig()
	mailer := &fakeMailer{}
	l := logging.Nop{}

	ar := NewAuthRequestService(nil, rm, mailer, l, cfg)
	as := NewAccountService(nil, rm)

	return &fixture{
		rm:           rm,
		mem:          mem,
		mailer:       mailer,
		authRequests: ar,
		accounts:     as,
		sessions:     NewSessionService(nil, rm, ar, as, l, cfg),
		stores:       NewStoreService(nil, rm, JSONCodec{}, l),
	}
}

// codeFor reads the pending code straight from storage.
func (f *fixture) codeFor(t *testing.T, sessionID string) string {
	t.Helper()
	req, err := f.mem.AuthRequests(nil).Get(context.Background(), sessionID)
	require.NoError(t, err)
	return req.Code
}

// login runs the whole start/activate/authenticate flow and returns a
// context carrying the resulting identity.
func (f *fixture) login(t *testing.T, email string) (context.Context, *ActivatedSession) {
	t.Helper()
	ctx := context.Background()

	pending, err := f.authRequests.Start(ctx, email, nil)
	require.NoError(t, err)

	activated, err := f.sessions.Activate(ctx, pending.ID, f.codeFor(t, pending.ID))
	require.NoError(t, err)

	rc, err := f.sessions.Authenticate(ctx, activated.Token)
	require.NoError(t, err)

	return WithRequestContext(ctx, rc), activated
}
