package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate_CreatesOnce(t *testing.T) {
	f := newFixture(t)
	repo := &countingAccounts{Repository: f.mem.Accounts(nil)}
	f.accounts.repomanager = &stubManager{RepositoryManager: f.mem, accounts: repo}

	a, err := f.accounts.GetOrCreate(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", a.Email)
	assert.Empty(t, a.Sessions)
	assert.Empty(t, a.MainStore)
	assert.Equal(t, 1, repo.saves)

	_, err = f.accounts.GetOrCreate(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saves, "existing account is not written again")
}

func TestGetOrCreate_ReturnsExisting(t *testing.T) {
	f := newFixture(t)
	existing := models.NewAccount("a@b.com", time.Now())
	existing.MainStore = "m1"
	require.NoError(t, f.mem.Accounts(nil).Save(context.Background(), existing))

	a, err := f.accounts.GetOrCreate(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "m1", a.MainStore)
}

func TestGetOrCreate_OnlyNotFoundCreates(t *testing.T) {
	f := newFixture(t)
	repo := &countingAccounts{Repository: f.mem.Accounts(nil), getErr: errors.New("connection reset")}
	f.accounts.repomanager = &stubManager{RepositoryManager: f.mem, accounts: repo}

	_, err := f.accounts.GetOrCreate(context.Background(), "a@b.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Zero(t, repo.saves)
}

func TestGetOrCreate_SaveErrorPropagates(t *testing.T) {
	f := newFixture(t)
	repo := &countingAccounts{Repository: f.mem.Accounts(nil), saveErr: errors.New("disk full")}
	f.accounts.repomanager = &stubManager{RepositoryManager: f.mem, accounts: repo}

	_, err := f.accounts.GetOrCreate(context.Background(), "a@b.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestAccountGet(t *testing.T) {
	f := newFixture(t)

	_, err := f.accounts.Get(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidSession)

	ctx, activated := f.login(t, "a@b.com")
	a, err := f.accounts.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", a.Email)
	_, ok := a.FindSession(activated.Session.ID)
	assert.True(t, ok)
}
