package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/auth"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/config"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/repomanager"
)

// ActivatedSession is an active session together with the token that
// authenticates requests made with it.
type ActivatedSession struct {
	Session models.Session
	Token   string
}

type SessionService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	authRequests  *AuthRequestService
	accounts      *AccountService
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
	now           func() time.Time
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, ar *AuthRequestService, as *AccountService, l logging.Logger, cfg *config.Config) *SessionService {
	return &SessionService{
		db:            db,
		repomanager:   m,
		authRequests:  ar,
		accounts:      as,
		logger:        l.With("module", "sessions"),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.SessionTokenValidityDuration,
		now:           time.Now,
	}
}

// Activate redeems code for the pending session sessionID and adds the
// now active session to the account of the request's email, creating the
// account on first login.
func (s *SessionService) Activate(ctx context.Context, sessionID, code string) (*ActivatedSession, error) {
	var activated *ActivatedSession

	err := s.authRequests.Consume(ctx, sessionID, code, func(ctx context.Context, tx dbx.DBTX, req *models.AuthRequest) error {
		repo := s.repomanager.Accounts(tx)

		account, err := s.accounts.getOrCreate(ctx, repo, req.Email)
		if err != nil {
			return err
		}

		session := req.Session.Clone()
		session.Active = true

		token, err := auth.GenerateToken(account.Email, session.ID, s.jwtSecret, s.tokenValidity)
		if err != nil {
			return fmt.Errorf("issue session token: %w", err)
		}

		account.AddSession(session)
		account.UpdatedAt = s.now()
		if err := repo.Save(ctx, account); err != nil {
			return fmt.Errorf("save account: %w", err)
		}

		activated = &ActivatedSession{Session: session, Token: token}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "session activated", "email", activated.Session.Email, "session_id", activated.Session.ID)

	return activated, nil
}

// Revoke removes sessionID from the caller's account. Unknown ids are
// ignored and nothing is written.
func (s *SessionService) Revoke(ctx context.Context, sessionID string) error {
	rc, err := s.RequireSession(ctx)
	if err != nil {
		return err
	}

	account := rc.Account()
	if !account.RemoveSession(sessionID) {
		return nil
	}
	account.UpdatedAt = s.now()

	if err := s.repomanager.Accounts(s.db).Save(ctx, account); err != nil {
		return fmt.Errorf("save account: %w", err)
	}

	s.logger.Info(ctx, "session revoked", "email", account.Email, "session_id", sessionID)
	return nil
}

// RequireSession returns the authenticated identity of ctx or an
// InvalidSession error.
func (s *SessionService) RequireSession(ctx context.Context) (RequestContext, error) {
	return requireSession(ctx)
}

// Authenticate resolves a session token to the caller's identity. The
// session must still be an active member of the account.
func (s *SessionService) Authenticate(ctx context.Context, token string) (RequestContext, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return RequestContext{}, &common.Error{Code: common.CodeInvalidSession, Message: "invalid session", Cause: err}
	}

	account, err := s.repomanager.Accounts(s.db).Get(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return RequestContext{}, common.InvalidSession()
		}
		return RequestContext{}, fmt.Errorf("load account: %w", err)
	}

	session, ok := account.FindSession(claims.SessionID)
	if !ok || !session.Active {
		return RequestContext{}, common.InvalidSession()
	}

	return NewRequestContext(account, session), nil
}
