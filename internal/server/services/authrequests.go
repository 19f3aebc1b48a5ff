package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/config"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/mail"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const (
	loginCodeSubject = "Your VaultKeeper Login Code"
	loginCodeBody    = "Here is your code: %s"
)

// ConsumeFunc runs inside the transaction that deletes a matched
// AuthRequest. Repositories obtained from tx take part in it.
type ConsumeFunc func(ctx context.Context, tx dbx.DBTX, req *models.AuthRequest) error

// AuthRequestService creates pending logins and redeems their codes.
type AuthRequestService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	mailer      mail.Sender
	logger      logging.Logger
	codeLength  int
	validity    time.Duration
	now         func() time.Time
}

func NewAuthRequestService(db *sql.DB, m repomanager.RepositoryManager, mailer mail.Sender, l logging.Logger, cfg *config.Config) *AuthRequestService {
	return &AuthRequestService{
		db:          db,
		repomanager: m,
		mailer:      mailer,
		logger:      l.With("module", "auth_requests"),
		codeLength:  cfg.CodeLength,
		validity:    cfg.AuthRequestValidityDuration,
		now:         time.Now,
	}
}

// Start records a pending login for email and mails its code. The returned
// session is inactive until the code is redeemed.
func (s *AuthRequestService) Start(ctx context.Context, email string, metadata map[string]string) (*models.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, common.BadRequest("No email provided!")
	}

	code, err := common.MakeRandDigits(s.codeLength)
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	now := s.now()
	req := &models.AuthRequest{
		Session: models.Session{
			ID:        uuid.NewString(),
			Email:     email,
			CreatedAt: now,
			Metadata:  metadata,
		},
		Email:     email,
		Code:      code,
		CreatedAt: now,
	}

	if err := s.repomanager.AuthRequests(s.db).Save(ctx, req); err != nil {
		return nil, fmt.Errorf("save auth request: %w", err)
	}

	// delivery failures are not reported to the caller
	if err := s.mailer.Send(ctx, email, loginCodeSubject, fmt.Sprintf(loginCodeBody, code)); err != nil {
		s.logger.Warn(ctx, "login code not delivered", "email", email, "session_id", req.Session.ID, "error", err)
	}

	s.logger.Info(ctx, "login started", "email", email, "session_id", req.Session.ID)

	session := req.Session.Clone()
	return &session, nil
}

// Consume redeems code for the pending login sessionID. On a match fn runs
// and the request is deleted in the same transaction; otherwise the request
// is left as it is and "Invalid code" is returned.
func (s *AuthRequestService) Consume(ctx context.Context, sessionID, code string, fn ConsumeFunc) error {
	if code == "" {
		return common.BadRequest("No code provided!")
	}

	req, err := s.repomanager.AuthRequests(s.db).Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.BadRequest("Invalid code")
		}
		return fmt.Errorf("load auth request: %w", err)
	}

	if req.Expired(s.now(), s.validity) {
		s.logger.Info(ctx, "login code expired", "session_id", sessionID)
		return common.BadRequest("Invalid code")
	}

	if subtle.ConstantTimeCompare([]byte(req.Code), []byte(code)) != 1 {
		s.logger.Info(ctx, "login code mismatch", "session_id", sessionID)
		return common.BadRequest("Invalid code")
	}

	return s.repomanager.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := fn(ctx, tx, req); err != nil {
			return err
		}
		if err := s.repomanager.AuthRequests(tx).Delete(ctx, sessionID); err != nil {
			return fmt.Errorf("delete auth request: %w", err)
		}
		return nil
	})
}
