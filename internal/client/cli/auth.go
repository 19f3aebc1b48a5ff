package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaultkeeper/internal/client/client"
	"github.com/dmitrijs2005/vaultkeeper/internal/common"
)

// getSimpleText and getCode are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getCode = GetCode

// Login asks for an email (unless given), has the server mail a code, then
// redeems the code and saves the resulting session to the token file.
func (a *App) Login(ctx context.Context, email string) error {
	var err error
	if email == "" {
		email, err = getSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}
	}

	var sessionID string
	err = a.call(ctx, func(ctx context.Context) error {
		s, err := a.api.StartSession(ctx, email)
		if err != nil {
			return err
		}
		sessionID = s.ID
		return nil
	})
	if err != nil {
		return err
	}
	a.printf("A login code was sent to %s\n", email)

	code, err := getCode(a.reader, a.out)
	if err != nil {
		return err
	}

	// a new pending session must not carry the old token
	a.api.SetToken("")

	err = a.call(ctx, func(ctx context.Context) error {
		s, err := a.api.ActivateSession(ctx, sessionID, code)
		if err != nil {
			return err
		}
		email = s.Email
		return nil
	})
	if err != nil {
		if a.session != nil {
			a.api.SetToken(a.session.Token)
		}
		return err
	}

	s := &savedSession{ID: sessionID, Email: email, Token: a.api.Token()}
	if err := saveSession(a.config.TokenFile, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.session = s

	a.printf("Logged in as %s\n", email)
	return nil
}

// Logout revokes the current session on the server and forgets it locally.
// A session the server no longer accepts is forgotten all the same.
func (a *App) Logout(ctx context.Context) error {
	if a.session == nil {
		return client.ErrNotLoggedIn
	}

	err := a.call(ctx, func(ctx context.Context) error {
		return a.api.RevokeSession(ctx, a.session.ID)
	})
	if err != nil && !errors.Is(err, common.ErrInvalidSession) {
		return err
	}

	a.api.SetToken("")
	a.session = nil
	if err := clearSession(a.config.TokenFile); err != nil {
		return err
	}

	a.println("Logged out")
	return nil
}

// Revoke removes one of the account's sessions by id.
func (a *App) Revoke(ctx context.Context, sessionID string) error {
	if a.session == nil {
		return client.ErrNotLoggedIn
	}
	if sessionID == a.session.ID {
		return a.Logout(ctx)
	}

	if err := a.call(ctx, func(ctx context.Context) error {
		return a.api.RevokeSession(ctx, sessionID)
	}); err != nil {
		return err
	}

	a.printf("Session %s revoked\n", sessionID)
	return nil
}
