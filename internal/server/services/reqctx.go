package services

import (
	"context"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// RequestContext is the authenticated identity of a request: the caller's
// account and the session the request was made with. It cannot be changed
// after construction; accessors hand out copies.
type RequestContext struct {
	account *models.Account
	session models.Session
}

func NewRequestContext(account *models.Account, session models.Session) RequestContext {
	return RequestContext{account: account.Clone(), session: session.Clone()}
}

func (r RequestContext) Account() *models.Account {
	if r.account == nil {
		return nil
	}
	return r.account.Clone()
}

func (r RequestContext) Session() models.Session {
	return r.session.Clone()
}

func (r RequestContext) Email() string {
	if r.account == nil {
		return ""
	}
	return r.account.Email
}

type requestContextKey struct{}

// WithRequestContext attaches rc to ctx.
func WithRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// RequestContextFrom returns the RequestContext attached to ctx, if any.
func RequestContextFrom(ctx context.Context) (RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey{}).(RequestContext)
	if !ok || rc.account == nil {
		return RequestContext{}, false
	}
	return rc, true
}

func requireSession(ctx context.Context) (RequestContext, error) {
	rc, ok := RequestContextFrom(ctx)
	if !ok {
		return RequestContext{}, common.InvalidSession()
	}
	return rc, nil
}
