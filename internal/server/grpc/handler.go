package grpc

import (
	"context"

	"github.com/dmitrijs2005/vaultkeeper/internal/api"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/protobuf/types/known/emptypb"
)

func toAPISession(s models.Session) api.Session {
	return api.Session{
		ID:       s.ID,
		Email:    s.Email,
		Active:   s.Active,
		Created:  s.CreatedAt,
		Metadata: s.Metadata,
	}
}

func toAPIAccount(a *models.Account) api.Account {
	sessions := make([]api.Session, 0, len(a.Sessions))
	for _, s := range a.Sessions {
		sessions = append(sessions, toAPISession(s))
	}
	return api.Account{Email: a.Email, Sessions: sessions, MainStore: a.MainStore}
}

// sessionMetadata records where a login was started from.
func sessionMetadata(ctx context.Context) map[string]string {
	meta := map[string]string{}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ua := md.Get("user-agent"); len(ua) > 0 {
			meta[models.MetadataUserAgent] = ua[0]
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		meta[models.MetadataPeer] = p.Addr.String()
	}
	return meta
}

func (s *GRPCServer) StartSession(ctx context.Context, req *api.StartSessionRequest) (*api.SessionResponse, error) {
	session, err := s.authRequests.Start(ctx, req.Email, sessionMetadata(ctx))
	if err != nil {
		return nil, s.statusError(ctx, "StartSession", err)
	}

	return &api.SessionResponse{Session: toAPISession(*session)}, nil
}

func (s *GRPCServer) ActivateSession(ctx context.Context, req *api.ActivateSessionRequest) (*api.ActivateSessionResponse, error) {
	activated, err := s.sessions.Activate(ctx, req.ID, req.Code)
	if err != nil {
		return nil, s.statusError(ctx, "ActivateSession", err)
	}

	return &api.ActivateSessionResponse{Session: toAPISession(activated.Session), Token: activated.Token}, nil
}

func (s *GRPCServer) RevokeSession(ctx context.Context, req *api.RevokeSessionRequest) (*emptypb.Empty, error) {
	if err := s.sessions.Revoke(ctx, req.ID); err != nil {
		return nil, s.statusError(ctx, "RevokeSession", err)
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetAccount(ctx context.Context, _ *emptypb.Empty) (*api.AccountResponse, error) {
	account, err := s.accounts.Get(ctx)
	if err != nil {
		return nil, s.statusError(ctx, "GetAccount", err)
	}

	return &api.AccountResponse{Account: toAPIAccount(account)}, nil
}

func (s *GRPCServer) GetStore(ctx context.Context, req *api.GetStoreRequest) (*api.StoreResponse, error) {
	store, err := s.stores.Get(ctx, req.ID)
	if err != nil {
		return nil, s.statusError(ctx, "GetStore", err)
	}

	return &api.StoreResponse{Store: store}, nil
}

func (s *GRPCServer) PutStore(ctx context.Context, req *api.PutStoreRequest) (*api.StoreResponse, error) {
	store, err := s.stores.Put(ctx, req.ID, req.Store)
	if err != nil {
		return nil, s.statusError(ctx, "PutStore", err)
	}

	return &api.StoreResponse{Store: store}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}
