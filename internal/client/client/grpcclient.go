package client

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/vaultkeeper/internal/api"
	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.VaultKeeperClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.Token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewVaultKeeperClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewVaultKeeperClient(conn)
	return nil
}

// SetToken sets the session token sent with every call.
func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// StartSession asks the server to mail a login code to email and returns
// the pending session.
func (s *GRPCClient) StartSession(ctx context.Context, email string) (*api.Session, error) {
	resp, err := s.client.StartSession(ctx, &api.StartSessionRequest{Email: email})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Session, nil
}

// ActivateSession redeems code and keeps the returned token for later calls.
func (s *GRPCClient) ActivateSession(ctx context.Context, sessionID, code string) (*api.Session, error) {
	resp, err := s.client.ActivateSession(ctx, &api.ActivateSessionRequest{ID: sessionID, Code: code})
	if err != nil {
		return nil, mapError(err)
	}
	s.SetToken(resp.Token)
	return &resp.Session, nil
}

func (s *GRPCClient) RevokeSession(ctx context.Context, sessionID string) error {
	if _, err := s.client.RevokeSession(ctx, &api.RevokeSessionRequest{ID: sessionID}); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetAccount(ctx context.Context) (*api.Account, error) {
	resp, err := s.client.GetAccount(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Account, nil
}

// GetStore returns the serialized store id; "" and "main" mean the main
// store.
func (s *GRPCClient) GetStore(ctx context.Context, id string) (json.RawMessage, error) {
	resp, err := s.client.GetStore(ctx, &api.GetStoreRequest{ID: id})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Store, nil
}

func (s *GRPCClient) PutStore(ctx context.Context, id string, store json.RawMessage) (json.RawMessage, error) {
	resp, err := s.client.PutStore(ctx, &api.PutStoreRequest{ID: id, Store: store})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Store, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}
