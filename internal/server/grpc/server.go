package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/dmitrijs2005/vaultkeeper/internal/api"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AuthRequestStarter begins a passwordless login.
type AuthRequestStarter interface {
	Start(ctx context.Context, email string, metadata map[string]string) (*models.Session, error)
}

// SessionManager activates, revokes and authenticates sessions.
type SessionManager interface {
	Activate(ctx context.Context, sessionID, code string) (*services.ActivatedSession, error)
	Revoke(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, token string) (services.RequestContext, error)
}

// AccountReader returns the caller's account.
type AccountReader interface {
	Get(ctx context.Context) (*models.Account, error)
}

// StoreManager reads and writes the caller's stores.
type StoreManager interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, id string, body []byte) ([]byte, error)
}

type GRPCServer struct {
	address      string
	logger       logging.Logger
	authRequests AuthRequestStarter
	sessions     SessionManager
	accounts     AccountReader
	stores       StoreManager
}

var _ api.VaultKeeperServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, ar AuthRequestStarter, ss SessionManager, as AccountReader, st StoreManager) *GRPCServer {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		authRequests: ar,
		sessions:     ss,
		accounts:     as,
		stores:       st,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)

	api.RegisterVaultKeeperServer(srv, s)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())
		serveErr <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping gRPC server...")
		healthServer.Shutdown()
		srv.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}
