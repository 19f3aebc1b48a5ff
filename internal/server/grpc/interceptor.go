package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func accessTokenFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AccessTokenHeaderName)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// accessTokenInterceptor attaches the caller's identity to the context when
// the request carries a valid session token. Requests without one pass
// through unchanged; operations that need a session reject them.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	token := accessTokenFromContext(ctx)
	if token == "" {
		return handler(ctx, req)
	}

	rc, err := s.sessions.Authenticate(ctx, token)
	switch {
	case err == nil:
		ctx = services.WithRequestContext(ctx, rc)
	case errors.Is(err, common.ErrInvalidSession):
		s.logger.Debug(ctx, "session token rejected", "method", info.FullMethod, "error", err)
	default:
		s.logger.Error(ctx, "authenticate", "method", info.FullMethod, "error", err)
		return nil, toStatus(err)
	}

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info(ctx, "request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
