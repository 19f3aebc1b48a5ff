package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain is the ErrorInfo domain of VaultKeeper errors.
const ErrorDomain = "vaultkeeper"

func grpcCode(c common.Code) codes.Code {
	switch c {
	case common.CodeBadRequest:
		return codes.InvalidArgument
	case common.CodeInvalidSession:
		return codes.Unauthenticated
	case common.CodeNotFound:
		return codes.NotFound
	default:
		return codes.Internal
	}
}

// toStatus converts a service error to a gRPC status. Domain errors keep
// their message and carry their code as ErrorInfo.Reason; anything else
// becomes a bare Internal.
func toStatus(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}

	var e *common.Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, "internal error")
	}

	st := status.New(grpcCode(e.Code), e.Error())
	detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: string(e.Code),
		Domain: ErrorDomain,
	})
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}

func (s *GRPCServer) statusError(ctx context.Context, method string, err error) error {
	var e *common.Error
	if errors.As(err, &e) {
		s.logger.Info(ctx, method+" rejected", "reason", string(e.Code), "error", err)
	} else {
		s.logger.Error(ctx, method+" failed", "error", err)
	}
	return toStatus(err)
}
