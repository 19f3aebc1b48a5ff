package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotLoggedIn = errors.New("not logged in")
)

// mapError converts a gRPC error into the client's error values. Statuses
// that carry an ErrorInfo reason, or one of the codes the server uses for
// domain errors, become *common.Error.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code := reasonOf(st)
	if code == "" {
		switch st.Code() {
		case codes.InvalidArgument:
			code = common.CodeBadRequest
		case codes.Unauthenticated:
			code = common.CodeInvalidSession
		case codes.NotFound:
			code = common.CodeNotFound
		case codes.Unavailable, codes.DeadlineExceeded:
			return ErrUnavailable
		default:
			return fmt.Errorf("rpc error: %w", err)
		}
	}

	return &common.Error{Code: code, Message: st.Message(), Cause: err}
}

func reasonOf(st *status.Status) common.Code {
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.Reason != "" {
			return common.Code(info.Reason)
		}
	}
	return ""
}
