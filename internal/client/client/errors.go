package client

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/CODE-SECX/English-Sikho/internal/common"
)

// mapError turns a gRPC status into a common sentinel wrapped with op.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%s: %w: %s", op, common.ErrorValidation, st.Message())
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%s: %w", op, common.ErrorUnauthorized)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%s: %w", op, common.ErrorUnavailable)
	case codes.NotFound:
		return fmt.Errorf("%s: %w", op, common.ErrorNotFound)
	default:
		return fmt.Errorf("%s: rpc error: %w", op, err)
	}
}
