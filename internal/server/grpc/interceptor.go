package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/rpc"
	"github.com/CODE-SECX/English-Sikho/internal/server/auth"
)

type ctxKey string

const roleKey ctxKey = "role"

// RoleFromContext returns the role of the verified API key, if any.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

// apiKeyInterceptor requires a valid API key on every call except Ping.
// Export additionally needs the service role.
func (s *GRPCServer) apiKeyInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if info.FullMethod == rpc.FullMethod(rpc.MethodPing) {
		return handler(ctx, req)
	}

	var apiKey string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.APIKeyHeaderName); len(values) > 0 {
			apiKey = values[0]
		}
	}
	if apiKey == "" {
		return nil, status.Error(codes.Unauthenticated, "missing api key")
	}

	role, err := auth.RoleFromAPIKey(apiKey, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid api key")
	}

	if info.FullMethod == rpc.FullMethod(rpc.MethodExport) && role != common.RoleService {
		return nil, status.Error(codes.PermissionDenied, "export requires the service role")
	}

	return handler(context.WithValue(ctx, roleKey, role), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
