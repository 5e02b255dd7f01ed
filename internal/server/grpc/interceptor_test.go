package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/rpc"
	"github.com/CODE-SECX/English-Sikho/internal/server/auth"
)

func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer(":0", logging.Nop{}, &fakeRecords{}, &fakeExports{}, secret)
}

func withKey(t *testing.T, role, secret string) context.Context {
	t.Helper()
	key, err := auth.GenerateAPIKey(role, []byte(secret), time.Hour)
	require.NoError(t, err)
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.APIKeyHeaderName, key))
}

func info(method string) *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: rpc.FullMethod(method)}
}

func TestAPIKeyInterceptor_PingIsOpen(t *testing.T) {
	s := newTestServer("secret")

	called := false
	h := func(ctx context.Context, req any) (any, error) {
		called = true
		return "ok", nil
	}

	resp, err := s.apiKeyInterceptor(context.Background(), nil, info(rpc.MethodPing), h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.True(t, called)
}

func TestAPIKeyInterceptor_MissingKey(t *testing.T) {
	s := newTestServer("secret")

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler must not be called")
		return nil, nil
	}

	_, err := s.apiKeyInterceptor(context.Background(), nil, info(rpc.MethodListNotes), h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("other", "x"))
	_, err = s.apiKeyInterceptor(ctx, nil, info(rpc.MethodListNotes), h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAPIKeyInterceptor_WrongSecret(t *testing.T) {
	s := newTestServer("secret")

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler must not be called")
		return nil, nil
	}

	_, err := s.apiKeyInterceptor(withKey(t, common.RoleAnon, "other"), nil, info(rpc.MethodListVocabulary), h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAPIKeyInterceptor_AnonKey(t *testing.T) {
	s := newTestServer("secret")

	var role string
	h := func(ctx context.Context, req any) (any, error) {
		role, _ = RoleFromContext(ctx)
		return "ok", nil
	}

	_, err := s.apiKeyInterceptor(withKey(t, common.RoleAnon, "secret"), nil, info(rpc.MethodCreateNote), h)
	require.NoError(t, err)
	assert.Equal(t, common.RoleAnon, role)
}

func TestAPIKeyInterceptor_ExportNeedsServiceRole(t *testing.T) {
	s := newTestServer("secret")

	h := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	_, err := s.apiKeyInterceptor(withKey(t, common.RoleAnon, "secret"), nil, info(rpc.MethodExport), h)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	resp, err := s.apiKeyInterceptor(withKey(t, common.RoleService, "secret"), nil, info(rpc.MethodExport), h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestRoleFromContext_Empty(t *testing.T) {
	_, ok := RoleFromContext(context.Background())
	assert.False(t, ok)
}
