package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/ezbooks/ezbooks/internal/common"
)

// methods served without a token
var publicMethods = map[string]struct{}{
	"/grpc.health.v1.Health/Check":   {},
	"/grpc.health.v1.Health/Watch":   {},
	"/ezbooks.v1.AuthService/Login":  {},
	"/ezbooks.v1.AuthService/Signup": {},
}

// UnaryInterceptor validates the bearer token on incoming calls and stores
// the authenticated user ID on the context.
func UnaryInterceptor(cfg common.AuthConfig) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := publicMethods[info.FullMethod]; ok {
			return handler(ctx, req)
		}
		if strings.HasPrefix(info.FullMethod, "/grpc.reflection.") {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, common.UnauthenticatedError("missing metadata")
		}
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, common.UnauthenticatedError("authorization header required")
		}

		parts := strings.SplitN(values[0], " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return nil, common.UnauthenticatedError("invalid authorization header format")
		}

		claims, err := ParseToken(parts[1], cfg)
		if err != nil {
			return nil, common.UnauthenticatedError("invalid or expired token")
		}

		return handler(common.WithUserID(ctx, claims.UserID), req)
	}
}
