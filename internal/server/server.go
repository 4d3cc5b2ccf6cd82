// Package server implements the gRPC API surface over the service and
// repository layers.
package server

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ezbooks/ezbooks/internal/common"
)

// authUserID pulls the authenticated user out of the request context. The
// auth interceptor guarantees it is set on non-public methods.
func authUserID(ctx context.Context) (uuid.UUID, error) {
	raw := common.UserIDFromContext(ctx)
	if raw == "" {
		return uuid.Nil, status.Error(codes.Unauthenticated, "no authenticated user")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.Unauthenticated, "invalid user id in token")
	}
	return id, nil
}

// optionalString maps an empty proto field to nil.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optionalUUID parses an optional proto UUID field.
func optionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
