package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	authContextKey   contextKey = "auth_context"
	tenantContextKey contextKey = "tenant_context"
)

// AuthContext is the statically-typed context value for the authenticated
// tier: identity is established, tenant scope is not yet.
type AuthContext struct {
	UserID   uuid.UUID
	Email    string
	TenantID *uuid.UUID // tenant id cached in the session claims, may be stale or nil
	TokenID  string
}

// TenantContext is the tenant-scoped tier: identity plus a resolved tenant.
// Constructed only by the tenant middleware; tenant-scoped actions fail
// closed when it is absent.
type TenantContext struct {
	AuthContext
	TenantID uuid.UUID
	Tenant   TenantRef
}

// TenantRef is the subset of the tenant row actions need.
type TenantRef struct {
	ID   uuid.UUID
	Name string
	Plan string
}

// WithAuthContext returns a derived context carrying the authenticated tier.
func WithAuthContext(ctx context.Context, authCtx AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, authCtx)
}

// GetAuthContext extracts the authenticated-tier context value.
func GetAuthContext(ctx context.Context) (AuthContext, bool) {
	authCtx, ok := ctx.Value(authContextKey).(AuthContext)
	return authCtx, ok
}

// WithTenantContext returns a derived context carrying the tenant-scoped tier.
func WithTenantContext(ctx context.Context, tenantCtx TenantContext) context.Context {
	return context.WithValue(ctx, tenantContextKey, tenantCtx)
}

// GetTenantContext extracts the tenant-scoped tier context value.
func GetTenantContext(ctx context.Context) (TenantContext, bool) {
	tenantCtx, ok := ctx.Value(tenantContextKey).(TenantContext)
	return tenantCtx, ok
}
