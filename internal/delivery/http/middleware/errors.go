package middleware

import "errors"

var (
	// ErrTenantNotProvisioned: the authenticated user has no tenant yet.
	// The provisioning action is the sanctioned remedy.
	ErrTenantNotProvisioned = errors.New("no tenant provisioned for user")

	// ErrTenantMissing: a resolved tenant id points at no tenant row.
	ErrTenantMissing = errors.New("tenant record not found")
)
