package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ProvisionTenantRequest struct {
	Name string `json:"name" validate:"omitempty,min=2,max=255"`
	Plan string `json:"plan" validate:"omitempty,oneof=free pro"`
}

// Response DTOs

type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

// ProvisionTenantResponse reports whether the call created a tenant or
// returned the existing one (idempotent no-op).
type ProvisionTenantResponse struct {
	Tenant  TenantResponse `json:"tenant"`
	Created bool           `json:"created"`
}
