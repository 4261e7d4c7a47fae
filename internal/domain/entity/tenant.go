package entity

import (
	"time"

	"github.com/google/uuid"

	"gorm.io/gorm"
)

// Plan constants
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Tenant is the isolation boundary grouping one practice's users and data.
// OwnerUserID carries a unique index: the store, not the application code,
// guarantees at most one tenant per provisioning user under concurrent
// first-login.
type Tenant struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Plan        string    `gorm:"type:varchar(50);not null;default:'free'" json:"plan"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_tenants_owner_user;not null" json:"owner_user_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
