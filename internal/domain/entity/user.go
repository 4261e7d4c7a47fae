package entity

import (
	"time"

	"github.com/google/uuid"

	"gorm.io/gorm"
)

// User represents the centralized authentication table. TenantID is nullable:
// it is set exactly once, either during registration or by the provisioning
// action on first authenticated use.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  *uuid.UUID `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"type:text;not null" json:"-"`
	FullName  string     `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive  *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
