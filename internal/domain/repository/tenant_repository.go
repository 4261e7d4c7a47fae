package repository

import (
	"context"

	"psicoagenda/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantRepository interface {
	Create(ctx context.Context, db *gorm.DB, tenant *entity.Tenant) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Tenant, error)
	FindByOwnerUserID(ctx context.Context, db *gorm.DB, ownerUserID uuid.UUID) (*entity.Tenant, error)
}
