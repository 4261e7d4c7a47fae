package repository

import (
	"context"
	"errors"

	"psicoagenda/internal/domain/entity"
	domainRepo "psicoagenda/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tenantRepository struct{}

func NewTenantRepository() domainRepo.TenantRepository {
	return &tenantRepository{}
}

func (r *tenantRepository) Create(ctx context.Context, db *gorm.DB, tenant *entity.Tenant) error {
	return db.WithContext(ctx).Create(tenant).Error
}

func (r *tenantRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Tenant, error) {
	var tenant entity.Tenant
	err := db.WithContext(ctx).Where("id = ?", id).First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepository) FindByOwnerUserID(ctx context.Context, db *gorm.DB, ownerUserID uuid.UUID) (*entity.Tenant, error) {
	var tenant entity.Tenant
	err := db.WithContext(ctx).Where("owner_user_id = ?", ownerUserID).First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}
