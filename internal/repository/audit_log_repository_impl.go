package repository

import (
	"context"

	"psicoagenda/internal/domain/entity"
	domainRepo "psicoagenda/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *auditLogRepository) FindByTenantID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]entity.AuditLog, error) {
	if limit < 1 {
		limit = 50
	}
	var logs []entity.AuditLog
	err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
