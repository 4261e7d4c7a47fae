package repository

import (
	"context"

	"psicoagenda/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindByTenantID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]entity.AuditLog, error)
}
