package service

import (
	"context"

	"psicoagenda/internal/domain/entity"
	"psicoagenda/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records who changed what. Entries are written inside the
// caller's transaction so the trail commits or rolls back with the action.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, tenantID *uuid.UUID, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, tenantID *uuid.UUID, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	Recent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]entity.AuditLog, error)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, tenantID *uuid.UUID, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	}

	auditLog := &entity.AuditLog{
		TenantID: tenantID,
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

// Recent returns the tenant's latest trail entries, newest first.
func (s *auditService) Recent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]entity.AuditLog, error) {
	logs, err := s.auditRepo.FindByTenantID(ctx, db, tenantID, limit)
	if err != nil {
		s.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}
	return logs, nil
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, tenantID *uuid.UUID, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	}

	auditLog := &entity.AuditLog{
		TenantID: tenantID,
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
