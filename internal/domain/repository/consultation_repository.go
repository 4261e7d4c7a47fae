package repository

import (
	"context"

	"psicoagenda/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Consultation, error)
	// FindAllByTenant returns the tenant's consultations with the patient
	// association loaded when it still exists.
	FindAllByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]entity.Consultation, error)
	Update(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error
}
