package repository

import (
	"context"

	"psicoagenda/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	// FindByID resolves a patient by id alone, without a tenant predicate.
	// Callers authorize against the acting tenant before any mutation.
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	// Search returns one page of patients matching the filter. Count shares
	// the same predicate so pagination metadata stays correct on short pages.
	Search(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, error)
	Count(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) (int64, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
}
