package repository

import (
	"context"
	"errors"
	"strings"

	"psicoagenda/internal/domain/entity"
	domainRepo "psicoagenda/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// buildFilterQuery applies the shared predicate used by Search and Count:
// tenant scope always ANDed, then optional search (OR across name/email/phone,
// case-insensitive) and optional status.
func buildFilterQuery(db *gorm.DB, filter *entity.PatientFilter) *gorm.DB {
	query := db.Model(&entity.Patient{}).Where("tenant_id = ?", filter.TenantID)

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?",
			term, term, term,
		)
	}

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}

	return query
}

// orderClause maps the normalized sort field onto a SQL order expression.
// Filter normalization whitelists the values, so string concatenation is safe.
func orderClause(filter *entity.PatientFilter) string {
	column := filter.SortBy
	if column == entity.PatientSortName {
		column = "LOWER(name)"
	}
	return column + " " + filter.SortOrder
}

func (r *patientRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := buildFilterQuery(db.WithContext(ctx), filter).
		Order(orderClause(filter)).
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) (int64, error) {
	var total int64
	err := buildFilterQuery(db.WithContext(ctx), filter).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit("Consultations").Save(patient).Error
}
