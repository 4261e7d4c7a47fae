package repository

import (
	"context"
	"errors"

	"psicoagenda/internal/domain/entity"
	domainRepo "psicoagenda/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error {
	return db.WithContext(ctx).Create(consultation).Error
}

func (r *consultationRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.WithContext(ctx).Preload("Patient").Where("id = ?", id).First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindAllByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := db.WithContext(ctx).
		Preload("Patient").
		Where("tenant_id = ?", tenantID).
		Order("date ASC, time ASC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) Update(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error {
	return db.WithContext(ctx).Omit("Patient").Save(consultation).Error
}
