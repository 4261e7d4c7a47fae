package usecase

import (
	"context"
	"time"

	"psicoagenda/internal/converter"
	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/auth"
	"psicoagenda/internal/domain/entity"
	"psicoagenda/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ConsultationUsecase interface {
	// List returns the tenant's consultations with read-time derived fields
	// (title, start and end instants).
	List(ctx context.Context) (*dto.ConsultationListResponse, error)
	Create(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	patientRepo      repository.PatientRepository
	location         *time.Location
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	patientRepo repository.PatientRepository,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		consultationRepo: consultationRepo,
		patientRepo:      patientRepo,
		location:         time.Local,
	}
}

func (u *consultationUsecase) List(ctx context.Context) (*dto.ConsultationListResponse, error) {
	tenantCtx, ok := auth.GetTenantContext(ctx)
	if !ok {
		return nil, ErrTenantRequired
	}

	consultations, err := u.consultationRepo.FindAllByTenant(ctx, u.db, tenantCtx.TenantID)
	if err != nil {
		u.log.Warnf("Failed to list consultations: %+v", err)
		return nil, err
	}

	return converter.ConsultationsToListResponse(consultations, u.location), nil
}

func (u *consultationUsecase) Create(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	tenantCtx, ok := auth.GetTenantContext(ctx)
	if !ok {
		return nil, ErrTenantRequired
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// The referenced patient must belong to the acting tenant
	patient, err := u.patientRepo.FindByID(ctx, tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if patient.TenantID != tenantCtx.TenantID {
		return nil, ErrAccessDenied
	}

	consultation := &entity.Consultation{
		TenantID:        tenantCtx.TenantID,
		PatientID:       patient.ID,
		Date:            date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Type:            entity.ConsultationType(req.Type),
		Modality:        req.Modality,
		Value:           req.Value,
		Status:          entity.ConsultationStatusScheduled,
		Notes:           req.Notes,
	}

	if err := u.consultationRepo.Create(ctx, tx, consultation); err != nil {
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	consultation.Patient = patient
	return converter.ConsultationToResponse(consultation, u.location), nil
}
