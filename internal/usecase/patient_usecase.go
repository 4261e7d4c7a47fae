package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"psicoagenda/internal/converter"
	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/auth"
	"psicoagenda/internal/domain/entity"
	"psicoagenda/internal/domain/repository"
	"psicoagenda/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTenantRequired  = errors.New("tenant context required")
	ErrPatientNotFound = errors.New("patient not found")
	ErrAccessDenied    = errors.New("access denied")
)

type PatientUsecase interface {
	// List returns one page of the tenant's patients plus the total count
	// matching the same predicate. The returned filter is normalized
	// (defaults applied) so callers can build pagination metadata from it.
	List(ctx context.Context, req *dto.ListPatientsRequest) (*dto.PatientListResponse, int64, *entity.PatientFilter, error)
	Get(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	// Upsert inserts when the request carries no id, updates otherwise.
	Upsert(ctx context.Context, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error)
	// SetStatus archives (inactive) or reactivates (active) a patient.
	SetStatus(ctx context.Context, patientID uuid.UUID, status entity.PatientStatus) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	viewCache    service.ViewCache
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	viewCache service.ViewCache,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
		viewCache:    viewCache,
	}
}

// cachedPatientPage is the serialized form of one cached list page.
type cachedPatientPage struct {
	Patients *dto.PatientListResponse `json:"patients"`
	Total    int64                    `json:"total"`
}

func (u *patientUsecase) List(ctx context.Context, req *dto.ListPatientsRequest) (*dto.PatientListResponse, int64, *entity.PatientFilter, error) {
	tenantCtx, ok := auth.GetTenantContext(ctx)
	if !ok {
		return nil, 0, nil, ErrTenantRequired
	}

	filter := &entity.PatientFilter{
		TenantID:  tenantCtx.TenantID,
		Search:    req.Search,
		Status:    req.Status,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		Limit:     req.Limit,
	}
	filter.Normalize()

	if payload, hit := u.viewCache.GetPatientList(ctx, tenantCtx.TenantID, filter); hit {
		var page cachedPatientPage
		if err := json.Unmarshal(payload, &page); err == nil {
			return page.Patients, page.Total, filter, nil
		}
		u.log.Warn("Discarding undecodable patient list cache entry")
	}

	// Count shares the predicate with the page query: totals stay correct
	// even when the returned page is short.
	total, err := u.patientRepo.Count(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, 0, nil, err
	}

	patients, err := u.patientRepo.Search(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, 0, nil, err
	}

	list := converter.PatientsToListResponse(patients)

	if payload, err := json.Marshal(cachedPatientPage{Patients: list, Total: total}); err == nil {
		u.viewCache.SetPatientList(ctx, tenantCtx.TenantID, filter, payload)
	}

	return list, total, filter, nil
}

func (u *patientUsecase) Get(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	tenantCtx, ok := auth.GetTenantContext(ctx)
	if !ok {
		return nil, ErrTenantRequired
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
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

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Upsert(ctx context.Context, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error) {
	tenantCtx, ok := auth.GetTenantContext(ctx)
	if !ok {
		return nil, ErrTenantRequired
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		birthDate = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var patient *entity.Patient
	var oldValue *dto.PatientResponse
	action := entity.AuditActionPatientCreate

	if req.ID == nil {
		patient = &entity.Patient{
			Status: entity.PatientStatusActive,
		}
	} else {
		// Read, then authorize, then write: the tenant check happens before
		// the mutating query, never inside its WHERE clause.
		existing, err := u.patientRepo.FindByID(ctx, tx, *req.ID)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return nil, err
		}
		if existing == nil {
			return nil, ErrPatientNotFound
		}
		if existing.TenantID != tenantCtx.TenantID {
			return nil, ErrAccessDenied
		}
		patient = existing
		oldValue = converter.PatientToResponse(existing)
		action = entity.AuditActionPatientUpdate
	}

	// tenant_id always comes from the acting context, never from the client
	patient.TenantID = tenantCtx.TenantID
	patient.Name = req.Name
	patient.BirthDate = birthDate
	patient.Email = req.Email
	patient.Phone = req.Phone
	patient.CPF = req.CPF
	patient.ResponsibleName = req.ResponsibleName
	patient.ResponsibleCPF = req.ResponsibleCPF
	patient.Gender = req.Gender
	patient.Street = req.Street
	patient.Number = req.Number
	patient.Complement = req.Complement
	patient.Neighborhood = req.Neighborhood
	patient.City = req.City
	patient.State = req.State
	patient.ZipCode = req.ZipCode
	patient.Notes = req.Notes

	if req.ID == nil {
		if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
			u.log.Warnf("Failed to create patient: %+v", err)
			return nil, err
		}
		if err := u.auditService.LogCreate(ctx, tx, &tenantCtx.TenantID, &tenantCtx.UserID, action, "patient", patient.ID.String(), converter.PatientToResponse(patient)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	} else {
		if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
			u.log.Warnf("Failed to update patient: %+v", err)
			return nil, err
		}
		if err := u.auditService.LogUpdate(ctx, tx, &tenantCtx.TenantID, &tenantCtx.UserID, action, "patient", patient.ID.String(), oldValue, converter.PatientToResponse(patient)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.viewCache.InvalidatePatientViews(ctx, tenantCtx.TenantID, patient.ID)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) SetStatus(ctx context.Context, patientID uuid.UUID, status entity.PatientStatus) (*dto.PatientResponse, error) {
	tenantCtx, ok := auth.GetTenantContext(ctx)
	if !ok {
		return nil, ErrTenantRequired
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
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

	oldValue := converter.PatientToResponse(patient)

	patient.Status = status

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient status: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &tenantCtx.TenantID, &tenantCtx.UserID, entity.AuditActionPatientStatus, "patient", patient.ID.String(), oldValue, converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.viewCache.InvalidatePatientViews(ctx, tenantCtx.TenantID, patient.ID)

	return converter.PatientToResponse(patient), nil
}
