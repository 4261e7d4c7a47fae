package usecase

import (
	"testing"
	"time"

	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/entity"
	"psicoagenda/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newConsultationUsecase(t *testing.T, db *gorm.DB) ConsultationUsecase {
	t.Helper()
	return NewConsultationUsecase(db, newTestLogger(), repository.NewConsultationRepository(), repository.NewPatientRepository())
}

func TestConsultationCreate_DerivesTitle(t *testing.T) {
	db := newTestDB(t)
	uc := newConsultationUsecase(t, db)

	owner := createTestUser(t, db, "maria@example.com")
	tenant := createTestTenant(t, db, owner.ID)
	ctx := newTenantContext(tenant.ID, owner.ID)

	patient := &entity.Patient{TenantID: tenant.ID, Name: "Ana Silva", Status: entity.PatientStatusActive}
	require.NoError(t, db.Create(patient).Error)

	created, err := uc.Create(ctx, &dto.CreateConsultationRequest{
		PatientID:       patient.ID,
		Date:            "2026-03-10",
		Time:            "14:30",
		DurationMinutes: 50,
		Type:            "triagem",
		Modality:        entity.ModalityInPerson,
	})
	require.NoError(t, err)
	require.Equal(t, "Triagem - Ana Silva", created.Title)
	require.Equal(t, "Ana Silva", created.PatientName)
	require.Equal(t, string(entity.ConsultationStatusScheduled), created.Status)
	require.Equal(t, "2026-03-10", created.Date)
	require.Equal(t, created.StartsAt.Add(50*time.Minute), created.EndsAt)
}

func TestConsultationCreate_PatientMustBelongToTenant(t *testing.T) {
	db := newTestDB(t)
	uc := newConsultationUsecase(t, db)

	ownerA := createTestUser(t, db, "a@example.com")
	tenantA := createTestTenant(t, db, ownerA.ID)
	ownerB := createTestUser(t, db, "b@example.com")
	tenantB := createTestTenant(t, db, ownerB.ID)

	patient := &entity.Patient{TenantID: tenantA.ID, Name: "Ana Silva", Status: entity.PatientStatusActive}
	require.NoError(t, db.Create(patient).Error)

	req := &dto.CreateConsultationRequest{
		PatientID:       patient.ID,
		Date:            "2026-03-10",
		Time:            "14:30",
		DurationMinutes: 50,
		Type:            "sessao",
		Modality:        entity.ModalityOnline,
	}

	_, err := uc.Create(newTenantContext(tenantB.ID, ownerB.ID), req)
	require.ErrorIs(t, err, ErrAccessDenied)

	req.PatientID = uuid.New()
	_, err = uc.Create(newTenantContext(tenantA.ID, ownerA.ID), req)
	require.ErrorIs(t, err, ErrPatientNotFound)
}

func TestConsultationList_TenantScoped(t *testing.T) {
	db := newTestDB(t)
	uc := newConsultationUsecase(t, db)

	ownerA := createTestUser(t, db, "a@example.com")
	tenantA := createTestTenant(t, db, ownerA.ID)
	ownerB := createTestUser(t, db, "b@example.com")
	tenantB := createTestTenant(t, db, ownerB.ID)

	patientA := &entity.Patient{TenantID: tenantA.ID, Name: "Ana Silva", Status: entity.PatientStatusActive}
	require.NoError(t, db.Create(patientA).Error)
	patientB := &entity.Patient{TenantID: tenantB.ID, Name: "Bruno Costa", Status: entity.PatientStatusActive}
	require.NoError(t, db.Create(patientB).Error)

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&entity.Consultation{
		TenantID: tenantA.ID, PatientID: patientA.ID, Date: date, Time: "09:00",
		DurationMinutes: 50, Type: entity.ConsultationTypeSession, Modality: entity.ModalityInPerson,
		Status: entity.ConsultationStatusScheduled,
	}).Error)
	require.NoError(t, db.Create(&entity.Consultation{
		TenantID: tenantB.ID, PatientID: patientB.ID, Date: date, Time: "10:00",
		DurationMinutes: 50, Type: entity.ConsultationTypeSession, Modality: entity.ModalityInPerson,
		Status: entity.ConsultationStatusScheduled,
	}).Error)

	list, err := uc.List(newTenantContext(tenantA.ID, ownerA.ID))
	require.NoError(t, err)
	require.Len(t, list.Consultations, 1)
	require.Equal(t, "Sessão - Ana Silva", list.Consultations[0].Title)
}

func TestConsultationList_ToleratesMissingPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newConsultationUsecase(t, db)

	owner := createTestUser(t, db, "maria@example.com")
	tenant := createTestTenant(t, db, owner.ID)

	// Dangling patient reference: the row lists with an empty name segment
	require.NoError(t, db.Create(&entity.Consultation{
		TenantID: tenant.ID, PatientID: uuid.New(),
		Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Time: "09:00",
		DurationMinutes: 50, Type: entity.ConsultationTypeTriage, Modality: entity.ModalityInPerson,
		Status: entity.ConsultationStatusScheduled,
	}).Error)

	list, err := uc.List(newTenantContext(tenant.ID, owner.ID))
	require.NoError(t, err)
	require.Len(t, list.Consultations, 1)
	require.Equal(t, "", list.Consultations[0].PatientName)
	require.Equal(t, "Triagem - ", list.Consultations[0].Title)
}
