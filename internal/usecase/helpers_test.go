package usecase

import (
	"context"
	"io"
	"testing"

	"psicoagenda/internal/domain/auth"
	"psicoagenda/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Tenant{},
		&entity.User{},
		&entity.Patient{},
		&entity.Consultation{},
		&entity.UserSettings{},
		&entity.WorkingHour{},
		&entity.AuditLog{},
	))

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTenantContext(tenantID, userID uuid.UUID) context.Context {
	return auth.WithTenantContext(context.Background(), auth.TenantContext{
		AuthContext: auth.AuthContext{UserID: userID},
		TenantID:    tenantID,
		Tenant:      auth.TenantRef{ID: tenantID},
	})
}

func createTestTenant(t *testing.T, db *gorm.DB, ownerID uuid.UUID) *entity.Tenant {
	t.Helper()

	tenant := &entity.Tenant{
		Name:        "Consultório Teste",
		Plan:        entity.PlanFree,
		OwnerUserID: ownerID,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	active := true
	user := &entity.User{
		Email:    email,
		Password: "hashed",
		FullName: "Maria Souza",
		IsActive: &active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// fakeAuditService satisfies service.AuditService without touching the store.
type fakeAuditService struct {
	actions []string
}

func (s *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, tenantID *uuid.UUID, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, tenantID *uuid.UUID, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *fakeAuditService) Recent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]entity.AuditLog, error) {
	return nil, nil
}

// fakeViewCache always misses and records invalidations.
type fakeViewCache struct {
	sets          int
	invalidations int
}

func (c *fakeViewCache) GetPatientList(ctx context.Context, tenantID uuid.UUID, filter *entity.PatientFilter) ([]byte, bool) {
	return nil, false
}

func (c *fakeViewCache) SetPatientList(ctx context.Context, tenantID uuid.UUID, filter *entity.PatientFilter, payload []byte) {
	c.sets++
}

func (c *fakeViewCache) InvalidatePatientViews(ctx context.Context, tenantID, patientID uuid.UUID) {
	c.invalidations++
}
