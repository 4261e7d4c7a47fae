package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"psicoagenda/internal/domain/auth"
	"psicoagenda/internal/domain/entity"
	"psicoagenda/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTenantMiddleware(t *testing.T) (*TenantMiddleware, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Tenant{}, &entity.User{}))

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewTenantMiddleware(db, log, repository.NewUserRepository(), repository.NewTenantRepository()), db
}

func seedUserWithTenant(t *testing.T, db *gorm.DB) (*entity.User, *entity.Tenant) {
	t.Helper()

	active := true
	user := &entity.User{Email: "maria@example.com", Password: "hashed", FullName: "Maria Souza", IsActive: &active}
	require.NoError(t, db.Create(user).Error)

	tenant := &entity.Tenant{Name: "Consultório Teste", Plan: entity.PlanFree, OwnerUserID: user.ID}
	require.NoError(t, db.Create(tenant).Error)

	user.TenantID = &tenant.ID
	require.NoError(t, db.Save(user).Error)

	return user, tenant
}

func TestResolve_FromSessionClaims(t *testing.T) {
	m, db := newTenantMiddleware(t)
	user, tenant := seedUserWithTenant(t, db)

	tenantCtx, err := m.Resolve(context.Background(), auth.AuthContext{
		UserID:   user.ID,
		TenantID: &tenant.ID,
	})
	require.NoError(t, err)
	require.Equal(t, tenant.ID, tenantCtx.TenantID)
	require.Equal(t, "Consultório Teste", tenantCtx.Tenant.Name)
	require.Equal(t, entity.PlanFree, tenantCtx.Tenant.Plan)
}

func TestResolve_StaleSessionFallsBackToUserRow(t *testing.T) {
	m, db := newTenantMiddleware(t)
	user, tenant := seedUserWithTenant(t, db)

	// Session issued before provisioning carries no tenant id
	tenantCtx, err := m.Resolve(context.Background(), auth.AuthContext{UserID: user.ID})
	require.NoError(t, err)
	require.Equal(t, tenant.ID, tenantCtx.TenantID)
}

func TestResolve_NotProvisioned(t *testing.T) {
	m, db := newTenantMiddleware(t)

	active := true
	user := &entity.User{Email: "novo@example.com", Password: "hashed", FullName: "Novo Usuário", IsActive: &active}
	require.NoError(t, db.Create(user).Error)

	_, err := m.Resolve(context.Background(), auth.AuthContext{UserID: user.ID})
	require.ErrorIs(t, err, ErrTenantNotProvisioned)
}

func TestResolve_UnknownUser(t *testing.T) {
	m, _ := newTenantMiddleware(t)

	_, err := m.Resolve(context.Background(), auth.AuthContext{UserID: uuid.New()})
	require.ErrorIs(t, err, ErrTenantNotProvisioned)
}

func TestResolve_DanglingTenantReference(t *testing.T) {
	m, _ := newTenantMiddleware(t)

	missing := uuid.New()
	_, err := m.Resolve(context.Background(), auth.AuthContext{UserID: uuid.New(), TenantID: &missing})
	require.ErrorIs(t, err, ErrTenantMissing)
}

func TestResolveTenant_HTTPStatuses(t *testing.T) {
	m, db := newTenantMiddleware(t)
	user, _ := seedUserWithTenant(t, db)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantCtx, ok := auth.GetTenantContext(r.Context())
		require.True(t, ok)
		require.NotEqual(t, uuid.Nil, tenantCtx.TenantID)
		w.WriteHeader(http.StatusOK)
	})

	// No auth context at all
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	rec := httptest.NewRecorder()
	m.ResolveTenant(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated but not provisioned
	active := true
	unprovisioned := &entity.User{Email: "novo@example.com", Password: "hashed", FullName: "Novo Usuário", IsActive: &active}
	require.NoError(t, db.Create(unprovisioned).Error)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req = req.WithContext(auth.WithAuthContext(req.Context(), auth.AuthContext{UserID: unprovisioned.ID}))
	rec = httptest.NewRecorder()
	m.ResolveTenant(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Authenticated and provisioned
	req = httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req = req.WithContext(auth.WithAuthContext(req.Context(), auth.AuthContext{UserID: user.ID}))
	rec = httptest.NewRecorder()
	m.ResolveTenant(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
