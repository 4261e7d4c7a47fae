package middleware

import (
	"context"
	"net/http"

	"psicoagenda/internal/domain/auth"
	"psicoagenda/internal/domain/repository"
	"psicoagenda/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TenantMiddleware upgrades an authenticated request to the tenant-scoped
// tier. It never creates a tenant: provisioning is a separate, explicit,
// idempotent action, and a missing tenant here is an error condition.
type TenantMiddleware struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
}

func NewTenantMiddleware(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, tenantRepo repository.TenantRepository) *TenantMiddleware {
	return &TenantMiddleware{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
	}
}

func (m *TenantMiddleware) ResolveTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCtx, ok := auth.GetAuthContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Authentication required")
			return
		}

		tenantCtx, err := m.Resolve(r.Context(), authCtx)
		if err != nil {
			switch err {
			case ErrTenantNotProvisioned:
				response.Forbidden(w, "No tenant provisioned for this account")
			case ErrTenantMissing:
				// A tenant id points at no tenant row. Data integrity
				// problem, not something the client can remedy.
				m.log.Errorf("Tenant referenced by user %s does not exist", authCtx.UserID)
				response.InternalServerError(w, "Failed to resolve tenant")
			default:
				m.log.Warnf("Failed to resolve tenant: %+v", err)
				response.InternalServerError(w, "Failed to resolve tenant")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithTenantContext(r.Context(), tenantCtx)))
	})
}

// Resolve derives the tenant-scoped context for an authenticated user.
// Resolution order: tenant id cached in the session claims, then the
// persisted user row (session data may be stale right after provisioning).
func (m *TenantMiddleware) Resolve(ctx context.Context, authCtx auth.AuthContext) (auth.TenantContext, error) {
	tenantID := authCtx.TenantID

	if tenantID == nil {
		user, err := m.userRepo.FindByID(ctx, m.db, authCtx.UserID)
		if err != nil {
			return auth.TenantContext{}, err
		}
		if user == nil {
			return auth.TenantContext{}, ErrTenantNotProvisioned
		}
		tenantID = user.TenantID
	}

	if tenantID == nil {
		return auth.TenantContext{}, ErrTenantNotProvisioned
	}

	tenant, err := m.tenantRepo.FindByID(ctx, m.db, *tenantID)
	if err != nil {
		return auth.TenantContext{}, err
	}
	if tenant == nil {
		return auth.TenantContext{}, ErrTenantMissing
	}

	return auth.TenantContext{
		AuthContext: authCtx,
		TenantID:    tenant.ID,
		Tenant: auth.TenantRef{
			ID:   tenant.ID,
			Name: tenant.Name,
			Plan: tenant.Plan,
		},
	}, nil
}
