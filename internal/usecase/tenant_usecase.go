package usecase

import (
	"context"
	"errors"

	"psicoagenda/internal/converter"
	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/entity"
	"psicoagenda/internal/domain/repository"
	"psicoagenda/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTenantNotFound = errors.New("tenant not found")
)

type TenantUsecase interface {
	// Provision creates the user's tenant if absent. Idempotent: a user that
	// already has a tenant gets it back with no side effect.
	Provision(ctx context.Context, userID uuid.UUID, req *dto.ProvisionTenantRequest) (*dto.ProvisionTenantResponse, error)
	Get(ctx context.Context, tenantID uuid.UUID) (*dto.TenantResponse, error)
	// RecentActivity returns the tenant's latest audit entries, newest first.
	RecentActivity(ctx context.Context, tenantID uuid.UUID, limit int) ([]entity.AuditLog, error)
}

type tenantUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	tenantRepo   repository.TenantRepository
	auditService service.AuditService
}

func NewTenantUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	tenantRepo repository.TenantRepository,
	auditService service.AuditService,
) TenantUsecase {
	return &tenantUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		tenantRepo:   tenantRepo,
		auditService: auditService,
	}
}

// Provision attaches a tenant to the user. The user row is locked for the
// transaction and tenants.owner_user_id carries a unique index, so two
// concurrent first-logins cannot end up with two tenants: the loser of the
// race either waits on the row lock and sees the winner's tenant, or trips
// the unique constraint and re-reads it.
func (u *tenantUsecase) Provision(ctx context.Context, userID uuid.UUID, req *dto.ProvisionTenantRequest) (*dto.ProvisionTenantResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByIDForUpdate(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user for provisioning: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Already provisioned: idempotent no-op
	if user.TenantID != nil {
		tenant, err := u.tenantRepo.FindByID(ctx, tx, *user.TenantID)
		if err != nil {
			u.log.Warnf("Failed to find tenant: %+v", err)
			return nil, err
		}
		if tenant == nil {
			return nil, ErrTenantNotFound
		}
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return nil, err
		}
		return &dto.ProvisionTenantResponse{Tenant: *converter.TenantToResponse(tenant), Created: false}, nil
	}

	name := req.Name
	if name == "" {
		name = "Consultório de " + user.FullName
	}
	plan := req.Plan
	if plan == "" {
		plan = entity.PlanFree
	}

	tenant := &entity.Tenant{
		Name:        name,
		Plan:        plan,
		OwnerUserID: user.ID,
	}

	if err := u.tenantRepo.Create(ctx, tx, tenant); err != nil {
		if isDuplicateKeyError(err, "owner_user") {
			// Lost the race: another request provisioned first. Re-read
			// the winner's tenant outside this (now poisoned) transaction.
			tx.Rollback()
			existing, findErr := u.tenantRepo.FindByOwnerUserID(ctx, u.db, user.ID)
			if findErr != nil {
				u.log.Warnf("Failed to find tenant after provisioning race: %+v", findErr)
				return nil, findErr
			}
			if existing == nil {
				return nil, ErrTenantNotFound
			}
			return &dto.ProvisionTenantResponse{Tenant: *converter.TenantToResponse(existing), Created: false}, nil
		}
		u.log.Warnf("Failed to create tenant: %+v", err)
		return nil, err
	}

	user.TenantID = &tenant.ID
	if err := u.userRepo.Update(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to link tenant to user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &tenant.ID, &user.ID, entity.AuditActionTenantCreate, "tenant", tenant.ID.String(), converter.TenantToResponse(tenant)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.ProvisionTenantResponse{Tenant: *converter.TenantToResponse(tenant), Created: true}, nil
}

func (u *tenantUsecase) Get(ctx context.Context, tenantID uuid.UUID) (*dto.TenantResponse, error) {
	tenant, err := u.tenantRepo.FindByID(ctx, u.db, tenantID)
	if err != nil {
		u.log.Warnf("Failed to find tenant: %+v", err)
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}
	return converter.TenantToResponse(tenant), nil
}

func (u *tenantUsecase) RecentActivity(ctx context.Context, tenantID uuid.UUID, limit int) ([]entity.AuditLog, error) {
	return u.auditService.Recent(ctx, u.db, tenantID, limit)
}
