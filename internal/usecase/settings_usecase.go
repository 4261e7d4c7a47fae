package usecase

import (
	"context"

	"psicoagenda/internal/converter"
	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/auth"
	"psicoagenda/internal/domain/entity"
	"psicoagenda/internal/domain/repository"
	"psicoagenda/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SettingsUsecase interface {
	// Get returns the acting user's settings and working hours, or nil when
	// nothing has been saved yet.
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	// Save upserts the settings row and replaces the full working-hours set.
	// Callers submit the complete desired set on every save.
	Save(ctx context.Context, req *dto.SaveSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	settingsRepo    repository.SettingsRepository
	workingHourRepo repository.WorkingHourRepository
	auditService    service.AuditService
}

func NewSettingsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingsRepo repository.SettingsRepository,
	workingHourRepo repository.WorkingHourRepository,
	auditService service.AuditService,
) SettingsUsecase {
	return &settingsUsecase{
		db:              db,
		log:             log,
		settingsRepo:    settingsRepo,
		workingHourRepo: workingHourRepo,
		auditService:    auditService,
	}
}

func (u *settingsUsecase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	authCtx, ok := auth.GetAuthContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}

	settings, err := u.settingsRepo.FindByUserID(ctx, u.db, authCtx.UserID)
	if err != nil {
		u.log.Warnf("Failed to find settings: %+v", err)
		return nil, err
	}
	if settings == nil {
		return nil, nil
	}

	hours, err := u.workingHourRepo.FindByUserID(ctx, u.db, authCtx.UserID)
	if err != nil {
		u.log.Warnf("Failed to find working hours: %+v", err)
		return nil, err
	}

	return converter.SettingsToResponse(settings, hours), nil
}

// Save runs the settings upsert and the working-hours full replace inside one
// transaction so a failure cannot leave settings updated with stale hours.
func (u *settingsUsecase) Save(ctx context.Context, req *dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
	authCtx, ok := auth.GetAuthContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}

	settings := &entity.UserSettings{
		UserID:                authCtx.UserID,
		ProfessionalName:      req.ProfessionalName,
		CRP:                   req.CRP,
		DefaultDuration:       req.DefaultDuration,
		BufferMinutes:         req.BufferMinutes,
		BookingWindowDays:     req.BookingWindowDays,
		ReminderMinutes:       req.ReminderMinutes,
		NotifyByEmail:         req.NotifyByEmail,
		NotifyByWhatsApp:      req.NotifyByWhatsApp,
		SendAppointmentNotice: req.SendAppointmentNotice,
		Locale:                defaultString(req.Locale, "pt-BR"),
		TimeFormat:            defaultString(req.TimeFormat, "24h"),
		Timezone:              defaultString(req.Timezone, "America/Sao_Paulo"),
	}

	hours := converter.SaveRequestToWorkingHours(req)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.settingsRepo.Upsert(ctx, tx, settings); err != nil {
		u.log.Warnf("Failed to upsert settings: %+v", err)
		return nil, err
	}

	if err := u.workingHourRepo.ReplaceForUser(ctx, tx, authCtx.UserID, hours); err != nil {
		u.log.Warnf("Failed to replace working hours: %+v", err)
		return nil, err
	}

	tenantID := authCtx.TenantID
	if err := u.auditService.LogUpdate(ctx, tx, tenantID, &authCtx.UserID, entity.AuditActionSettingsSave, "user_settings", authCtx.UserID.String(), nil, req); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Read back the persisted state: the upsert path may have kept the
	// existing row id and timestamps.
	saved, err := u.settingsRepo.FindByUserID(ctx, u.db, authCtx.UserID)
	if err != nil {
		u.log.Warnf("Failed to reload settings: %+v", err)
		return nil, err
	}
	savedHours, err := u.workingHourRepo.FindByUserID(ctx, u.db, authCtx.UserID)
	if err != nil {
		u.log.Warnf("Failed to reload working hours: %+v", err)
		return nil, err
	}

	return converter.SettingsToResponse(saved, savedHours), nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
