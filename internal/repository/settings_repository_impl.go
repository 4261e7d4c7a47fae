package repository

import (
	"context"
	"errors"

	"psicoagenda/internal/domain/entity"
	domainRepo "psicoagenda/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct{}

func NewSettingsRepository() domainRepo.SettingsRepository {
	return &settingsRepository{}
}

func (r *settingsRepository) Upsert(ctx context.Context, db *gorm.DB, settings *entity.UserSettings) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"professional_name", "crp", "default_duration", "buffer_minutes",
			"booking_window_days", "reminder_minutes", "notify_by_email",
			"notify_by_whatsapp", "send_appointment_notice", "locale",
			"time_format", "timezone", "updated_at",
		}),
	}).Create(settings).Error
}

func (r *settingsRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.UserSettings, error) {
	var settings entity.UserSettings
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

type workingHourRepository struct{}

func NewWorkingHourRepository() domainRepo.WorkingHourRepository {
	return &workingHourRepository{}
}

func (r *workingHourRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.WorkingHour, error) {
	var hours []entity.WorkingHour
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day_of_week ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *workingHourRepository) ReplaceForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, hours []entity.WorkingHour) error {
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.WorkingHour{}).Error; err != nil {
		return err
	}
	if len(hours) == 0 {
		return nil
	}
	for i := range hours {
		hours[i].UserID = userID
	}
	return db.WithContext(ctx).Create(&hours).Error
}
