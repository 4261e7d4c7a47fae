package repository

import (
	"context"

	"psicoagenda/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	// Upsert inserts the settings row or updates all fields on conflict of
	// user_id, keeping at most one row per user.
	Upsert(ctx context.Context, db *gorm.DB, settings *entity.UserSettings) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.UserSettings, error)
}

type WorkingHourRepository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.WorkingHour, error)
	// ReplaceForUser deletes every working-hour row of the user and inserts
	// the submitted set. Full replace, never a merge.
	ReplaceForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, hours []entity.WorkingHour) error
}
