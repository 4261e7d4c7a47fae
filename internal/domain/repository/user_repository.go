package repository

import (
	"context"

	"psicoagenda/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	// FindByIDForUpdate locks the user row for the duration of the
	// surrounding transaction. Used to serialize tenant provisioning.
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, db *gorm.DB, user *entity.User) error
}
