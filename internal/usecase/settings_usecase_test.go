package usecase

import (
	"context"
	"testing"

	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/auth"
	"psicoagenda/internal/domain/entity"
	"psicoagenda/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSettingsUsecase(t *testing.T, db *gorm.DB) SettingsUsecase {
	t.Helper()
	return NewSettingsUsecase(db, newTestLogger(), repository.NewSettingsRepository(), repository.NewWorkingHourRepository(), &fakeAuditService{})
}

func newAuthContext(userID uuid.UUID) context.Context {
	return auth.WithAuthContext(context.Background(), auth.AuthContext{UserID: userID})
}

func baseSettingsRequest() *dto.SaveSettingsRequest {
	return &dto.SaveSettingsRequest{
		ProfessionalName:  "Dra. Maria Souza",
		CRP:               "06/12345",
		DefaultDuration:   50,
		BufferMinutes:     10,
		BookingWindowDays: 30,
		ReminderMinutes:   60,
		NotifyByEmail:     true,
	}
}

func TestSettingsGet_NotConfiguredYet(t *testing.T) {
	db := newTestDB(t)
	uc := newSettingsUsecase(t, db)

	user := createTestUser(t, db, "maria@example.com")

	got, err := uc.Get(newAuthContext(user.ID))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSettingsSave_PersistsAndDefaults(t *testing.T) {
	db := newTestDB(t)
	uc := newSettingsUsecase(t, db)

	user := createTestUser(t, db, "maria@example.com")
	ctx := newAuthContext(user.ID)

	req := baseSettingsRequest()
	req.WorkingHours = []dto.WorkingHourInput{
		{DayOfWeek: 1, Enabled: true, Slots: []dto.TimeSlotInput{
			{Start: "08:00", End: "12:00"},
			{Start: "14:00", End: "18:00"},
		}},
	}

	saved, err := uc.Save(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "Dra. Maria Souza", saved.ProfessionalName)
	require.Equal(t, 50, saved.DefaultDuration)

	// Omitted locale fields pick up defaults
	require.Equal(t, "pt-BR", saved.Locale)
	require.Equal(t, "24h", saved.TimeFormat)
	require.Equal(t, "America/Sao_Paulo", saved.Timezone)

	require.Len(t, saved.WorkingHours, 1)
	require.Equal(t, 1, saved.WorkingHours[0].DayOfWeek)
	require.Len(t, saved.WorkingHours[0].Slots, 2)
	require.Equal(t, "08:00", saved.WorkingHours[0].Slots[0].Start)

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, saved.ProfessionalName, got.ProfessionalName)
}

func TestSettingsSave_ReplacesWorkingHoursEntirely(t *testing.T) {
	db := newTestDB(t)
	uc := newSettingsUsecase(t, db)

	user := createTestUser(t, db, "maria@example.com")
	ctx := newAuthContext(user.ID)

	req := baseSettingsRequest()
	req.WorkingHours = []dto.WorkingHourInput{
		{DayOfWeek: 1, Enabled: true, Slots: []dto.TimeSlotInput{{Start: "08:00", End: "12:00"}}},
	}
	_, err := uc.Save(ctx, req)
	require.NoError(t, err)

	// The second save submits Tuesday only; Monday must be gone
	req = baseSettingsRequest()
	req.WorkingHours = []dto.WorkingHourInput{
		{DayOfWeek: 2, Enabled: true, Slots: []dto.TimeSlotInput{{Start: "09:00", End: "13:00"}}},
	}
	saved, err := uc.Save(ctx, req)
	require.NoError(t, err)
	require.Len(t, saved.WorkingHours, 1)
	require.Equal(t, 2, saved.WorkingHours[0].DayOfWeek)

	var hourCount int64
	require.NoError(t, db.Model(&entity.WorkingHour{}).Where("user_id = ?", user.ID).Count(&hourCount).Error)
	require.EqualValues(t, 1, hourCount)
}

func TestSettingsSave_UpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	uc := newSettingsUsecase(t, db)

	user := createTestUser(t, db, "maria@example.com")
	ctx := newAuthContext(user.ID)

	_, err := uc.Save(ctx, baseSettingsRequest())
	require.NoError(t, err)

	req := baseSettingsRequest()
	req.DefaultDuration = 45
	saved, err := uc.Save(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 45, saved.DefaultDuration)

	var count int64
	require.NoError(t, db.Model(&entity.UserSettings{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSettings_PerUserNotShared(t *testing.T) {
	db := newTestDB(t)
	uc := newSettingsUsecase(t, db)

	userA := createTestUser(t, db, "a@example.com")
	userB := createTestUser(t, db, "b@example.com")

	req := baseSettingsRequest()
	req.ProfessionalName = "Dra. A"
	_, err := uc.Save(newAuthContext(userA.ID), req)
	require.NoError(t, err)

	got, err := uc.Get(newAuthContext(userB.ID))
	require.NoError(t, err)
	require.Nil(t, got)
}
