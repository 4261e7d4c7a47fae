package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gorm.io/gorm"
)

// UserSettings is per-user (not per-tenant) configuration. At most one row
// per user, enforced by the unique index on UserID and the upsert-on-conflict
// save path.
type UserSettings struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_user_settings_user;not null" json:"user_id"`
	ProfessionalName      string    `gorm:"type:varchar(255)" json:"professional_name,omitempty"`
	CRP                   string    `gorm:"type:varchar(20);column:crp" json:"crp,omitempty"`
	DefaultDuration       int       `gorm:"not null;default:50" json:"default_duration"`
	BufferMinutes         int       `gorm:"not null;default:10" json:"buffer_minutes"`
	BookingWindowDays     int       `gorm:"not null;default:30" json:"booking_window_days"`
	ReminderMinutes       int       `gorm:"not null;default:60" json:"reminder_minutes"`
	NotifyByEmail         bool      `gorm:"not null;default:true" json:"notify_by_email"`
	NotifyByWhatsApp      bool      `gorm:"column:notify_by_whatsapp;not null;default:false" json:"notify_by_whatsapp"`
	SendAppointmentNotice bool      `gorm:"not null;default:true" json:"send_appointment_notice"`
	Locale                string    `gorm:"type:varchar(10);not null;default:'pt-BR'" json:"locale"`
	TimeFormat            string    `gorm:"type:varchar(5);not null;default:'24h'" json:"time_format"`
	Timezone              string    `gorm:"type:varchar(64);not null;default:'America/Sao_Paulo'" json:"timezone"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TimeSlot is a start/end pair in HH:MM. Start and end are validated
// independently; no start<end ordering is asserted.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeSlots is stored as a JSON column.
type TimeSlots []TimeSlot

// Value implements driver.Valuer
func (ts TimeSlots) Value() (driver.Value, error) {
	if len(ts) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(ts)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (ts *TimeSlots) Scan(value interface{}) error {
	if value == nil {
		*ts = TimeSlots{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal time slots value:", value))
	}

	return json.Unmarshal(bytes, ts)
}

// WorkingHour is one weekly availability entry for a user. The full set is
// replaced (delete-then-insert) on every settings save, never patched.
type WorkingHour struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"`
	Enabled   bool      `gorm:"not null;default:true" json:"enabled"`
	Slots     TimeSlots `gorm:"type:jsonb" json:"slots"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (WorkingHour) TableName() string {
	return "working_hours"
}

func (w *WorkingHour) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
