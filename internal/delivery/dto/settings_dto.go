package dto

import "time"

// Request DTOs

type TimeSlotInput struct {
	Start string `json:"start" validate:"hhmm"`
	End   string `json:"end" validate:"hhmm"`
}

type WorkingHourInput struct {
	DayOfWeek int             `json:"day_of_week" validate:"gte=0,lte=6"`
	Enabled   bool            `json:"enabled"`
	Slots     []TimeSlotInput `json:"slots" validate:"dive"`
}

// SaveSettingsRequest is a full snapshot: the working-hours set submitted
// here replaces whatever is stored, entirely.
type SaveSettingsRequest struct {
	ProfessionalName      string             `json:"professional_name" validate:"omitempty,max=255"`
	CRP                   string             `json:"crp" validate:"omitempty,max=20"`
	DefaultDuration       int                `json:"default_duration" validate:"required,gte=15,lte=240"`
	BufferMinutes         int                `json:"buffer_minutes" validate:"gte=0,lte=60"`
	BookingWindowDays     int                `json:"booking_window_days" validate:"required,gte=1,lte=365"`
	ReminderMinutes       int                `json:"reminder_minutes" validate:"required,gte=15,lte=1440"`
	NotifyByEmail         bool               `json:"notify_by_email"`
	NotifyByWhatsApp      bool               `json:"notify_by_whatsapp"`
	SendAppointmentNotice bool               `json:"send_appointment_notice"`
	Locale                string             `json:"locale" validate:"omitempty,max=10"`
	TimeFormat            string             `json:"time_format" validate:"omitempty,oneof=12h 24h"`
	Timezone              string             `json:"timezone" validate:"omitempty,max=64"`
	WorkingHours          []WorkingHourInput `json:"working_hours" validate:"dive"`
}

// Response DTOs

type TimeSlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WorkingHourResponse struct {
	DayOfWeek int                `json:"day_of_week"`
	Enabled   bool               `json:"enabled"`
	Slots     []TimeSlotResponse `json:"slots"`
}

type SettingsResponse struct {
	ProfessionalName      string                `json:"professional_name,omitempty"`
	CRP                   string                `json:"crp,omitempty"`
	DefaultDuration       int                   `json:"default_duration"`
	BufferMinutes         int                   `json:"buffer_minutes"`
	BookingWindowDays     int                   `json:"booking_window_days"`
	ReminderMinutes       int                   `json:"reminder_minutes"`
	NotifyByEmail         bool                  `json:"notify_by_email"`
	NotifyByWhatsApp      bool                  `json:"notify_by_whatsapp"`
	SendAppointmentNotice bool                  `json:"send_appointment_notice"`
	Locale                string                `json:"locale"`
	TimeFormat            string                `json:"time_format"`
	Timezone              string                `json:"timezone"`
	WorkingHours          []WorkingHourResponse `json:"working_hours"`
	UpdatedAt             time.Time             `json:"updated_at"`
}
