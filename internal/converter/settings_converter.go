package converter

import (
	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/entity"
)

// SettingsToResponse merges the settings row and working-hour rows into one
// response. A nil settings row yields nil: the caller decides how to signal
// "not configured yet".
func SettingsToResponse(settings *entity.UserSettings, hours []entity.WorkingHour) *dto.SettingsResponse {
	if settings == nil {
		return nil
	}

	workingHours := make([]dto.WorkingHourResponse, 0, len(hours))
	for _, h := range hours {
		slots := make([]dto.TimeSlotResponse, 0, len(h.Slots))
		for _, s := range h.Slots {
			slots = append(slots, dto.TimeSlotResponse{Start: s.Start, End: s.End})
		}
		workingHours = append(workingHours, dto.WorkingHourResponse{
			DayOfWeek: h.DayOfWeek,
			Enabled:   h.Enabled,
			Slots:     slots,
		})
	}

	return &dto.SettingsResponse{
		ProfessionalName:      settings.ProfessionalName,
		CRP:                   settings.CRP,
		DefaultDuration:       settings.DefaultDuration,
		BufferMinutes:         settings.BufferMinutes,
		BookingWindowDays:     settings.BookingWindowDays,
		ReminderMinutes:       settings.ReminderMinutes,
		NotifyByEmail:         settings.NotifyByEmail,
		NotifyByWhatsApp:      settings.NotifyByWhatsApp,
		SendAppointmentNotice: settings.SendAppointmentNotice,
		Locale:                settings.Locale,
		TimeFormat:            settings.TimeFormat,
		Timezone:              settings.Timezone,
		WorkingHours:          workingHours,
		UpdatedAt:             settings.UpdatedAt,
	}
}

// SaveRequestToWorkingHours maps submitted working-hour inputs to entities.
func SaveRequestToWorkingHours(req *dto.SaveSettingsRequest) []entity.WorkingHour {
	hours := make([]entity.WorkingHour, 0, len(req.WorkingHours))
	for _, input := range req.WorkingHours {
		slots := make(entity.TimeSlots, 0, len(input.Slots))
		for _, s := range input.Slots {
			slots = append(slots, entity.TimeSlot{Start: s.Start, End: s.End})
		}
		hours = append(hours, entity.WorkingHour{
			DayOfWeek: input.DayOfWeek,
			Enabled:   input.Enabled,
			Slots:     slots,
		})
	}
	return hours
}
