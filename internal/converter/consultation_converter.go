package converter

import (
	"time"

	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/entity"
)

// ConsultationToResponse converts a Consultation entity to its response DTO,
// deriving the display fields at read time. The patient join may be missing:
// the title then carries an empty name segment instead of failing.
func ConsultationToResponse(c *entity.Consultation, loc *time.Location) *dto.ConsultationResponse {
	if c == nil {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	patientName := ""
	if c.Patient != nil {
		patientName = c.Patient.Name
	}

	title := c.Type.Label() + " - " + patientName

	// Stored date+time are wall-clock local. A malformed stored time yields
	// zero instants rather than an error response.
	startsAt, err := c.StartsAt(loc)
	var endsAt time.Time
	if err == nil {
		endsAt = startsAt.Add(time.Duration(c.DurationMinutes) * time.Minute)
	}

	return &dto.ConsultationResponse{
		ID:              c.ID,
		PatientID:       c.PatientID,
		PatientName:     patientName,
		Title:           title,
		Date:            c.Date.Format("2006-01-02"),
		Time:            c.Time,
		DurationMinutes: c.DurationMinutes,
		StartsAt:        startsAt,
		EndsAt:          endsAt,
		Type:            string(c.Type),
		Modality:        c.Modality,
		Value:           c.Value,
		Status:          string(c.Status),
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ConsultationsToListResponse converts a set of consultations
func ConsultationsToListResponse(consultations []entity.Consultation, loc *time.Location) *dto.ConsultationListResponse {
	responses := make([]dto.ConsultationResponse, 0, len(consultations))
	for i := range consultations {
		responses = append(responses, *ConsultationToResponse(&consultations[i], loc))
	}
	return &dto.ConsultationListResponse{Consultations: responses}
}
