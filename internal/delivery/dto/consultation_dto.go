package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateConsultationRequest struct {
	PatientID       uuid.UUID       `json:"patient_id" validate:"required"`
	Date            string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string          `json:"time" validate:"required,hhmm"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gte=15,lte=240"`
	Type            string          `json:"type" validate:"required,oneof=triagem avaliacao_inicial sessao avaliacao_psicologica devolutiva"`
	Modality        string          `json:"modality" validate:"required,oneof=presencial online"`
	Value           decimal.Decimal `json:"value"`
	Notes           string          `json:"notes" validate:"omitempty,max=2000"`
}

// Response DTOs

// ConsultationResponse carries the derived read-time fields: Title,
// StartsAt and EndsAt are computed, never persisted.
type ConsultationResponse struct {
	ID              uuid.UUID       `json:"id"`
	PatientID       uuid.UUID       `json:"patient_id"`
	PatientName     string          `json:"patient_name"`
	Title           string          `json:"title"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	DurationMinutes int             `json:"duration_minutes"`
	StartsAt        time.Time       `json:"starts_at"`
	EndsAt          time.Time       `json:"ends_at"`
	Type            string          `json:"type"`
	Modality        string          `json:"modality"`
	Value           decimal.Decimal `json:"value"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
}
