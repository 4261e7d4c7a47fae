package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpsertPatientRequest inserts when ID is absent and updates when present.
// TenantID is never part of the payload: it is always taken from the acting
// context.
type UpsertPatientRequest struct {
	ID              *uuid.UUID `json:"id" validate:"omitempty"`
	Name            string     `json:"name" validate:"required,min=2,max=255"`
	BirthDate       string     `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Email           string     `json:"email" validate:"omitempty,email"`
	Phone           string     `json:"phone" validate:"brphone"`
	CPF             string     `json:"cpf" validate:"cpf"`
	ResponsibleName string     `json:"responsible_name" validate:"omitempty,max=255"`
	ResponsibleCPF  string     `json:"responsible_cpf" validate:"cpf"`
	Gender          string     `json:"gender" validate:"omitempty,oneof=masculino feminino outro nao_informado"`
	Street          string     `json:"street" validate:"omitempty,max=255"`
	Number          string     `json:"number" validate:"omitempty,max=20"`
	Complement      string     `json:"complement" validate:"omitempty,max=255"`
	Neighborhood    string     `json:"neighborhood" validate:"omitempty,max=255"`
	City            string     `json:"city" validate:"omitempty,max=255"`
	State           string     `json:"state" validate:"omitempty,len=2"`
	ZipCode         string     `json:"zip_code" validate:"omitempty,max=10"`
	Notes           string     `json:"notes" validate:"maxwords=10"`
}

type ListPatientsRequest struct {
	Search    string `json:"search" validate:"omitempty,max=255"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive all"`
	SortBy    string `json:"sort_by" validate:"omitempty,oneof=name updated_at created_at"`
	SortOrder string `json:"sort_order" validate:"omitempty,oneof=asc desc"`
	Page      int    `json:"page" validate:"omitempty,gte=1"`
	Limit     int    `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

type SetPatientStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// Response DTOs

type PatientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	BirthDate       string    `json:"birth_date,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	CPF             string    `json:"cpf,omitempty"`
	ResponsibleName string    `json:"responsible_name,omitempty"`
	ResponsibleCPF  string    `json:"responsible_cpf,omitempty"`
	Gender          string    `json:"gender,omitempty"`
	Street          string    `json:"street,omitempty"`
	Number          string    `json:"number,omitempty"`
	Complement      string    `json:"complement,omitempty"`
	Neighborhood    string    `json:"neighborhood,omitempty"`
	City            string    `json:"city,omitempty"`
	State           string    `json:"state,omitempty"`
	ZipCode         string    `json:"zip_code,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}
