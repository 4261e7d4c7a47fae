package entity

import (
	"time"

	"github.com/google/uuid"

	"gorm.io/gorm"
)

// PatientStatus represents the lifecycle status of a patient record
type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "active"
	PatientStatusInactive PatientStatus = "inactive"
)

// Gender constants
const (
	GenderMale        = "masculino"
	GenderFemale      = "feminino"
	GenderOther       = "outro"
	GenderNotInformed = "nao_informado"
)

// Patient belongs to exactly one tenant. Patients are never hard-deleted:
// archiving flips Status to inactive and is reversible.
type Patient struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name            string        `gorm:"type:varchar(255);not null" json:"name"`
	Status          PatientStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	BirthDate       *time.Time    `gorm:"type:date" json:"birth_date,omitempty"`
	Email           string        `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone           string        `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	CPF             string        `gorm:"type:char(11);column:cpf" json:"cpf,omitempty"`
	ResponsibleName string        `gorm:"type:varchar(255)" json:"responsible_name,omitempty"`
	ResponsibleCPF  string        `gorm:"type:char(11);column:responsible_cpf" json:"responsible_cpf,omitempty"`
	Gender          string        `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Street          string        `gorm:"type:varchar(255)" json:"street,omitempty"`
	Number          string        `gorm:"type:varchar(20)" json:"number,omitempty"`
	Complement      string        `gorm:"type:varchar(255)" json:"complement,omitempty"`
	Neighborhood    string        `gorm:"type:varchar(255)" json:"neighborhood,omitempty"`
	City            string        `gorm:"type:varchar(255)" json:"city,omitempty"`
	State           string        `gorm:"type:char(2)" json:"state,omitempty"`
	ZipCode         string        `gorm:"type:varchar(10)" json:"zip_code,omitempty"`
	Notes           string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Consultations []Consultation `gorm:"foreignKey:PatientID" json:"consultations,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsActive checks if the patient record is active
func (p *Patient) IsActive() bool {
	return p.Status == PatientStatusActive
}

// Archive marks the patient as inactive
func (p *Patient) Archive() {
	p.Status = PatientStatusInactive
}

// Reactivate marks the patient as active again
func (p *Patient) Reactivate() {
	p.Status = PatientStatusActive
}
