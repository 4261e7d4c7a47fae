package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// ConsultationType enumerates the supported consultation types
type ConsultationType string

const (
	ConsultationTypeTriage      ConsultationType = "triagem"
	ConsultationTypeInitialEval ConsultationType = "avaliacao_inicial"
	ConsultationTypeSession     ConsultationType = "sessao"
	ConsultationTypePsychEval   ConsultationType = "avaliacao_psicologica"
	ConsultationTypeFeedback    ConsultationType = "devolutiva"
)

// consultationTypeLabels maps type codes to display labels.
var consultationTypeLabels = map[ConsultationType]string{
	ConsultationTypeTriage:      "Triagem",
	ConsultationTypeInitialEval: "Avaliação Inicial",
	ConsultationTypeSession:     "Sessão",
	ConsultationTypePsychEval:   "Avaliação Psicológica",
	ConsultationTypeFeedback:    "Devolutiva",
}

// Label returns the display label for the type, falling back to the generic
// "Consulta" for unrecognized codes.
func (t ConsultationType) Label() string {
	if label, ok := consultationTypeLabels[t]; ok {
		return label
	}
	return "Consulta"
}

// ConsultationStatus represents the scheduling status of a consultation
type ConsultationStatus string

const (
	ConsultationStatusScheduled ConsultationStatus = "agendada"
	ConsultationStatusConfirmed ConsultationStatus = "confirmada"
	ConsultationStatusDone      ConsultationStatus = "realizada"
	ConsultationStatusCancelled ConsultationStatus = "cancelada"
	ConsultationStatusNoShow    ConsultationStatus = "faltou"
)

// Modality constants
const (
	ModalityInPerson = "presencial"
	ModalityOnline   = "online"
)

// Consultation belongs to a tenant and references a patient. Display title
// and start/end instants are derived at read time, never persisted.
type Consultation struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	PatientID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"patient_id"`
	Date            time.Time          `gorm:"type:date;not null;index" json:"date"`
	Time            string             `gorm:"type:varchar(5);not null" json:"time"`
	DurationMinutes int                `gorm:"not null;default:50" json:"duration_minutes"`
	Type            ConsultationType   `gorm:"type:varchar(30);not null" json:"type"`
	Modality        string             `gorm:"type:varchar(20);not null;default:'presencial'" json:"modality"`
	Value           decimal.Decimal    `gorm:"type:decimal(10,2)" json:"value"`
	Status          ConsultationStatus `gorm:"type:varchar(20);not null;default:'agendada';index" json:"status"`
	Notes           string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships. Patient may be nil when the referenced row is gone;
	// the read side tolerates the missing join.
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

func (c *Consultation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// StartsAt builds the start instant from the stored date and HH:MM time in
// the given location. Stored values are wall-clock local, not UTC.
func (c *Consultation) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", c.Date.Format("2006-01-02")+" "+c.Time, loc)
}

// EndsAt is StartsAt offset by the stored duration.
func (c *Consultation) EndsAt(loc *time.Location) (time.Time, error) {
	start, err := c.StartsAt(loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(c.DurationMinutes) * time.Minute), nil
}
