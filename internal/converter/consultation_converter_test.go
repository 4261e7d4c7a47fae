package converter

import (
	"testing"
	"time"

	"psicoagenda/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func testConsultation(typ entity.ConsultationType, patient *entity.Patient) *entity.Consultation {
	return &entity.Consultation{
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:            "14:30",
		DurationMinutes: 50,
		Type:            typ,
		Modality:        entity.ModalityInPerson,
		Status:          entity.ConsultationStatusScheduled,
		Patient:         patient,
	}
}

func TestConsultationToResponse_TitleFromTypeAndPatient(t *testing.T) {
	patient := &entity.Patient{Name: "Ana Silva"}

	cases := []struct {
		typ   entity.ConsultationType
		title string
	}{
		{entity.ConsultationTypeTriage, "Triagem - Ana Silva"},
		{entity.ConsultationTypeInitialEval, "Avaliação Inicial - Ana Silva"},
		{entity.ConsultationTypeSession, "Sessão - Ana Silva"},
		{entity.ConsultationTypePsychEval, "Avaliação Psicológica - Ana Silva"},
		{entity.ConsultationTypeFeedback, "Devolutiva - Ana Silva"},
	}

	for _, tc := range cases {
		resp := ConsultationToResponse(testConsultation(tc.typ, patient), time.UTC)
		require.Equal(t, tc.title, resp.Title)
	}
}

func TestConsultationToResponse_UnknownTypeFallsBack(t *testing.T) {
	patient := &entity.Patient{Name: "Ana Silva"}

	resp := ConsultationToResponse(testConsultation("hipnose", patient), time.UTC)
	require.Equal(t, "Consulta - Ana Silva", resp.Title)
}

func TestConsultationToResponse_MissingPatient(t *testing.T) {
	resp := ConsultationToResponse(testConsultation(entity.ConsultationTypeTriage, nil), time.UTC)
	require.Equal(t, "", resp.PatientName)
	require.Equal(t, "Triagem - ", resp.Title)
}

func TestConsultationToResponse_StartAndEndInstants(t *testing.T) {
	resp := ConsultationToResponse(testConsultation(entity.ConsultationTypeSession, nil), time.UTC)

	require.Equal(t, time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC), resp.StartsAt)
	require.Equal(t, time.Date(2026, 3, 10, 15, 20, 0, 0, time.UTC), resp.EndsAt)
	require.Equal(t, "2026-03-10", resp.Date)
}

func TestConsultationToResponse_MalformedTimeYieldsZeroInstants(t *testing.T) {
	c := testConsultation(entity.ConsultationTypeSession, nil)
	c.Time = "25:99"

	resp := ConsultationToResponse(c, time.UTC)
	require.True(t, resp.StartsAt.IsZero())
	require.True(t, resp.EndsAt.IsZero())
}

func TestConsultationToResponse_Nil(t *testing.T) {
	require.Nil(t, ConsultationToResponse(nil, time.UTC))
}
