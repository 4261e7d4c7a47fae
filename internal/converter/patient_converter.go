package converter

import (
	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	birthDate := ""
	if patient.BirthDate != nil {
		birthDate = patient.BirthDate.Format("2006-01-02")
	}

	return &dto.PatientResponse{
		ID:              patient.ID,
		Name:            patient.Name,
		Status:          string(patient.Status),
		BirthDate:       birthDate,
		Email:           patient.Email,
		Phone:           patient.Phone,
		CPF:             patient.CPF,
		ResponsibleName: patient.ResponsibleName,
		ResponsibleCPF:  patient.ResponsibleCPF,
		Gender:          patient.Gender,
		Street:          patient.Street,
		Number:          patient.Number,
		Complement:      patient.Complement,
		Neighborhood:    patient.Neighborhood,
		City:            patient.City,
		State:           patient.State,
		ZipCode:         patient.ZipCode,
		Notes:           patient.Notes,
		CreatedAt:       patient.CreatedAt,
		UpdatedAt:       patient.UpdatedAt,
	}
}

// PatientsToListResponse converts a page of patients
func PatientsToListResponse(patients []entity.Patient) *dto.PatientListResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return &dto.PatientListResponse{Patients: responses}
}
