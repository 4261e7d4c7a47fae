package handler

import (
	"encoding/json"
	"net/http"

	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/usecase"
	"psicoagenda/pkg/response"
	"psicoagenda/pkg/validator"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

func (h *ConsultationHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.consultationUsecase.List(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrTenantRequired:
			response.Forbidden(w, "No tenant provisioned for this account")
		default:
			response.InternalServerError(w, "Failed to list consultations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", list)
}

func (h *ConsultationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTenantRequired:
			response.Forbidden(w, "No tenant provisioned for this account")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAccessDenied:
			response.Forbidden(w, "You don't have permission to access this resource")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create consultation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation created successfully", consultation)
}
