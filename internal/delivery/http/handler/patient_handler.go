package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/entity"
	"psicoagenda/internal/usecase"
	"psicoagenda/pkg/response"
	"psicoagenda/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// List handles listing and searching patients
// @Summary List patients
// @Description List the tenant's patients with search, status filter, sorting and pagination
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param search query string false "Substring match across name/email/phone"
// @Param status query string false "active | inactive | all" default(all)
// @Param sort_by query string false "name | updated_at | created_at" default(created_at)
// @Param sort_order query string false "asc | desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	req := dto.ListPatientsRequest{
		Search:    query.Get("search"),
		Status:    query.Get("status"),
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
		Page:      page,
		Limit:     limit,
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	list, total, filter, err := h.patientUsecase.List(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTenantRequired:
			response.Forbidden(w, "No tenant provisioned for this account")
		default:
			response.InternalServerError(w, "Failed to list patients")
		}
		return
	}

	meta := response.NewMeta(filter.Page, filter.Limit, total)
	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", list, meta)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeActionError(w, err, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// Upsert handles patient creation and update in one endpoint: a request
// without an id inserts, with an id updates.
func (h *PatientHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Upsert(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrInvalidDateFormat {
			response.Error(w, http.StatusBadRequest, "Invalid birth date, use YYYY-MM-DD", nil)
			return
		}
		h.writeActionError(w, err, "Failed to save patient")
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}
	response.Success(w, status, "Patient saved successfully", patient)
}

// Archive marks a patient inactive. Patients are never hard-deleted.
func (h *PatientHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, entity.PatientStatusInactive, "Patient archived successfully")
}

// Reactivate marks an archived patient active again.
func (h *PatientHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, entity.PatientStatusActive, "Patient reactivated successfully")
}

func (h *PatientHandler) setStatus(w http.ResponseWriter, r *http.Request, status entity.PatientStatus, message string) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.SetStatus(r.Context(), id, status)
	if err != nil {
		h.writeActionError(w, err, "Failed to update patient status")
		return
	}

	response.Success(w, http.StatusOK, message, patient)
}

func (h *PatientHandler) writeActionError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrTenantRequired:
		response.Forbidden(w, "No tenant provisioned for this account")
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	case usecase.ErrAccessDenied:
		// Deny without confirming the resource exists elsewhere
		response.Forbidden(w, "You don't have permission to access this resource")
	default:
		response.InternalServerError(w, fallback)
	}
}
