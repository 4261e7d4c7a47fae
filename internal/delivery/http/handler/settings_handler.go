package handler

import (
	"encoding/json"
	"net/http"

	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/usecase"
	"psicoagenda/pkg/response"
	"psicoagenda/pkg/validator"
)

type SettingsHandler struct {
	settingsUsecase usecase.SettingsUsecase
	validator       *validator.CustomValidator
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase, validator *validator.CustomValidator) *SettingsHandler {
	return &SettingsHandler{
		settingsUsecase: settingsUsecase,
		validator:       validator,
	}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUsecase.Get(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get settings")
		return
	}
	if settings == nil {
		response.NotFound(w, "Settings not configured yet")
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

// Save replaces the stored settings snapshot. The submitted working-hours
// set fully replaces the stored one.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.settingsUsecase.Save(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings saved successfully", settings)
}
