package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/auth"
	"psicoagenda/internal/usecase"
	"psicoagenda/pkg/response"
	"psicoagenda/pkg/validator"
)

type TenantHandler struct {
	tenantUsecase usecase.TenantUsecase
	validator     *validator.CustomValidator
}

func NewTenantHandler(tenantUsecase usecase.TenantUsecase, validator *validator.CustomValidator) *TenantHandler {
	return &TenantHandler{
		tenantUsecase: tenantUsecase,
		validator:     validator,
	}
}

// Provision attaches a tenant to the authenticated user. Safe to call
// repeatedly: a second call returns the existing tenant unchanged.
func (h *TenantHandler) Provision(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := auth.GetAuthContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.ProvisionTenantRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.tenantUsecase.Provision(r.Context(), authCtx.UserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to provision tenant")
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	response.Success(w, status, "Tenant provisioned", result)
}

func (h *TenantHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	tenantCtx, ok := auth.GetTenantContext(r.Context())
	if !ok {
		response.Forbidden(w, "No tenant provisioned for this account")
		return
	}

	tenant, err := h.tenantUsecase.Get(r.Context(), tenantCtx.TenantID)
	if err != nil {
		switch err {
		case usecase.ErrTenantNotFound:
			response.NotFound(w, "Tenant not found")
		default:
			response.InternalServerError(w, "Failed to get tenant")
		}
		return
	}

	response.Success(w, http.StatusOK, "Tenant retrieved successfully", tenant)
}

// Activity lists the tenant's most recent audit trail entries.
func (h *TenantHandler) Activity(w http.ResponseWriter, r *http.Request) {
	tenantCtx, ok := auth.GetTenantContext(r.Context())
	if !ok {
		response.Forbidden(w, "No tenant provisioned for this account")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.tenantUsecase.RecentActivity(r.Context(), tenantCtx.TenantID, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list activity")
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", logs)
}
