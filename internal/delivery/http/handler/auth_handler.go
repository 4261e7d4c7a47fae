package handler

import (
	"encoding/json"
	"net/http"

	"psicoagenda/config"
	"psicoagenda/internal/delivery/dto"
	"psicoagenda/internal/domain/auth"
	"psicoagenda/internal/usecase"
	"psicoagenda/pkg/response"
	"psicoagenda/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	session     config.SessionConfig
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		session:     session,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a user, optionally provisioning the practice tenant
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already registered", nil)
		default:
			response.InternalServerError(w, "Failed to register")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Registered successfully", user)
}

// Login verifies credentials, issues tokens and sets the session cookie the
// route guard inspects.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    tokens.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(tokens.ExpiresIn),
	})

	response.Success(w, http.StatusOK, "Logged in successfully", tokens)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := auth.GetAuthContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), authCtx.UserID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
			response.Unauthorized(w, "Invalid or revoked refresh token")
		case usecase.ErrUserNotFound:
			response.Unauthorized(w, "Account no longer exists")
		default:
			response.InternalServerError(w, "Failed to refresh token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := auth.GetAuthContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), authCtx.UserID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
