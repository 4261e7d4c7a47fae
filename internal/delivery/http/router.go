package http

import (
	"net/http"

	"psicoagenda/internal/delivery/http/handler"
	"psicoagenda/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	tenantHandler       *handler.TenantHandler
	patientHandler      *handler.PatientHandler
	consultationHandler *handler.ConsultationHandler
	settingsHandler     *handler.SettingsHandler
	authMiddleware      *middleware.AuthMiddleware
	tenantMiddleware    *middleware.TenantMiddleware
	routeGuard          *middleware.RouteGuard
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	tenantHandler *handler.TenantHandler,
	patientHandler *handler.PatientHandler,
	consultationHandler *handler.ConsultationHandler,
	settingsHandler *handler.SettingsHandler,
	authMiddleware *middleware.AuthMiddleware,
	tenantMiddleware *middleware.TenantMiddleware,
	routeGuard *middleware.RouteGuard,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		tenantHandler:       tenantHandler,
		patientHandler:      patientHandler,
		consultationHandler: consultationHandler,
		settingsHandler:     settingsHandler,
		authMiddleware:      authMiddleware,
		tenantMiddleware:    tenantMiddleware,
		routeGuard:          routeGuard,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected, no tenant scope required)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Tenant provisioning: authenticated but deliberately outside the tenant
	// middleware, since it exists to remedy the missing tenant
	provisioning := api.PathPrefix("/tenant").Subrouter()
	provisioning.Use(r.authMiddleware.Authenticate)
	provisioning.HandleFunc("/provision", r.tenantHandler.Provision).Methods(http.MethodPost)

	// Settings are per-user, not per-tenant
	settings := api.PathPrefix("/settings").Subrouter()
	settings.Use(r.authMiddleware.Authenticate)
	settings.HandleFunc("", r.settingsHandler.Get).Methods(http.MethodGet)
	settings.HandleFunc("", r.settingsHandler.Save).Methods(http.MethodPut)

	// Tenant-scoped routes
	scoped := api.PathPrefix("").Subrouter()
	scoped.Use(r.authMiddleware.Authenticate)
	scoped.Use(r.tenantMiddleware.ResolveTenant)

	scoped.HandleFunc("/tenant", r.tenantHandler.GetCurrent).Methods(http.MethodGet)
	scoped.HandleFunc("/tenant/activity", r.tenantHandler.Activity).Methods(http.MethodGet)

	scoped.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	scoped.HandleFunc("/patients", r.patientHandler.Upsert).Methods(http.MethodPost)
	scoped.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	scoped.HandleFunc("/patients/{id}/archive", r.patientHandler.Archive).Methods(http.MethodPost)
	scoped.HandleFunc("/patients/{id}/reactivate", r.patientHandler.Reactivate).Methods(http.MethodPost)

	scoped.HandleFunc("/consultations", r.consultationHandler.List).Methods(http.MethodGet)
	scoped.HandleFunc("/consultations", r.consultationHandler.Create).Methods(http.MethodPost)

	// Route guard and CORS wrap outside the mux router: page paths are not
	// registered routes, and mux middleware never runs on unmatched requests.
	return r.routeGuard.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
