package http

import (
	"net/http"

	"pediatric-gastro-api/internal/delivery/http/handler"
	"pediatric-gastro-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	patientHandler     *handler.PatientHandler
	evaluationHandler  *handler.EvaluationHandler
	certificateHandler *handler.CertificateHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	evaluationHandler *handler.EvaluationHandler,
	certificateHandler *handler.CertificateHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		patientHandler:     patientHandler,
		evaluationHandler:  evaluationHandler,
		certificateHandler: certificateHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Clinical routes (protected - any authenticated staff)
	clinical := api.PathPrefix("").Subrouter()
	clinical.Use(r.authMiddleware.Authenticate)

	// Evaluations
	clinical.HandleFunc("/evaluations", r.evaluationHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/evaluations", r.evaluationHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/evaluations/derive-age", r.evaluationHandler.DeriveAge).Methods(http.MethodPost)
	clinical.HandleFunc("/evaluations/{id}", r.evaluationHandler.Get).Methods(http.MethodGet)
	clinical.HandleFunc("/evaluations/{id}/lab-exams", r.evaluationHandler.AddLabExam).Methods(http.MethodPost)
	clinical.HandleFunc("/evaluations/{id}/lab-exams", r.evaluationHandler.ListLabExams).Methods(http.MethodGet)
	clinical.HandleFunc("/lab-exams", r.evaluationHandler.ListAllLabExams).Methods(http.MethodGet)

	// Certificates
	clinical.HandleFunc("/certificates", r.certificateHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/certificates", r.certificateHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/certificates/prefill/{patientId}", r.certificateHandler.Prefill).Methods(http.MethodGet)
	clinical.HandleFunc("/certificates/{attentionId}", r.certificateHandler.Get).Methods(http.MethodGet)
	clinical.HandleFunc("/certificates/{attentionId}", r.certificateHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/certificates/{attentionId}", r.certificateHandler.Delete).Methods(http.MethodDelete)
	clinical.HandleFunc("/certificates/{attentionId}/edit", r.certificateHandler.BeginEdit).Methods(http.MethodPost)
	clinical.HandleFunc("/certificates/{attentionId}/print", r.certificateHandler.Print).Methods(http.MethodGet)

	// Patient directory
	clinical.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// User management (admin)
	admin.HandleFunc("/users", r.userHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/users/{id}/edit", r.userHandler.BeginEdit).Methods(http.MethodPost)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
