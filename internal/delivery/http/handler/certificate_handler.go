package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/usecase"
	"pediatric-gastro-api/pkg/response"
	"pediatric-gastro-api/pkg/validator"

	"github.com/gorilla/mux"
)

type CertificateHandler struct {
	certificateUsecase usecase.CertificateUsecase
	validator          *validator.CustomValidator
}

func NewCertificateHandler(certificateUsecase usecase.CertificateUsecase, validator *validator.CustomValidator) *CertificateHandler {
	return &CertificateHandler{
		certificateUsecase: certificateUsecase,
		validator:          validator,
	}
}

// Create handles certificate generation
// @Summary Generate a medical certificate
// @Description Generate a certificate with a fresh attention id and the operator's doctor stamp
// @Tags Certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCertificateRequest true "Create Certificate Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /certificates [post]
func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	certificate, err := h.certificateUsecase.GenerateCertificate(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to generate certificate")
		return
	}

	response.Success(w, http.StatusCreated, "Certificate generated successfully", certificate)
}

// Get handles fetching a single certificate
// @Summary Get certificate by attention id
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Param attentionId path string true "Attention ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /certificates/{attentionId} [get]
func (h *CertificateHandler) Get(w http.ResponseWriter, r *http.Request) {
	attentionID := mux.Vars(r)["attentionId"]

	certificate, err := h.certificateUsecase.GetCertificate(r.Context(), attentionID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCertificateNotFound):
			response.NotFound(w, "Certificate not found")
		default:
			response.InternalServerError(w, "Failed to get certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate retrieved successfully", certificate)
}

// List handles listing all certificates
// @Summary List certificates
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /certificates [get]
func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.certificateUsecase.GetAllCertificates(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list certificates")
		return
	}

	response.Success(w, http.StatusOK, "Certificates retrieved successfully", certificates)
}

// Update handles certificate edits
// @Summary Update certificate
// @Description Update a certificate; the attention id and doctor stamp are preserved
// @Tags Certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attentionId path string true "Attention ID"
// @Param request body dto.UpdateCertificateRequest true "Update Certificate Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /certificates/{attentionId} [put]
func (h *CertificateHandler) Update(w http.ResponseWriter, r *http.Request) {
	attentionID := mux.Vars(r)["attentionId"]

	var req dto.UpdateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	certificate, err := h.certificateUsecase.UpdateCertificate(r.Context(), attentionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCertificateNotFound):
			response.NotFound(w, "Certificate not found")
		default:
			response.InternalServerError(w, "Failed to update certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate updated successfully", certificate)
}

// Delete handles certificate removal
// @Summary Delete certificate
// @Description Remove a certificate; deleting an already removed one succeeds
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Param attentionId path string true "Attention ID"
// @Success 200 {object} response.Response
// @Router /certificates/{attentionId} [delete]
func (h *CertificateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	attentionID := mux.Vars(r)["attentionId"]

	if err := h.certificateUsecase.DeleteCertificate(r.Context(), attentionID); err != nil {
		response.InternalServerError(w, "Failed to delete certificate")
		return
	}

	response.Success(w, http.StatusOK, "Certificate deleted successfully", nil)
}

// BeginEdit marks a certificate as the operator's current edit target
// @Summary Begin editing a certificate
// @Description Load a certificate into the operator's edit session
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Param attentionId path string true "Attention ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /certificates/{attentionId}/edit [post]
func (h *CertificateHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	attentionID := mux.Vars(r)["attentionId"]

	certificate, err := h.certificateUsecase.BeginEdit(r.Context(), attentionID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCertificateNotFound):
			response.NotFound(w, "Certificate not found")
		default:
			response.InternalServerError(w, "Failed to begin edit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Edit session started", certificate)
}

// Prefill builds certificate form defaults from a directory patient
// @Summary Prefill certificate form from patient
// @Tags Certificates
// @Produce json
// @Security BearerAuth
// @Param patientId path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /certificates/prefill/{patientId} [get]
func (h *CertificateHandler) Prefill(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patientId"]

	prefill, err := h.certificateUsecase.PrefillFromPatient(r.Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to prefill certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate prefill built successfully", prefill)
}

// Print renders the printable HTML view of a certificate
// @Summary Render certificate as printable HTML
// @Tags Certificates
// @Produce html
// @Security BearerAuth
// @Param attentionId path string true "Attention ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} response.Response
// @Router /certificates/{attentionId}/print [get]
func (h *CertificateHandler) Print(w http.ResponseWriter, r *http.Request) {
	attentionID := mux.Vars(r)["attentionId"]

	html, err := h.certificateUsecase.Render(r.Context(), attentionID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCertificateNotFound):
			response.NotFound(w, "Certificate not found")
		default:
			response.InternalServerError(w, "Failed to render certificate")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}
