package handler

import (
	"errors"
	"net/http"

	"pediatric-gastro-api/internal/usecase"
	"pediatric-gastro-api/pkg/response"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{patientUsecase: patientUsecase}
}

// Get handles fetching a single patient
// @Summary Get patient by id
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// List handles listing and searching the patient directory
// @Summary List or search patients
// @Description List the directory, or filter by name with ?search=
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name search term"
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")

	patients, err := h.patientUsecase.SearchPatients(r.Context(), term)
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
