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

type EvaluationHandler struct {
	evaluationUsecase usecase.EvaluationUsecase
	validator         *validator.CustomValidator
}

func NewEvaluationHandler(evaluationUsecase usecase.EvaluationUsecase, validator *validator.CustomValidator) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationUsecase: evaluationUsecase,
		validator:         validator,
	}
}

// Create handles evaluation submissions
// @Summary Create a medical evaluation
// @Description Persist a full consultation form; the patient age is derived from the birth date
// @Tags Evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEvaluationRequest true "Create Evaluation Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /evaluations [post]
func (h *EvaluationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	evaluation, err := h.evaluationUsecase.CreateEvaluation(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create evaluation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Evaluation created successfully", evaluation)
}

// Get handles fetching a single evaluation
// @Summary Get evaluation by id
// @Tags Evaluations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Evaluation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /evaluations/{id} [get]
func (h *EvaluationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	evaluation, err := h.evaluationUsecase.GetEvaluation(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEvaluationNotFound):
			response.NotFound(w, "Evaluation not found")
		default:
			response.InternalServerError(w, "Failed to get evaluation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Evaluation retrieved successfully", evaluation)
}

// List handles listing all evaluations
// @Summary List evaluations
// @Tags Evaluations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /evaluations [get]
func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.evaluationUsecase.GetAllEvaluations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list evaluations")
		return
	}

	response.Success(w, http.StatusOK, "Evaluations retrieved successfully", evaluations)
}

// AddLabExam attaches an uploaded exam file to an evaluation
// @Summary Add lab exam to evaluation
// @Tags Evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Evaluation ID"
// @Param request body dto.LabExamFileRequest true "Lab Exam File Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /evaluations/{id}/lab-exams [post]
func (h *EvaluationHandler) AddLabExam(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.LabExamFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exam, err := h.evaluationUsecase.AddLabExam(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEvaluationNotFound):
			response.NotFound(w, "Evaluation not found")
		default:
			response.InternalServerError(w, "Failed to add lab exam")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Lab exam added successfully", exam)
}

// ListLabExams lists the exams of one evaluation in upload order
// @Summary List lab exams of an evaluation
// @Tags Evaluations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Evaluation ID"
// @Success 200 {object} response.Response
// @Router /evaluations/{id}/lab-exams [get]
func (h *EvaluationHandler) ListLabExams(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	exams, err := h.evaluationUsecase.GetLabExams(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEvaluationNotFound):
			response.NotFound(w, "Evaluation not found")
		default:
			response.InternalServerError(w, "Failed to list lab exams")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab exams retrieved successfully", exams)
}

// ListAllLabExams lists every uploaded exam across evaluations
// @Summary List all lab exams
// @Tags Evaluations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /lab-exams [get]
func (h *EvaluationHandler) ListAllLabExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.evaluationUsecase.GetAllLabExams(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list lab exams")
		return
	}

	response.Success(w, http.StatusOK, "Lab exams retrieved successfully", exams)
}

// DeriveAge recomputes a patient age from a birth date
// @Summary Derive age from birth date
// @Description Returns the whole-years age; an empty birth date clears the age
// @Tags Evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AgeDerivationRequest true "Age Derivation Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /evaluations/derive-age [post]
func (h *EvaluationHandler) DeriveAge(w http.ResponseWriter, r *http.Request) {
	var req dto.AgeDerivationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.evaluationUsecase.DeriveAge(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to derive age")
		}
		return
	}

	response.Success(w, http.StatusOK, "Age derived successfully", result)
}
