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

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

// Create handles user creation
// @Summary Create a new user
// @Description Create a managed user account with a sequential USR id
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserEmailExists):
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

// Get handles fetching a single user
// @Summary Get user by id
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.userUsecase.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

// List handles listing all users
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// Update handles user edits
// @Summary Update user
// @Description Update a user; an empty password keeps the stored credential
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		case errors.Is(err, usecase.ErrUserEmailExists):
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

// Delete handles user removal
// @Summary Delete user
// @Description Remove a user; deleting an already removed user succeeds
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	if err := h.userUsecase.DeleteUser(r.Context(), userID); err != nil {
		response.InternalServerError(w, "Failed to delete user")
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}

// BeginEdit marks a user as the operator's current edit target
// @Summary Begin editing a user
// @Description Load a user into the operator's edit session
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id}/edit [post]
func (h *UserHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.userUsecase.BeginEdit(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to begin edit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Edit session started", user)
}
