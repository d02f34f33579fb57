package dto

import "time"

// Request DTOs
//
// Creation and edit are two explicit schema variants rather than one schema
// mutated at runtime: creation requires a password, edit makes it optional.
// On both, the confirmation rules are evaluated in order: a set password with
// no confirmation fails with its own message before the equality check runs.

type CreateUserRequest struct {
	FullName                  string `json:"full_name" validate:"required,min=2"`
	Email                     string `json:"email" validate:"required,email"`
	Password                  string `json:"password" validate:"required,min=6"`
	ConfirmPassword           string `json:"confirm_password" validate:"required_with=Password,omitempty,eqfield=Password"`
	Role                      string `json:"role" validate:"omitempty,oneof=doctor admin"`
	Specialty                 string `json:"specialty" validate:"omitempty"`
	MedicalRegistrationNumber string `json:"medical_registration_number" validate:"omitempty"`
	PhoneNumber               string `json:"phone_number" validate:"omitempty,phone"`
	ConsultationAddress       string `json:"consultation_address" validate:"omitempty"`
}

type UpdateUserRequest struct {
	FullName                  string `json:"full_name" validate:"omitempty,min=2"`
	Email                     string `json:"email" validate:"omitempty,email"`
	Password                  string `json:"password" validate:"omitempty,min=6"`
	ConfirmPassword           string `json:"confirm_password" validate:"required_with=Password,omitempty,eqfield=Password"`
	Role                      string `json:"role" validate:"omitempty,oneof=doctor admin"`
	Specialty                 string `json:"specialty" validate:"omitempty"`
	MedicalRegistrationNumber string `json:"medical_registration_number" validate:"omitempty"`
	PhoneNumber               string `json:"phone_number" validate:"omitempty,phone"`
	ConsultationAddress       string `json:"consultation_address" validate:"omitempty"`
}

// Response DTOs

type UserResponse struct {
	ID                        string    `json:"id"`
	FullName                  string    `json:"full_name"`
	Email                     string    `json:"email"`
	Role                      string    `json:"role"`
	Specialty                 string    `json:"specialty,omitempty"`
	MedicalRegistrationNumber string    `json:"medical_registration_number,omitempty"`
	PhoneNumber               string    `json:"phone_number,omitempty"`
	ConsultationAddress       string    `json:"consultation_address,omitempty"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
