package dto

import "time"

// Request DTOs

type CreateCertificateRequest struct {
	PatientID           string `json:"patient_id" validate:"omitempty"`
	PatientFullName     string `json:"patient_full_name" validate:"required"`
	PatientIDNumber     string `json:"patient_id_number" validate:"required"`
	PatientFileNumber   string `json:"patient_file_number" validate:"required"`
	PatientAge          string `json:"patient_age" validate:"required"`
	AttendedAtLocation  string `json:"attended_at_location" validate:"omitempty"`
	Diagnosis           string `json:"diagnosis" validate:"required"`
	Procedure           string `json:"procedure" validate:"omitempty"`
	Observations        string `json:"observations" validate:"omitempty"`
	PatientWorkplace    string `json:"patient_workplace" validate:"omitempty"`
	PatientWorkActivity string `json:"patient_work_activity" validate:"omitempty"`
	ContingencyType     string `json:"contingency_type" validate:"omitempty"`
	SymptomsPresent     string `json:"symptoms_present" validate:"omitempty,oneof=SI NO"`
	SymptomsDescription string `json:"symptoms_description" validate:"omitempty"`
	PatientAddress      string `json:"patient_address" validate:"omitempty"`
	PatientPhone        string `json:"patient_phone" validate:"omitempty,phone"`
}

// UpdateCertificateRequest carries the full form again; the edit re-validates
// the same rules as creation. An attention_id in the patch is ignored, the
// identity of the stored record always wins.
type UpdateCertificateRequest struct {
	AttentionID         string `json:"attention_id" validate:"omitempty"`
	PatientID           string `json:"patient_id" validate:"omitempty"`
	PatientFullName     string `json:"patient_full_name" validate:"required"`
	PatientIDNumber     string `json:"patient_id_number" validate:"required"`
	PatientFileNumber   string `json:"patient_file_number" validate:"required"`
	PatientAge          string `json:"patient_age" validate:"required"`
	AttendedAtLocation  string `json:"attended_at_location" validate:"omitempty"`
	Diagnosis           string `json:"diagnosis" validate:"required"`
	Procedure           string `json:"procedure" validate:"omitempty"`
	Observations        string `json:"observations" validate:"omitempty"`
	PatientWorkplace    string `json:"patient_workplace" validate:"omitempty"`
	PatientWorkActivity string `json:"patient_work_activity" validate:"omitempty"`
	ContingencyType     string `json:"contingency_type" validate:"omitempty"`
	SymptomsPresent     string `json:"symptoms_present" validate:"omitempty,oneof=SI NO"`
	SymptomsDescription string `json:"symptoms_description" validate:"omitempty"`
	PatientAddress      string `json:"patient_address" validate:"omitempty"`
	PatientPhone        string `json:"patient_phone" validate:"omitempty,phone"`
}

// Response DTOs

type CertificateResponse struct {
	AttentionID            string    `json:"attention_id"`
	PatientID              string    `json:"patient_id,omitempty"`
	PatientFullName        string    `json:"patient_full_name"`
	PatientIDNumber        string    `json:"patient_id_number"`
	PatientFileNumber      string    `json:"patient_file_number"`
	PatientAge             string    `json:"patient_age"`
	DateOfAttentionNumeric string    `json:"date_of_attention_numeric"`
	DateOfAttentionWritten string    `json:"date_of_attention_written"`
	AttendedAtLocation     string    `json:"attended_at_location"`
	Diagnosis              string    `json:"diagnosis"`
	Procedure              string    `json:"procedure,omitempty"`
	Observations           string    `json:"observations,omitempty"`
	PatientWorkplace       string    `json:"patient_workplace,omitempty"`
	PatientWorkActivity    string    `json:"patient_work_activity,omitempty"`
	ContingencyType        string    `json:"contingency_type"`
	SymptomsPresent        string    `json:"symptoms_present,omitempty"`
	SymptomsDescription    string    `json:"symptoms_description,omitempty"`
	PatientAddress         string    `json:"patient_address,omitempty"`
	PatientPhone           string    `json:"patient_phone,omitempty"`
	DoctorName             string    `json:"doctor_name"`
	DoctorSpecialty        string    `json:"doctor_specialty"`
	DoctorMSP              string    `json:"doctor_msp"`
	DoctorEmail            string    `json:"doctor_email"`
	CreatedAt              time.Time `json:"created_at"`
}

type CertificateListResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
	Total        int                   `json:"total"`
}

// CertificatePrefillResponse is what the form gets after picking a patient
// from the directory search: patient fields filled in, the age already
// derived, and the attention dates stamped.
type CertificatePrefillResponse struct {
	PatientID              string `json:"patient_id"`
	PatientFullName        string `json:"patient_full_name"`
	PatientIDNumber        string `json:"patient_id_number"`
	PatientFileNumber      string `json:"patient_file_number"`
	PatientAge             string `json:"patient_age"`
	PatientAddress         string `json:"patient_address,omitempty"`
	PatientPhone           string `json:"patient_phone,omitempty"`
	Diagnosis              string `json:"diagnosis,omitempty"`
	AttendedAtLocation     string `json:"attended_at_location"`
	ContingencyType        string `json:"contingency_type"`
	DateOfAttentionNumeric string `json:"date_of_attention_numeric"`
	DateOfAttentionWritten string `json:"date_of_attention_written"`
}
