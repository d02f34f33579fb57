package dto

import (
	"time"

	"pediatric-gastro-api/pkg/numeric"
)

// Request DTOs

type CreateEvaluationRequest struct {
	AppointmentDetails AppointmentDetailRequest  `json:"appointment_details"`
	PatientData        PatientDataRequest        `json:"patient_data"`
	MotherData         ParentDataRequest         `json:"mother_data"`
	FatherData         ParentDataRequest         `json:"father_data"`
	MedicalEvaluation  MedicalEvaluationRequest  `json:"medical_evaluation"`
	LabExams           []LabExamFileRequest      `json:"lab_exams" validate:"omitempty,dive"`
}

type AppointmentDetailRequest struct {
	Date             string `json:"appointment_date" validate:"required,calendardate"`
	Time             string `json:"appointment_time" validate:"required"`
	FileNumber       string `json:"file_number" validate:"required"`
	InsuranceName    string `json:"insurance_name" validate:"omitempty"`
	PediatricianName string `json:"pediatrician_name" validate:"omitempty"`
	ReferringPerson  string `json:"referring_person" validate:"omitempty"`
}

// PatientDataRequest carries the patient section. Age, when present, is
// treated as a client-side cache; the lifecycle re-derives it from the birth
// date on every write.
type PatientDataRequest struct {
	FullName             string `json:"full_name" validate:"required,min=2"`
	IdentificationNumber string `json:"identification_number" validate:"required,min=5"`
	DateOfBirth          string `json:"date_of_birth" validate:"required,birthdate"`
	Age                  *int   `json:"age" validate:"omitempty,gte=0"`
}

type ParentDataRequest struct {
	FullName   string          `json:"full_name" validate:"required,min=2"`
	Age        numeric.Numeric `json:"age" validate:"posinteger"`
	Address    string          `json:"address" validate:"omitempty"`
	Phone      string          `json:"phone" validate:"omitempty,phone"`
	Occupation string          `json:"occupation" validate:"omitempty"`
}

type MedicalEvaluationRequest struct {
	ReasonForConsultation     string                 `json:"reason_for_consultation" validate:"required"`
	CurrentIllnessDescription string                 `json:"current_illness_description" validate:"required"`
	UpperDigestiveSymptoms    string                 `json:"upper_digestive_symptoms" validate:"omitempty"`
	LowerDigestiveSymptoms    string                 `json:"lower_digestive_symptoms" validate:"omitempty"`
	BowelHabits               string                 `json:"bowel_habits" validate:"omitempty"`
	Anthropometrics           AnthropometricsRequest `json:"anthropometrics"`
	GeneralObservations       string                 `json:"general_observations" validate:"omitempty"`
	SystemsReview             string                 `json:"systems_review" validate:"omitempty"`
	PerinatalHistory          string                 `json:"perinatal_history" validate:"omitempty"`
	NutritionHistory          string                 `json:"nutrition_history" validate:"omitempty"`
	DevelopmentHistory        string                 `json:"development_history" validate:"omitempty"`
	Immunizations             string                 `json:"immunizations" validate:"omitempty"`
	PersonalMedicalHistory    string                 `json:"personal_medical_history" validate:"omitempty"`
	FamilyMedicalHistory      string                 `json:"family_medical_history" validate:"omitempty"`
	ObjectiveExamination      string                 `json:"objective_examination" validate:"omitempty"`
	ParaclinicalTests         string                 `json:"paraclinical_tests" validate:"omitempty"`
	DiagnosticImpressions     string                 `json:"diagnostic_impressions" validate:"required"`
	ActionPlan                string                 `json:"action_plan" validate:"required"`
}

// AnthropometricsRequest accepts measurements as JSON numbers or numeric
// strings; height is the one clinically required value.
type AnthropometricsRequest struct {
	Weight           numeric.Numeric `json:"weight" validate:"posnumber"`
	Height           numeric.Numeric `json:"height" validate:"reqnumber,posnumber"`
	Temperature      numeric.Numeric `json:"temperature"`
	CardiacFrequency numeric.Numeric `json:"cardiac_frequency" validate:"posinteger"`
	OxygenSaturation numeric.Numeric `json:"oxygen_saturation" validate:"saturation"`
}

// AgeDerivationRequest models the on-change recomputation of the patient
// age: an empty birth date clears the cached age instead of zeroing it.
type AgeDerivationRequest struct {
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,birthdate"`
}

type AgeDerivationResponse struct {
	Age *int `json:"age"`
}

type LabExamFileRequest struct {
	FileName string `json:"file_name" validate:"required"`
	FileType string `json:"file_type" validate:"required"`
	FileURL  string `json:"file_url" validate:"required,url"`
	Category string `json:"category" validate:"required,oneof=lab imaging"`
}

// Response DTOs

type EvaluationResponse struct {
	ID                 string                    `json:"id"`
	AppointmentDetails AppointmentDetailResponse `json:"appointment_details"`
	PatientData        PatientDataResponse       `json:"patient_data"`
	MotherData         ParentDataResponse        `json:"mother_data"`
	FatherData         ParentDataResponse        `json:"father_data"`
	MedicalEvaluation  MedicalEvaluationResponse `json:"medical_evaluation"`
	LabExams           []LabExamFileResponse     `json:"lab_exams"`
	CreatedAt          time.Time                 `json:"created_at"`
}

type AppointmentDetailResponse struct {
	Date             string `json:"appointment_date"`
	Time             string `json:"appointment_time"`
	FileNumber       string `json:"file_number"`
	InsuranceName    string `json:"insurance_name,omitempty"`
	PediatricianName string `json:"pediatrician_name,omitempty"`
	ReferringPerson  string `json:"referring_person,omitempty"`
}

type PatientDataResponse struct {
	FullName             string `json:"full_name"`
	IdentificationNumber string `json:"identification_number"`
	DateOfBirth          string `json:"date_of_birth"`
	Age                  *int   `json:"age,omitempty"`
}

type ParentDataResponse struct {
	FullName   string `json:"full_name"`
	Age        *int   `json:"age,omitempty"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Occupation string `json:"occupation,omitempty"`
}

type MedicalEvaluationResponse struct {
	ReasonForConsultation     string                  `json:"reason_for_consultation"`
	CurrentIllnessDescription string                  `json:"current_illness_description"`
	UpperDigestiveSymptoms    string                  `json:"upper_digestive_symptoms,omitempty"`
	LowerDigestiveSymptoms    string                  `json:"lower_digestive_symptoms,omitempty"`
	BowelHabits               string                  `json:"bowel_habits,omitempty"`
	Anthropometrics           AnthropometricsResponse `json:"anthropometrics"`
	GeneralObservations       string                  `json:"general_observations,omitempty"`
	SystemsReview             string                  `json:"systems_review,omitempty"`
	PerinatalHistory          string                  `json:"perinatal_history,omitempty"`
	NutritionHistory          string                  `json:"nutrition_history,omitempty"`
	DevelopmentHistory        string                  `json:"development_history,omitempty"`
	Immunizations             string                  `json:"immunizations,omitempty"`
	PersonalMedicalHistory    string                  `json:"personal_medical_history,omitempty"`
	FamilyMedicalHistory      string                  `json:"family_medical_history,omitempty"`
	ObjectiveExamination      string                  `json:"objective_examination,omitempty"`
	ParaclinicalTests         string                  `json:"paraclinical_tests,omitempty"`
	DiagnosticImpressions     string                  `json:"diagnostic_impressions"`
	ActionPlan                string                  `json:"action_plan"`
}

type AnthropometricsResponse struct {
	Weight           string `json:"weight,omitempty"`
	Height           string `json:"height"`
	Temperature      string `json:"temperature,omitempty"`
	CardiacFrequency *int   `json:"cardiac_frequency,omitempty"`
	OxygenSaturation *int   `json:"oxygen_saturation,omitempty"`
}

type LabExamFileResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	FileURL    string    `json:"file_url"`
	Category   string    `json:"category"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type EvaluationListResponse struct {
	Evaluations []EvaluationResponse `json:"evaluations"`
	Total       int                  `json:"total"`
}

type LabExamListResponse struct {
	Exams []LabExamFileResponse `json:"exams"`
	Total int                   `json:"total"`
}
