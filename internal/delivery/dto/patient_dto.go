package dto

// Response DTOs

type PatientResponse struct {
	ID                   string `json:"id"`
	FullName             string `json:"full_name"`
	LastName             string `json:"last_name,omitempty"`
	IdentificationNumber string `json:"identification_number"`
	FileNumber           string `json:"file_number"`
	DateOfBirth          string `json:"date_of_birth"`
	Age                  int    `json:"age"`
	Address              string `json:"address,omitempty"`
	Phone                string `json:"phone,omitempty"`
	LastDiagnosis        string `json:"last_diagnosis,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
