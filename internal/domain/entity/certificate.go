package entity

import "time"

// Certificate is a generated medical certificate. AttentionID is the natural
// key: an 8-character uppercase token generated once at creation, preserved
// across edits no matter what the patch carries. Doctor fields are stamped
// from the operator who generated the certificate and are not editable
// afterwards.
type Certificate struct {
	AttentionID            string    `gorm:"type:char(8);primaryKey" json:"attention_id"`
	PatientID              string    `gorm:"type:varchar(16);index" json:"patient_id,omitempty"`
	PatientFullName        string    `gorm:"type:varchar(255);not null" json:"patient_full_name"`
	PatientIDNumber        string    `gorm:"type:varchar(50);not null" json:"patient_id_number"`
	PatientFileNumber      string    `gorm:"type:varchar(50);not null" json:"patient_file_number"`
	PatientAge             string    `gorm:"type:varchar(20);not null" json:"patient_age"`
	DateOfAttentionNumeric string    `gorm:"type:varchar(10);not null" json:"date_of_attention_numeric"`
	DateOfAttentionWritten string    `gorm:"type:varchar(60);not null" json:"date_of_attention_written"`
	AttendedAtLocation     string    `gorm:"type:varchar(255);not null" json:"attended_at_location"`
	Diagnosis              string    `gorm:"type:text;not null" json:"diagnosis"`
	Procedure              string    `gorm:"type:text" json:"procedure,omitempty"`
	Observations           string    `gorm:"type:text" json:"observations,omitempty"`
	PatientWorkplace       string    `gorm:"type:varchar(255)" json:"patient_workplace,omitempty"`
	PatientWorkActivity    string    `gorm:"type:varchar(255)" json:"patient_work_activity,omitempty"`
	ContingencyType        string    `gorm:"type:varchar(100);not null" json:"contingency_type"`
	SymptomsPresent        string    `gorm:"type:varchar(2)" json:"symptoms_present,omitempty"`
	SymptomsDescription    string    `gorm:"type:text" json:"symptoms_description,omitempty"`
	PatientAddress         string    `gorm:"type:text" json:"patient_address,omitempty"`
	PatientPhone           string    `gorm:"type:varchar(30)" json:"patient_phone,omitempty"`
	DoctorName             string    `gorm:"type:varchar(255);not null" json:"doctor_name"`
	DoctorSpecialty        string    `gorm:"type:varchar(255);not null" json:"doctor_specialty"`
	DoctorMSP              string    `gorm:"type:varchar(50);not null" json:"doctor_msp"`
	DoctorEmail            string    `gorm:"type:varchar(255);not null" json:"doctor_email"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Certificate) TableName() string {
	return "certificates"
}

// Symptoms answer values
const (
	SymptomsYes = "SI"
	SymptomsNo  = "NO"
)

// Certificate field defaults
const (
	DefaultAttendedAtLocation = "CONSULTA EXTERNA de esta casa de salud"
	DefaultContingencyType    = "Enfermedad general"
)
