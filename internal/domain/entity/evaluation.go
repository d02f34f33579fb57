package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Evaluation is one pediatric-gastroenterology consultation record. The form
// sections are flattened into prefixed column groups; lab exams live in their
// own table keyed by evaluation id.
type Evaluation struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Appointment AppointmentDetail `gorm:"embedded;embeddedPrefix:appointment_" json:"appointment_details"`
	Patient     PatientData       `gorm:"embedded;embeddedPrefix:patient_" json:"patient_data"`
	MotherData  ParentData        `gorm:"embedded;embeddedPrefix:mother_" json:"mother_data"`
	FatherData  ParentData        `gorm:"embedded;embeddedPrefix:father_" json:"father_data"`
	Medical     MedicalEvaluation `gorm:"embedded;embeddedPrefix:medical_" json:"medical_evaluation"`
	LabExams    []LabExamFile     `gorm:"foreignKey:EvaluationID" json:"lab_exams,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

type AppointmentDetail struct {
	Date             time.Time `gorm:"type:date;not null" json:"appointment_date"`
	Time             string    `gorm:"type:varchar(10);not null" json:"appointment_time"`
	FileNumber       string    `gorm:"type:varchar(50);not null;index" json:"file_number"`
	InsuranceName    string    `gorm:"type:varchar(255)" json:"insurance_name,omitempty"`
	PediatricianName string    `gorm:"type:varchar(255)" json:"pediatrician_name,omitempty"`
	ReferringPerson  string    `gorm:"type:varchar(255)" json:"referring_person,omitempty"`
}

// PatientData carries the patient section of the form. Age is a cached
// derivation from DateOfBirth, recomputed by the lifecycle whenever the
// birth date changes; nil means "not derived".
type PatientData struct {
	FullName             string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IdentificationNumber string    `gorm:"type:varchar(50);not null" json:"identification_number"`
	DateOfBirth          time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Age                  *int      `gorm:"type:int" json:"age,omitempty"`
}

type ParentData struct {
	FullName   string `gorm:"type:varchar(255)" json:"full_name"`
	Age        *int   `gorm:"type:int" json:"age,omitempty"`
	Address    string `gorm:"type:text" json:"address,omitempty"`
	Phone      string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Occupation string `gorm:"type:varchar(255)" json:"occupation,omitempty"`
}

type MedicalEvaluation struct {
	ReasonForConsultation     string          `gorm:"type:text;not null" json:"reason_for_consultation"`
	CurrentIllnessDescription string          `gorm:"type:text;not null" json:"current_illness_description"`
	UpperDigestiveSymptoms    string          `gorm:"type:text" json:"upper_digestive_symptoms,omitempty"`
	LowerDigestiveSymptoms    string          `gorm:"type:text" json:"lower_digestive_symptoms,omitempty"`
	BowelHabits               string          `gorm:"type:text" json:"bowel_habits,omitempty"`
	Anthropometrics           Anthropometrics `gorm:"embedded;embeddedPrefix:anthro_" json:"anthropometrics"`
	GeneralObservations       string          `gorm:"type:text" json:"general_observations,omitempty"`
	SystemsReview             string          `gorm:"type:text" json:"systems_review,omitempty"`
	PerinatalHistory          string          `gorm:"type:text" json:"perinatal_history,omitempty"`
	NutritionHistory          string          `gorm:"type:text" json:"nutrition_history,omitempty"`
	DevelopmentHistory        string          `gorm:"type:text" json:"development_history,omitempty"`
	Immunizations             string          `gorm:"type:text" json:"immunizations,omitempty"`
	PersonalMedicalHistory    string          `gorm:"type:text" json:"personal_medical_history,omitempty"`
	FamilyMedicalHistory      string          `gorm:"type:text" json:"family_medical_history,omitempty"`
	ObjectiveExamination      string          `gorm:"type:text" json:"objective_examination,omitempty"`
	ParaclinicalTests         string          `gorm:"type:text" json:"paraclinical_tests,omitempty"`
	DiagnosticImpressions     string          `gorm:"type:text;not null" json:"diagnostic_impressions"`
	ActionPlan                string          `gorm:"type:text;not null" json:"action_plan"`
}

type Anthropometrics struct {
	Weight           *decimal.Decimal `gorm:"type:numeric(6,2)" json:"weight,omitempty"`
	Height           decimal.Decimal  `gorm:"type:numeric(6,2);not null" json:"height"`
	Temperature      *decimal.Decimal `gorm:"type:numeric(4,1)" json:"temperature,omitempty"`
	CardiacFrequency *int             `gorm:"type:int" json:"cardiac_frequency,omitempty"`
	OxygenSaturation *int             `gorm:"type:int" json:"oxygen_saturation,omitempty"`
}
