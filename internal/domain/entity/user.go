package entity

import "time"

// User is a managed account of the clinic staff (administration panel).
// IDs are sequential tokens assigned by the lifecycle on creation (USR001,
// USR002, ...) and never change afterwards.
type User struct {
	ID                        string    `gorm:"type:varchar(16);primaryKey" json:"id"`
	FullName                  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email                     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password                  string    `gorm:"type:text;not null" json:"-"`
	Role                      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	Specialty                 string    `gorm:"type:varchar(255)" json:"specialty,omitempty"`
	MedicalRegistrationNumber string    `gorm:"type:varchar(50)" json:"medical_registration_number,omitempty"`
	PhoneNumber               string    `gorm:"type:varchar(30)" json:"phone_number,omitempty"`
	ConsultationAddress       string    `gorm:"type:text" json:"consultation_address,omitempty"`
	CreatedAt                 time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                 time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RoleDoctor = "doctor"
	RoleAdmin  = "admin"
)
