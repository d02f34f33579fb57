package entity

import "time"

// Patient is an entry of the clinic's patient directory. It backs the
// certificate form patient search and the patients listing.
type Patient struct {
	ID                   string    `gorm:"type:varchar(16);primaryKey" json:"id"`
	FullName             string    `gorm:"type:varchar(255);not null;index" json:"full_name"`
	LastName             string    `gorm:"type:varchar(255);index" json:"last_name,omitempty"`
	IdentificationNumber string    `gorm:"type:varchar(50);not null" json:"identification_number"`
	FileNumber           string    `gorm:"type:varchar(50);not null;index" json:"file_number"`
	DateOfBirth          time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Address              string    `gorm:"type:text" json:"address,omitempty"`
	Phone                string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	LastDiagnosis        string    `gorm:"type:text" json:"last_diagnosis,omitempty"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
