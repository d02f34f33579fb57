package converter

import (
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/entity"
	"pediatric-gastro-api/pkg/agecalc"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                   patient.ID,
		FullName:             patient.FullName,
		LastName:             patient.LastName,
		IdentificationNumber: patient.IdentificationNumber,
		FileNumber:           patient.FileNumber,
		DateOfBirth:          patient.DateOfBirth.Format(dateLayout),
		Age:                  agecalc.FromBirthDate(patient.DateOfBirth),
		Address:              patient.Address,
		Phone:                patient.Phone,
		LastDiagnosis:        patient.LastDiagnosis,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
