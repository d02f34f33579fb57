package converter

import (
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/entity"
)

func CertificateToResponse(certificate *entity.Certificate) *dto.CertificateResponse {
	if certificate == nil {
		return nil
	}

	return &dto.CertificateResponse{
		AttentionID:            certificate.AttentionID,
		PatientID:              certificate.PatientID,
		PatientFullName:        certificate.PatientFullName,
		PatientIDNumber:        certificate.PatientIDNumber,
		PatientFileNumber:      certificate.PatientFileNumber,
		PatientAge:             certificate.PatientAge,
		DateOfAttentionNumeric: certificate.DateOfAttentionNumeric,
		DateOfAttentionWritten: certificate.DateOfAttentionWritten,
		AttendedAtLocation:     certificate.AttendedAtLocation,
		Diagnosis:              certificate.Diagnosis,
		Procedure:              certificate.Procedure,
		Observations:           certificate.Observations,
		PatientWorkplace:       certificate.PatientWorkplace,
		PatientWorkActivity:    certificate.PatientWorkActivity,
		ContingencyType:        certificate.ContingencyType,
		SymptomsPresent:        certificate.SymptomsPresent,
		SymptomsDescription:    certificate.SymptomsDescription,
		PatientAddress:         certificate.PatientAddress,
		PatientPhone:           certificate.PatientPhone,
		DoctorName:             certificate.DoctorName,
		DoctorSpecialty:        certificate.DoctorSpecialty,
		DoctorMSP:              certificate.DoctorMSP,
		DoctorEmail:            certificate.DoctorEmail,
		CreatedAt:              certificate.CreatedAt,
	}
}

func CertificatesToResponses(certificates []entity.Certificate) []dto.CertificateResponse {
	responses := make([]dto.CertificateResponse, 0, len(certificates))
	for i := range certificates {
		responses = append(responses, *CertificateToResponse(&certificates[i]))
	}
	return responses
}
