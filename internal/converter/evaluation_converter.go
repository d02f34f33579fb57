package converter

import (
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func EvaluationToResponse(evaluation *entity.Evaluation) *dto.EvaluationResponse {
	if evaluation == nil {
		return nil
	}

	return &dto.EvaluationResponse{
		ID: evaluation.ID.String(),
		AppointmentDetails: dto.AppointmentDetailResponse{
			Date:             evaluation.Appointment.Date.Format(dateLayout),
			Time:             evaluation.Appointment.Time,
			FileNumber:       evaluation.Appointment.FileNumber,
			InsuranceName:    evaluation.Appointment.InsuranceName,
			PediatricianName: evaluation.Appointment.PediatricianName,
			ReferringPerson:  evaluation.Appointment.ReferringPerson,
		},
		PatientData: dto.PatientDataResponse{
			FullName:             evaluation.Patient.FullName,
			IdentificationNumber: evaluation.Patient.IdentificationNumber,
			DateOfBirth:          evaluation.Patient.DateOfBirth.Format(dateLayout),
			Age:                  evaluation.Patient.Age,
		},
		MotherData:        parentToResponse(evaluation.MotherData),
		FatherData:        parentToResponse(evaluation.FatherData),
		MedicalEvaluation: medicalToResponse(evaluation.Medical),
		LabExams:          LabExamsToResponses(evaluation.LabExams),
		CreatedAt:         evaluation.CreatedAt,
	}
}

func EvaluationsToResponses(evaluations []entity.Evaluation) []dto.EvaluationResponse {
	responses := make([]dto.EvaluationResponse, 0, len(evaluations))
	for i := range evaluations {
		responses = append(responses, *EvaluationToResponse(&evaluations[i]))
	}
	return responses
}

func parentToResponse(parent entity.ParentData) dto.ParentDataResponse {
	return dto.ParentDataResponse{
		FullName:   parent.FullName,
		Age:        parent.Age,
		Address:    parent.Address,
		Phone:      parent.Phone,
		Occupation: parent.Occupation,
	}
}

func medicalToResponse(medical entity.MedicalEvaluation) dto.MedicalEvaluationResponse {
	anthro := dto.AnthropometricsResponse{
		Height:           medical.Anthropometrics.Height.String(),
		CardiacFrequency: medical.Anthropometrics.CardiacFrequency,
		OxygenSaturation: medical.Anthropometrics.OxygenSaturation,
	}
	if medical.Anthropometrics.Weight != nil {
		anthro.Weight = medical.Anthropometrics.Weight.String()
	}
	if medical.Anthropometrics.Temperature != nil {
		anthro.Temperature = medical.Anthropometrics.Temperature.String()
	}

	return dto.MedicalEvaluationResponse{
		ReasonForConsultation:     medical.ReasonForConsultation,
		CurrentIllnessDescription: medical.CurrentIllnessDescription,
		UpperDigestiveSymptoms:    medical.UpperDigestiveSymptoms,
		LowerDigestiveSymptoms:    medical.LowerDigestiveSymptoms,
		BowelHabits:               medical.BowelHabits,
		Anthropometrics:           anthro,
		GeneralObservations:       medical.GeneralObservations,
		SystemsReview:             medical.SystemsReview,
		PerinatalHistory:          medical.PerinatalHistory,
		NutritionHistory:          medical.NutritionHistory,
		DevelopmentHistory:        medical.DevelopmentHistory,
		Immunizations:             medical.Immunizations,
		PersonalMedicalHistory:    medical.PersonalMedicalHistory,
		FamilyMedicalHistory:      medical.FamilyMedicalHistory,
		ObjectiveExamination:      medical.ObjectiveExamination,
		ParaclinicalTests:         medical.ParaclinicalTests,
		DiagnosticImpressions:     medical.DiagnosticImpressions,
		ActionPlan:                medical.ActionPlan,
	}
}

func LabExamToResponse(exam *entity.LabExamFile) *dto.LabExamFileResponse {
	if exam == nil {
		return nil
	}
	return &dto.LabExamFileResponse{
		ID:         exam.ID.String(),
		FileName:   exam.FileName,
		FileType:   exam.FileType,
		FileURL:    exam.FileURL,
		Category:   exam.Category,
		UploadedAt: exam.UploadedAt,
	}
}

func LabExamsToResponses(exams []entity.LabExamFile) []dto.LabExamFileResponse {
	responses := make([]dto.LabExamFileResponse, 0, len(exams))
	for i := range exams {
		responses = append(responses, *LabExamToResponse(&exams[i]))
	}
	return responses
}
