package usecase

import (
	"context"
	"errors"
	"time"

	"pediatric-gastro-api/internal/converter"
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/entity"
	"pediatric-gastro-api/internal/domain/repository"
	"pediatric-gastro-api/internal/service"
	"pediatric-gastro-api/pkg/agecalc"
	"pediatric-gastro-api/pkg/identifier"
	"pediatric-gastro-api/pkg/numeric"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, expected YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

type EvaluationUsecase interface {
	CreateEvaluation(ctx context.Context, req *dto.CreateEvaluationRequest) (*dto.EvaluationResponse, error)
	GetEvaluation(ctx context.Context, id string) (*dto.EvaluationResponse, error)
	GetAllEvaluations(ctx context.Context) (*dto.EvaluationListResponse, error)
	AddLabExam(ctx context.Context, evaluationID string, req *dto.LabExamFileRequest) (*dto.LabExamFileResponse, error)
	GetLabExams(ctx context.Context, evaluationID string) (*dto.LabExamListResponse, error)
	GetAllLabExams(ctx context.Context) (*dto.LabExamListResponse, error)
	DeriveAge(req *dto.AgeDerivationRequest) (*dto.AgeDerivationResponse, error)
}

type evaluationUsecase struct {
	log            *logrus.Logger
	evaluationRepo repository.EvaluationRepository
	labExamRepo    repository.LabExamRepository
	patientRepo    repository.PatientRepository
	auditService   service.AuditService
}

func NewEvaluationUsecase(
	log *logrus.Logger,
	evaluationRepo repository.EvaluationRepository,
	labExamRepo repository.LabExamRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) EvaluationUsecase {
	return &evaluationUsecase{
		log:            log,
		evaluationRepo: evaluationRepo,
		labExamRepo:    labExamRepo,
		patientRepo:    patientRepo,
		auditService:   auditService,
	}
}

func (u *evaluationUsecase) CreateEvaluation(ctx context.Context, req *dto.CreateEvaluationRequest) (*dto.EvaluationResponse, error) {
	appointmentDate, err := time.Parse(dateLayout, req.AppointmentDetails.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	dateOfBirth, err := time.Parse(dateLayout, req.PatientData.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// Age is always re-derived from the birth date; a stale value cached by
	// the client is discarded.
	age := agecalc.FromBirthDate(dateOfBirth)

	now := time.Now()
	evaluation := &entity.Evaluation{
		ID: uuid.New(),
		Appointment: entity.AppointmentDetail{
			Date:             appointmentDate,
			Time:             req.AppointmentDetails.Time,
			FileNumber:       req.AppointmentDetails.FileNumber,
			InsuranceName:    req.AppointmentDetails.InsuranceName,
			PediatricianName: req.AppointmentDetails.PediatricianName,
			ReferringPerson:  req.AppointmentDetails.ReferringPerson,
		},
		Patient: entity.PatientData{
			FullName:             req.PatientData.FullName,
			IdentificationNumber: req.PatientData.IdentificationNumber,
			DateOfBirth:          dateOfBirth,
			Age:                  &age,
		},
		MotherData: parentFromRequest(req.MotherData),
		FatherData: parentFromRequest(req.FatherData),
		Medical:    medicalFromRequest(req.MedicalEvaluation),
	}

	for i, exam := range req.LabExams {
		evaluation.LabExams = append(evaluation.LabExams, entity.LabExamFile{
			ID:           uuid.New(),
			EvaluationID: evaluation.ID,
			FileName:     exam.FileName,
			FileType:     exam.FileType,
			FileURL:      exam.FileURL,
			Category:     exam.Category,
			Position:     i,
			UploadedAt:   now,
		})
	}

	if err := u.evaluationRepo.Create(ctx, evaluation); err != nil {
		u.log.Warnf("Failed to create evaluation: %+v", err)
		return nil, err
	}

	if err := u.upsertPatientDirectory(ctx, evaluation); err != nil {
		u.log.Warnf("Failed to update patient directory: %+v", err)
	}

	operatorID := operatorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, operatorID, entity.AuditActionEvaluationCreate, "evaluation", evaluation.ID.String(), evaluation); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.EvaluationToResponse(evaluation), nil
}

func (u *evaluationUsecase) GetEvaluation(ctx context.Context, id string) (*dto.EvaluationResponse, error) {
	evaluationID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrEvaluationNotFound
	}

	evaluation, err := u.evaluationRepo.FindByID(ctx, evaluationID)
	if err != nil {
		u.log.Warnf("Failed to find evaluation: %+v", err)
		return nil, err
	}
	if evaluation == nil {
		return nil, ErrEvaluationNotFound
	}

	return converter.EvaluationToResponse(evaluation), nil
}

func (u *evaluationUsecase) GetAllEvaluations(ctx context.Context) (*dto.EvaluationListResponse, error) {
	evaluations, err := u.evaluationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list evaluations: %+v", err)
		return nil, err
	}

	return &dto.EvaluationListResponse{
		Evaluations: converter.EvaluationsToResponses(evaluations),
		Total:       len(evaluations),
	}, nil
}

func (u *evaluationUsecase) AddLabExam(ctx context.Context, evaluationID string, req *dto.LabExamFileRequest) (*dto.LabExamFileResponse, error) {
	id, err := uuid.Parse(evaluationID)
	if err != nil {
		return nil, ErrEvaluationNotFound
	}

	evaluation, err := u.evaluationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find evaluation: %+v", err)
		return nil, err
	}
	if evaluation == nil {
		return nil, ErrEvaluationNotFound
	}

	position, err := u.labExamRepo.NextPosition(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to compute exam position: %+v", err)
		return nil, err
	}

	exam := &entity.LabExamFile{
		ID:           uuid.New(),
		EvaluationID: id,
		FileName:     req.FileName,
		FileType:     req.FileType,
		FileURL:      req.FileURL,
		Category:     req.Category,
		Position:     position,
		UploadedAt:   time.Now(),
	}

	if err := u.labExamRepo.Create(ctx, exam); err != nil {
		u.log.Warnf("Failed to create lab exam: %+v", err)
		return nil, err
	}

	return converter.LabExamToResponse(exam), nil
}

func (u *evaluationUsecase) GetLabExams(ctx context.Context, evaluationID string) (*dto.LabExamListResponse, error) {
	id, err := uuid.Parse(evaluationID)
	if err != nil {
		return nil, ErrEvaluationNotFound
	}

	exams, err := u.labExamRepo.FindByEvaluationID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to list lab exams: %+v", err)
		return nil, err
	}

	return &dto.LabExamListResponse{
		Exams: converter.LabExamsToResponses(exams),
		Total: len(exams),
	}, nil
}

func (u *evaluationUsecase) GetAllLabExams(ctx context.Context) (*dto.LabExamListResponse, error) {
	exams, err := u.labExamRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list lab exams: %+v", err)
		return nil, err
	}

	return &dto.LabExamListResponse{
		Exams: converter.LabExamsToResponses(exams),
		Total: len(exams),
	}, nil
}

// DeriveAge recomputes the patient age whenever the birth date field changes
// in the form. An empty birth date clears the age rather than zeroing it.
func (u *evaluationUsecase) DeriveAge(req *dto.AgeDerivationRequest) (*dto.AgeDerivationResponse, error) {
	if req.DateOfBirth == "" {
		return &dto.AgeDerivationResponse{Age: nil}, nil
	}

	dateOfBirth, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	age := agecalc.FromBirthDate(dateOfBirth)
	return &dto.AgeDerivationResponse{Age: &age}, nil
}

// upsertPatientDirectory keeps the patient directory in sync with incoming
// evaluations, keyed by identification number.
func (u *evaluationUsecase) upsertPatientDirectory(ctx context.Context, evaluation *entity.Evaluation) error {
	patient, err := u.patientRepo.FindByIdentificationNumber(ctx, evaluation.Patient.IdentificationNumber)
	if err != nil {
		return err
	}

	if patient == nil {
		return u.patientRepo.Create(ctx, &entity.Patient{
			ID:                   identifier.NewPatientID(),
			FullName:             evaluation.Patient.FullName,
			IdentificationNumber: evaluation.Patient.IdentificationNumber,
			FileNumber:           evaluation.Appointment.FileNumber,
			DateOfBirth:          evaluation.Patient.DateOfBirth,
			Address:              evaluation.MotherData.Address,
			Phone:                evaluation.MotherData.Phone,
			LastDiagnosis:        evaluation.Medical.DiagnosticImpressions,
		})
	}

	patient.FullName = evaluation.Patient.FullName
	patient.FileNumber = evaluation.Appointment.FileNumber
	patient.DateOfBirth = evaluation.Patient.DateOfBirth
	patient.LastDiagnosis = evaluation.Medical.DiagnosticImpressions
	return u.patientRepo.Update(ctx, patient)
}

func parentFromRequest(req dto.ParentDataRequest) entity.ParentData {
	return entity.ParentData{
		FullName:   req.FullName,
		Age:        numericToIntPtr(req.Age),
		Address:    req.Address,
		Phone:      req.Phone,
		Occupation: req.Occupation,
	}
}

func medicalFromRequest(req dto.MedicalEvaluationRequest) entity.MedicalEvaluation {
	anthro := entity.Anthropometrics{
		Height:           req.Anthropometrics.Height.Decimal,
		CardiacFrequency: numericToIntPtr(req.Anthropometrics.CardiacFrequency),
		OxygenSaturation: numericToIntPtr(req.Anthropometrics.OxygenSaturation),
	}
	if req.Anthropometrics.Weight.Valid {
		weight := req.Anthropometrics.Weight.Decimal
		anthro.Weight = &weight
	}
	if req.Anthropometrics.Temperature.Valid {
		temperature := req.Anthropometrics.Temperature.Decimal
		anthro.Temperature = &temperature
	}

	return entity.MedicalEvaluation{
		ReasonForConsultation:     req.ReasonForConsultation,
		CurrentIllnessDescription: req.CurrentIllnessDescription,
		UpperDigestiveSymptoms:    req.UpperDigestiveSymptoms,
		LowerDigestiveSymptoms:    req.LowerDigestiveSymptoms,
		BowelHabits:               req.BowelHabits,
		Anthropometrics:           anthro,
		GeneralObservations:       req.GeneralObservations,
		SystemsReview:             req.SystemsReview,
		PerinatalHistory:          req.PerinatalHistory,
		NutritionHistory:          req.NutritionHistory,
		DevelopmentHistory:        req.DevelopmentHistory,
		Immunizations:             req.Immunizations,
		PersonalMedicalHistory:    req.PersonalMedicalHistory,
		FamilyMedicalHistory:      req.FamilyMedicalHistory,
		ObjectiveExamination:      req.ObjectiveExamination,
		ParaclinicalTests:         req.ParaclinicalTests,
		DiagnosticImpressions:     req.DiagnosticImpressions,
		ActionPlan:                req.ActionPlan,
	}
}

func numericToIntPtr(n numeric.Numeric) *int {
	if !n.Valid {
		return nil
	}
	value := int(n.IntPart())
	return &value
}
