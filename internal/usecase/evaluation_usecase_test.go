package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/repository/memory"
	"pediatric-gastro-api/internal/service"
	"pediatric-gastro-api/pkg/numeric"

	"github.com/stretchr/testify/assert"
)

func newEvaluationFixture() (EvaluationUsecase, *memory.PatientStore) {
	log := testLogger()
	patientStore := memory.NewPatientStore()
	uc := NewEvaluationUsecase(
		log,
		memory.NewEvaluationStore(),
		memory.NewLabExamStore(),
		patientStore,
		service.NewAuditService(log, memory.NewAuditLogStore()),
	)
	return uc, patientStore
}

func createEvaluationRequest() *dto.CreateEvaluationRequest {
	num := func(s string) numeric.Numeric {
		n, _ := numeric.Parse(s)
		return n
	}

	return &dto.CreateEvaluationRequest{
		AppointmentDetails: dto.AppointmentDetailRequest{
			Date:       "2026-08-28",
			Time:       "09:30",
			FileNumber: "HC-0042",
		},
		PatientData: dto.PatientDataRequest{
			FullName:             "María José Andrade",
			IdentificationNumber: "1712345678",
			DateOfBirth:          "2018-03-14",
		},
		MotherData: dto.ParentDataRequest{
			FullName: "Carmen Andrade",
			Age:      num("34"),
			Phone:    "+593 99 123 4567",
		},
		FatherData: dto.ParentDataRequest{
			FullName: "Luis Pérez",
		},
		MedicalEvaluation: dto.MedicalEvaluationRequest{
			ReasonForConsultation:     "Dolor abdominal recurrente",
			CurrentIllnessDescription: "Tres semanas de evolución",
			Anthropometrics: dto.AnthropometricsRequest{
				Weight:           num("22.5"),
				Height:           num("118"),
				CardiacFrequency: num("96"),
				OxygenSaturation: num("98"),
			},
			DiagnosticImpressions: "Sospecha de gastritis",
			ActionPlan:            "Endoscopia digestiva alta",
		},
	}
}

func TestCreateEvaluationDerivesAge(t *testing.T) {
	uc, _ := newEvaluationFixture()
	ctx := context.Background()

	req := createEvaluationRequest()
	// A stale client-cached age must be overridden by the derivation.
	stale := 99
	req.PatientData.Age = &stale

	created, err := uc.CreateEvaluation(ctx, req)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	birth := time.Date(2018, time.March, 14, 0, 0, 0, 0, time.UTC)
	years := time.Now().Year() - birth.Year()
	if birth.AddDate(years, 0, 0).After(time.Now()) {
		years--
	}
	if assert.NotNil(t, created.PatientData.Age) {
		assert.Equal(t, years, *created.PatientData.Age)
	}
}

func TestCreateEvaluationConvertsMeasurements(t *testing.T) {
	uc, _ := newEvaluationFixture()

	created, err := uc.CreateEvaluation(context.Background(), createEvaluationRequest())
	assert.NoError(t, err)

	anthro := created.MedicalEvaluation.Anthropometrics
	assert.Equal(t, "22.5", anthro.Weight)
	assert.Equal(t, "118", anthro.Height)
	assert.Empty(t, anthro.Temperature)
	if assert.NotNil(t, anthro.CardiacFrequency) {
		assert.Equal(t, 96, *anthro.CardiacFrequency)
	}
	if assert.NotNil(t, anthro.OxygenSaturation) {
		assert.Equal(t, 98, *anthro.OxygenSaturation)
	}

	if assert.NotNil(t, created.MotherData.Age) {
		assert.Equal(t, 34, *created.MotherData.Age)
	}
	assert.Nil(t, created.FatherData.Age)
}

func TestCreateEvaluationRejectsBadDates(t *testing.T) {
	uc, _ := newEvaluationFixture()

	req := createEvaluationRequest()
	req.PatientData.DateOfBirth = "14/03/2018"
	_, err := uc.CreateEvaluation(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	req = createEvaluationRequest()
	req.AppointmentDetails.Date = "not-a-date"
	_, err = uc.CreateEvaluation(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestCreateEvaluationUpsertsPatientDirectory(t *testing.T) {
	uc, patientStore := newEvaluationFixture()
	ctx := context.Background()

	_, err := uc.CreateEvaluation(ctx, createEvaluationRequest())
	assert.NoError(t, err)

	patient, err := patientStore.FindByIdentificationNumber(ctx, "1712345678")
	assert.NoError(t, err)
	if assert.NotNil(t, patient) {
		assert.Equal(t, "María José Andrade", patient.FullName)
		assert.Equal(t, "HC-0042", patient.FileNumber)
		assert.Equal(t, "Sospecha de gastritis", patient.LastDiagnosis)
	}

	// A second visit updates the same directory entry instead of adding one.
	req := createEvaluationRequest()
	req.MedicalEvaluation.DiagnosticImpressions = "Gastritis confirmada"
	_, err = uc.CreateEvaluation(ctx, req)
	assert.NoError(t, err)

	patients, err := patientStore.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, patients, 1)
	assert.Equal(t, "Gastritis confirmada", patients[0].LastDiagnosis)
}

func TestLabExamPositionsFollowUploadOrder(t *testing.T) {
	uc, _ := newEvaluationFixture()
	ctx := context.Background()

	created, err := uc.CreateEvaluation(ctx, createEvaluationRequest())
	assert.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := uc.AddLabExam(ctx, created.ID, &dto.LabExamFileRequest{
			FileName: fmt.Sprintf("resultado-%d.pdf", i),
			FileType: "application/pdf",
			FileURL:  fmt.Sprintf("https://storage.clinica.ec/exams/resultado-%d.pdf", i),
			Category: "lab",
		})
		assert.NoError(t, err)
	}

	exams, err := uc.GetLabExams(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, exams.Total)
	assert.Equal(t, "resultado-0.pdf", exams.Exams[0].FileName)
	assert.Equal(t, "resultado-2.pdf", exams.Exams[2].FileName)
}

func TestAddLabExamMissingEvaluation(t *testing.T) {
	uc, _ := newEvaluationFixture()

	_, err := uc.AddLabExam(context.Background(), "not-a-uuid", &dto.LabExamFileRequest{
		FileName: "x.pdf", FileType: "application/pdf", FileURL: "https://example.com/x.pdf", Category: "lab",
	})
	assert.ErrorIs(t, err, ErrEvaluationNotFound)

	_, err = uc.AddLabExam(context.Background(), "8f14e45f-ceea-467f-a8cb-4f5ed2b2c1a4", &dto.LabExamFileRequest{
		FileName: "x.pdf", FileType: "application/pdf", FileURL: "https://example.com/x.pdf", Category: "lab",
	})
	assert.ErrorIs(t, err, ErrEvaluationNotFound)
}

func TestDeriveAge(t *testing.T) {
	uc, _ := newEvaluationFixture()

	t.Run("whole years from birth date", func(t *testing.T) {
		birth := time.Now().AddDate(-6, 0, -1)
		result, err := uc.DeriveAge(&dto.AgeDerivationRequest{DateOfBirth: birth.Format("2006-01-02")})
		assert.NoError(t, err)
		if assert.NotNil(t, result.Age) {
			assert.Equal(t, 6, *result.Age)
		}
	})

	t.Run("empty birth date clears the age", func(t *testing.T) {
		result, err := uc.DeriveAge(&dto.AgeDerivationRequest{})
		assert.NoError(t, err)
		assert.Nil(t, result.Age)
	})

	t.Run("unparseable birth date", func(t *testing.T) {
		_, err := uc.DeriveAge(&dto.AgeDerivationRequest{DateOfBirth: "14/03/2018"})
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})
}
