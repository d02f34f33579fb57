package usecase

import (
	"context"
	"testing"
	"time"

	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/entity"
	"pediatric-gastro-api/internal/renderer"
	"pediatric-gastro-api/internal/repository/memory"
	"pediatric-gastro-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCertificateFixture(t *testing.T) (CertificateUsecase, *memory.PatientStore, *fakeEditSessions) {
	t.Helper()

	log := testLogger()
	userStore := memory.NewUserStore()
	patientStore := memory.NewPatientStore()
	editSessions := newFakeEditSessions()

	require.NoError(t, userStore.Create(context.Background(), &entity.User{
		ID:                        "USR001",
		FullName:                  "Dr. Marco Vinicio Yumiceba",
		Email:                     "doctor@clinica.ec",
		Role:                      entity.RoleDoctor,
		Specialty:                 "Gastroenterología Pediátrica",
		MedicalRegistrationNumber: "MSP-17542",
	}))

	certificateRenderer, err := renderer.NewCertificateRenderer()
	require.NoError(t, err)

	uc := NewCertificateUsecase(
		log,
		memory.NewCertificateStore(),
		patientStore,
		userStore,
		certificateRenderer,
		editSessions,
		service.NewAuditService(log, memory.NewAuditLogStore()),
	)
	return uc, patientStore, editSessions
}

func createCertificateRequest() *dto.CreateCertificateRequest {
	return &dto.CreateCertificateRequest{
		PatientFullName:   "María José Andrade",
		PatientIDNumber:   "1712345678",
		PatientFileNumber: "HC-0042",
		PatientAge:        "8 años",
		Diagnosis:         "Gastritis aguda",
	}
}

func TestGenerateCertificate(t *testing.T) {
	uc, _, _ := newCertificateFixture(t)
	ctx := operatorContext("USR001")

	created, err := uc.GenerateCertificate(ctx, createCertificateRequest())
	assert.NoError(t, err)

	assert.Regexp(t, `^[0-9A-F]{8}$`, created.AttentionID)

	// Untouched fields fall back to the clinic defaults.
	assert.Equal(t, entity.DefaultAttendedAtLocation, created.AttendedAtLocation)
	assert.Equal(t, entity.DefaultContingencyType, created.ContingencyType)

	// Attention dates are stamped at creation in both shapes.
	now := time.Now()
	assert.Equal(t, now.Format("02/01/2006"), created.DateOfAttentionNumeric)
	assert.NotEmpty(t, created.DateOfAttentionWritten)

	// Doctor fields come from the operator, not the request.
	assert.Equal(t, "Dr. Marco Vinicio Yumiceba", created.DoctorName)
	assert.Equal(t, "Gastroenterología Pediátrica", created.DoctorSpecialty)
	assert.Equal(t, "MSP-17542", created.DoctorMSP)
	assert.Equal(t, "doctor@clinica.ec", created.DoctorEmail)
}

func TestGenerateCertificateAttentionIDsDiffer(t *testing.T) {
	uc, _, _ := newCertificateFixture(t)
	ctx := operatorContext("USR001")

	first, err := uc.GenerateCertificate(ctx, createCertificateRequest())
	assert.NoError(t, err)
	second, err := uc.GenerateCertificate(ctx, createCertificateRequest())
	assert.NoError(t, err)
	assert.NotEqual(t, first.AttentionID, second.AttentionID)
}

func TestUpdateCertificatePreservesIdentity(t *testing.T) {
	uc, _, _ := newCertificateFixture(t)
	ctx := operatorContext("USR001")

	created, err := uc.GenerateCertificate(ctx, createCertificateRequest())
	assert.NoError(t, err)

	updated, err := uc.UpdateCertificate(ctx, created.AttentionID, &dto.UpdateCertificateRequest{
		// A different attention id in the patch is ignored.
		AttentionID:       "HACKED01",
		PatientFullName:   "María José Andrade",
		PatientIDNumber:   "1712345678",
		PatientFileNumber: "HC-0042",
		PatientAge:        "8 años",
		Diagnosis:         "Gastritis crónica",
	})
	assert.NoError(t, err)

	assert.Equal(t, created.AttentionID, updated.AttentionID)
	assert.Equal(t, "Gastritis crónica", updated.Diagnosis)

	// Doctor stamp and attention dates survive the edit.
	assert.Equal(t, created.DoctorName, updated.DoctorName)
	assert.Equal(t, created.DoctorMSP, updated.DoctorMSP)
	assert.Equal(t, created.DateOfAttentionNumeric, updated.DateOfAttentionNumeric)
	assert.Equal(t, created.DateOfAttentionWritten, updated.DateOfAttentionWritten)
}

func TestUpdateCertificateMissing(t *testing.T) {
	uc, _, _ := newCertificateFixture(t)

	_, err := uc.UpdateCertificate(operatorContext("USR001"), "AAAAAAAA", &dto.UpdateCertificateRequest{
		PatientFullName:   "X",
		PatientIDNumber:   "123456",
		PatientFileNumber: "HC-1",
		PatientAge:        "1 año",
		Diagnosis:         "D",
	})
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}

func TestDeleteCertificateIsIdempotent(t *testing.T) {
	uc, _, editSessions := newCertificateFixture(t)
	ctx := operatorContext("USR001")

	created, err := uc.GenerateCertificate(ctx, createCertificateRequest())
	assert.NoError(t, err)

	_, err = uc.BeginEdit(ctx, created.AttentionID)
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteCertificate(ctx, created.AttentionID))
	_, err = uc.GetCertificate(ctx, created.AttentionID)
	assert.ErrorIs(t, err, ErrCertificateNotFound)

	// The pending edit of the removed record is dropped too.
	_, ok, err := editSessions.CurrentEdit(ctx, "USR001", service.EditTargetCertificate)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, uc.DeleteCertificate(ctx, created.AttentionID))
}

func TestPrefillFromPatient(t *testing.T) {
	uc, patientStore, _ := newCertificateFixture(t)
	ctx := operatorContext("USR001")

	birth := time.Now().AddDate(-8, 0, -30)
	require.NoError(t, patientStore.Create(ctx, &entity.Patient{
		ID:                   "PAT-0A1B2C3D",
		FullName:             "María José Andrade",
		IdentificationNumber: "1712345678",
		FileNumber:           "HC-0042",
		DateOfBirth:          birth,
		Address:              "La Floresta, Quito",
		Phone:                "+593 99 123 4567",
		LastDiagnosis:        "Gastritis aguda",
	}))

	prefill, err := uc.PrefillFromPatient(ctx, "PAT-0A1B2C3D")
	assert.NoError(t, err)

	assert.Equal(t, "María José Andrade", prefill.PatientFullName)
	assert.Equal(t, "8 años", prefill.PatientAge)
	assert.Equal(t, "Gastritis aguda", prefill.Diagnosis)
	assert.Equal(t, entity.DefaultAttendedAtLocation, prefill.AttendedAtLocation)
	assert.Equal(t, entity.DefaultContingencyType, prefill.ContingencyType)
	assert.Equal(t, time.Now().Format("02/01/2006"), prefill.DateOfAttentionNumeric)
}

func TestPrefillFromUnknownPatient(t *testing.T) {
	uc, _, _ := newCertificateFixture(t)

	_, err := uc.PrefillFromPatient(operatorContext("USR001"), "PAT-MISSING1")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestRenderCertificate(t *testing.T) {
	uc, _, _ := newCertificateFixture(t)
	ctx := operatorContext("USR001")

	req := createCertificateRequest()
	req.SymptomsPresent = entity.SymptomsNo
	created, err := uc.GenerateCertificate(ctx, req)
	assert.NoError(t, err)

	html, err := uc.Render(ctx, created.AttentionID)
	assert.NoError(t, err)

	assert.Contains(t, string(html), created.AttentionID)
	assert.Contains(t, string(html), "Gastritis aguda")
	// Empty optional fields render as the placeholder.
	assert.Contains(t, string(html), "N/A")
	// The symptoms block is reserved for an affirmative answer.
	assert.NotContains(t, string(html), "Sintomatología")
}

func TestRenderMissingCertificate(t *testing.T) {
	uc, _, _ := newCertificateFixture(t)

	_, err := uc.Render(operatorContext("USR001"), "AAAAAAAA")
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}

func TestWrittenSpanishDate(t *testing.T) {
	assert.Equal(t, "28 de agosto de 2026", writtenSpanishDate(time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 de enero de 2027", writtenSpanishDate(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
