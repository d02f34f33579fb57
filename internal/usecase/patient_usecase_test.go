package usecase

import (
	"context"
	"testing"
	"time"

	"pediatric-gastro-api/internal/domain/entity"
	"pediatric-gastro-api/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientFixture(t *testing.T) PatientUsecase {
	t.Helper()

	store := memory.NewPatientStore()
	ctx := context.Background()
	patients := []entity.Patient{
		{ID: "PAT-00000001", FullName: "María José Andrade", LastName: "Andrade", IdentificationNumber: "1712345678", FileNumber: "HC-0001", DateOfBirth: time.Date(2018, time.March, 14, 0, 0, 0, 0, time.UTC)},
		{ID: "PAT-00000002", FullName: "Juan Sebastián Paredes", LastName: "Paredes", IdentificationNumber: "1798765432", FileNumber: "HC-0002", DateOfBirth: time.Date(2020, time.November, 2, 0, 0, 0, 0, time.UTC)},
	}
	for i := range patients {
		require.NoError(t, store.Create(ctx, &patients[i]))
	}

	return NewPatientUsecase(testLogger(), store)
}

func TestGetPatient(t *testing.T) {
	uc := newPatientFixture(t)

	patient, err := uc.GetPatient(context.Background(), "PAT-00000001")
	assert.NoError(t, err)
	assert.Equal(t, "María José Andrade", patient.FullName)

	_, err = uc.GetPatient(context.Background(), "PAT-MISSING1")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestSearchPatients(t *testing.T) {
	uc := newPatientFixture(t)
	ctx := context.Background()

	t.Run("blank term lists the directory", func(t *testing.T) {
		result, err := uc.SearchPatients(ctx, "   ")
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("case-insensitive name match", func(t *testing.T) {
		result, err := uc.SearchPatients(ctx, "paredes")
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, "Juan Sebastián Paredes", result.Patients[0].FullName)
	})

	t.Run("no matches", func(t *testing.T) {
		result, err := uc.SearchPatients(ctx, "zzz")
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Total)
	})
}
