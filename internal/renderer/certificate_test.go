package renderer

import (
	"testing"

	"pediatric-gastro-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCertificate() *entity.Certificate {
	return &entity.Certificate{
		AttentionID:            "A1B2C3D4",
		PatientFullName:        "María José Andrade",
		PatientIDNumber:        "1712345678",
		PatientFileNumber:      "HC-0042",
		PatientAge:             "8 años",
		DateOfAttentionNumeric: "28/08/2026",
		DateOfAttentionWritten: "28 de agosto de 2026",
		AttendedAtLocation:     entity.DefaultAttendedAtLocation,
		Diagnosis:              "Gastritis aguda",
		ContingencyType:        entity.DefaultContingencyType,
		DoctorName:             "Dr. Marco Vinicio Yumiceba",
		DoctorSpecialty:        "Gastroenterología Pediátrica",
		DoctorMSP:              "MSP-17542",
		DoctorEmail:            "doctor@clinica.ec",
	}
}

func render(t *testing.T, certificate *entity.Certificate) string {
	t.Helper()
	r, err := NewCertificateRenderer()
	require.NoError(t, err)
	html, err := r.Render(certificate)
	require.NoError(t, err)
	return string(html)
}

func TestRenderFillsAllSections(t *testing.T) {
	html := render(t, sampleCertificate())

	assert.Contains(t, html, "A1B2C3D4")
	assert.Contains(t, html, "María José Andrade")
	assert.Contains(t, html, "1712345678")
	assert.Contains(t, html, "HC-0042")
	assert.Contains(t, html, "8 años")
	assert.Contains(t, html, "28/08/2026")
	assert.Contains(t, html, "28 de agosto de 2026")
	assert.Contains(t, html, "Gastritis aguda")
	assert.Contains(t, html, "Dr. Marco Vinicio Yumiceba")
	assert.Contains(t, html, "MSP-17542")
}

func TestRenderPlaceholdersForEmptyOptionals(t *testing.T) {
	html := render(t, sampleCertificate())

	// Address, phone, workplace, activity, procedure and observations are
	// all empty in the sample.
	assert.Contains(t, html, "N/A")

	filled := sampleCertificate()
	filled.Procedure = "Endoscopia digestiva alta"
	html = render(t, filled)
	assert.Contains(t, html, "Endoscopia digestiva alta")
}

func TestRenderSymptomsSection(t *testing.T) {
	t.Run("hidden when answer is no", func(t *testing.T) {
		certificate := sampleCertificate()
		certificate.SymptomsPresent = entity.SymptomsNo
		certificate.SymptomsDescription = "no debería aparecer"

		html := render(t, certificate)
		assert.NotContains(t, html, "Sintomatología")
		assert.NotContains(t, html, "no debería aparecer")
	})

	t.Run("hidden when unanswered", func(t *testing.T) {
		html := render(t, sampleCertificate())
		assert.NotContains(t, html, "Sintomatología")
	})

	t.Run("shown when answer is yes", func(t *testing.T) {
		certificate := sampleCertificate()
		certificate.SymptomsPresent = entity.SymptomsYes
		certificate.SymptomsDescription = "Dolor epigástrico y náusea"

		html := render(t, certificate)
		assert.Contains(t, html, "Sintomatología referida")
		assert.Contains(t, html, "Dolor epigástrico y náusea")
	})
}

func TestRenderEscapesUserInput(t *testing.T) {
	certificate := sampleCertificate()
	certificate.Diagnosis = `<script>alert("x")</script>`

	html := render(t, certificate)
	assert.NotContains(t, html, `<script>alert`)
}
