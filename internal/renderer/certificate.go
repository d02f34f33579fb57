package renderer

import (
	"bytes"
	"html/template"

	"pediatric-gastro-api/internal/domain/entity"
)

// CertificateRenderer produces the printable HTML view of a finalized
// certificate. Optional fields that were left empty render as "N/A"; the
// symptoms block only appears when the patient answered yes.
type CertificateRenderer struct {
	tmpl *template.Template
}

func NewCertificateRenderer() (*CertificateRenderer, error) {
	tmpl, err := template.New("certificate").Funcs(template.FuncMap{
		"orNA": orNA,
	}).Parse(certificateTemplate)
	if err != nil {
		return nil, err
	}
	return &CertificateRenderer{tmpl: tmpl}, nil
}

func (r *CertificateRenderer) Render(certificate *entity.Certificate) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, certificateView{
		Certificate:  certificate,
		ShowSymptoms: certificate.SymptomsPresent == entity.SymptomsYes,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type certificateView struct {
	Certificate  *entity.Certificate
	ShowSymptoms bool
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

const certificateTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Certificado Médico {{.Certificate.AttentionID}}</title>
<style>
  body { font-family: "Times New Roman", serif; margin: 40px auto; max-width: 720px; color: #1a1a1a; }
  h1 { text-align: center; font-size: 20px; letter-spacing: 1px; }
  .attention-id { text-align: right; font-size: 12px; color: #555; }
  table { width: 100%; border-collapse: collapse; margin: 16px 0; }
  td { padding: 6px 8px; border: 1px solid #999; font-size: 13px; vertical-align: top; }
  td.label { width: 35%; font-weight: bold; background: #f3f3f3; }
  .section-title { font-weight: bold; margin-top: 24px; font-size: 14px; text-transform: uppercase; }
  .signature { margin-top: 64px; text-align: center; }
  .signature .line { border-top: 1px solid #1a1a1a; width: 280px; margin: 0 auto 4px; }
  .signature p { margin: 2px 0; font-size: 13px; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>CERTIFICADO MÉDICO</h1>
<p class="attention-id">N.º de atención: {{.Certificate.AttentionID}}</p>

<div class="section-title">Datos del paciente</div>
<table>
  <tr><td class="label">Nombre completo</td><td>{{.Certificate.PatientFullName}}</td></tr>
  <tr><td class="label">Cédula de identidad</td><td>{{.Certificate.PatientIDNumber}}</td></tr>
  <tr><td class="label">N.º de historia clínica</td><td>{{.Certificate.PatientFileNumber}}</td></tr>
  <tr><td class="label">Edad</td><td>{{.Certificate.PatientAge}}</td></tr>
  <tr><td class="label">Dirección</td><td>{{orNA .Certificate.PatientAddress}}</td></tr>
  <tr><td class="label">Teléfono</td><td>{{orNA .Certificate.PatientPhone}}</td></tr>
  <tr><td class="label">Lugar de trabajo</td><td>{{orNA .Certificate.PatientWorkplace}}</td></tr>
  <tr><td class="label">Actividad laboral</td><td>{{orNA .Certificate.PatientWorkActivity}}</td></tr>
</table>

<div class="section-title">Datos de la atención</div>
<table>
  <tr><td class="label">Fecha de atención</td><td>{{.Certificate.DateOfAttentionNumeric}} ({{.Certificate.DateOfAttentionWritten}})</td></tr>
  <tr><td class="label">Atendido en</td><td>{{.Certificate.AttendedAtLocation}}</td></tr>
  <tr><td class="label">Tipo de contingencia</td><td>{{.Certificate.ContingencyType}}</td></tr>
  <tr><td class="label">Diagnóstico</td><td>{{.Certificate.Diagnosis}}</td></tr>
  <tr><td class="label">Procedimiento</td><td>{{orNA .Certificate.Procedure}}</td></tr>
  <tr><td class="label">Observaciones</td><td>{{orNA .Certificate.Observations}}</td></tr>
</table>
{{if .ShowSymptoms}}
<div class="section-title">Sintomatología referida</div>
<table>
  <tr><td class="label">Presenta síntomas</td><td>SI</td></tr>
  <tr><td class="label">Descripción</td><td>{{orNA .Certificate.SymptomsDescription}}</td></tr>
</table>
{{end}}
<div class="signature">
  <div class="line"></div>
  <p>{{.Certificate.DoctorName}}</p>
  <p>{{.Certificate.DoctorSpecialty}}</p>
  <p>MSP: {{.Certificate.DoctorMSP}}</p>
  <p>{{.Certificate.DoctorEmail}}</p>
</div>
</body>
</html>
`
