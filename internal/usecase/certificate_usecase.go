package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pediatric-gastro-api/internal/converter"
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/entity"
	"pediatric-gastro-api/internal/domain/repository"
	"pediatric-gastro-api/internal/renderer"
	"pediatric-gastro-api/internal/service"
	"pediatric-gastro-api/pkg/agecalc"
	"pediatric-gastro-api/pkg/identifier"

	"github.com/sirupsen/logrus"
)

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrRenderFailed        = errors.New("failed to render certificate")
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

type CertificateUsecase interface {
	GenerateCertificate(ctx context.Context, req *dto.CreateCertificateRequest) (*dto.CertificateResponse, error)
	GetCertificate(ctx context.Context, attentionID string) (*dto.CertificateResponse, error)
	GetAllCertificates(ctx context.Context) (*dto.CertificateListResponse, error)
	UpdateCertificate(ctx context.Context, attentionID string, req *dto.UpdateCertificateRequest) (*dto.CertificateResponse, error)
	DeleteCertificate(ctx context.Context, attentionID string) error
	BeginEdit(ctx context.Context, attentionID string) (*dto.CertificateResponse, error)
	PrefillFromPatient(ctx context.Context, patientID string) (*dto.CertificatePrefillResponse, error)
	Render(ctx context.Context, attentionID string) ([]byte, error)
}

type certificateUsecase struct {
	log             *logrus.Logger
	certificateRepo repository.CertificateRepository
	patientRepo     repository.PatientRepository
	userRepo        repository.UserRepository
	renderer        *renderer.CertificateRenderer
	editSessions    service.EditSessionService
	auditService    service.AuditService
}

func NewCertificateUsecase(
	log *logrus.Logger,
	certificateRepo repository.CertificateRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	certificateRenderer *renderer.CertificateRenderer,
	editSessions service.EditSessionService,
	auditService service.AuditService,
) CertificateUsecase {
	return &certificateUsecase{
		log:             log,
		certificateRepo: certificateRepo,
		patientRepo:     patientRepo,
		userRepo:        userRepo,
		renderer:        certificateRenderer,
		editSessions:    editSessions,
		auditService:    auditService,
	}
}

func (u *certificateUsecase) GenerateCertificate(ctx context.Context, req *dto.CreateCertificateRequest) (*dto.CertificateResponse, error) {
	now := time.Now()
	certificate := &entity.Certificate{
		AttentionID:            identifier.NewAttentionID(),
		PatientID:              req.PatientID,
		PatientFullName:        req.PatientFullName,
		PatientIDNumber:        req.PatientIDNumber,
		PatientFileNumber:      req.PatientFileNumber,
		PatientAge:             req.PatientAge,
		DateOfAttentionNumeric: now.Format("02/01/2006"),
		DateOfAttentionWritten: writtenSpanishDate(now),
		AttendedAtLocation:     req.AttendedAtLocation,
		Diagnosis:              req.Diagnosis,
		Procedure:              req.Procedure,
		Observations:           req.Observations,
		PatientWorkplace:       req.PatientWorkplace,
		PatientWorkActivity:    req.PatientWorkActivity,
		ContingencyType:        req.ContingencyType,
		SymptomsPresent:        req.SymptomsPresent,
		SymptomsDescription:    req.SymptomsDescription,
		PatientAddress:         req.PatientAddress,
		PatientPhone:           req.PatientPhone,
	}

	if certificate.AttendedAtLocation == "" {
		certificate.AttendedAtLocation = entity.DefaultAttendedAtLocation
	}
	if certificate.ContingencyType == "" {
		certificate.ContingencyType = entity.DefaultContingencyType
	}

	// Doctor fields come from the operator generating the certificate, never
	// from the request body.
	operatorID := operatorFromContext(ctx)
	if operatorID != nil {
		operator, err := u.userRepo.FindByID(ctx, *operatorID)
		if err != nil {
			u.log.Warnf("Failed to find operator: %+v", err)
			return nil, err
		}
		if operator != nil {
			certificate.DoctorName = operator.FullName
			certificate.DoctorSpecialty = operator.Specialty
			certificate.DoctorMSP = operator.MedicalRegistrationNumber
			certificate.DoctorEmail = operator.Email
		}
	}

	if err := u.certificateRepo.Create(ctx, certificate); err != nil {
		u.log.Warnf("Failed to create certificate: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, operatorID, entity.AuditActionCertificateCreate, "certificate", certificate.AttentionID, certificate); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) GetCertificate(ctx context.Context, attentionID string) (*dto.CertificateResponse, error) {
	certificate, err := u.certificateRepo.FindByAttentionID(ctx, attentionID)
	if err != nil {
		u.log.Warnf("Failed to find certificate: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}
	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) GetAllCertificates(ctx context.Context) (*dto.CertificateListResponse, error) {
	certificates, err := u.certificateRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list certificates: %+v", err)
		return nil, err
	}

	return &dto.CertificateListResponse{
		Certificates: converter.CertificatesToResponses(certificates),
		Total:        len(certificates),
	}, nil
}

func (u *certificateUsecase) UpdateCertificate(ctx context.Context, attentionID string, req *dto.UpdateCertificateRequest) (*dto.CertificateResponse, error) {
	certificate, err := u.certificateRepo.FindByAttentionID(ctx, attentionID)
	if err != nil {
		u.log.Warnf("Failed to find certificate: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}

	old := *certificate

	// The attention id, attention dates and doctor stamp stay as stored;
	// everything else is replaced by the submitted form.
	certificate.PatientID = req.PatientID
	certificate.PatientFullName = req.PatientFullName
	certificate.PatientIDNumber = req.PatientIDNumber
	certificate.PatientFileNumber = req.PatientFileNumber
	certificate.PatientAge = req.PatientAge
	certificate.Diagnosis = req.Diagnosis
	certificate.Procedure = req.Procedure
	certificate.Observations = req.Observations
	certificate.PatientWorkplace = req.PatientWorkplace
	certificate.PatientWorkActivity = req.PatientWorkActivity
	certificate.SymptomsPresent = req.SymptomsPresent
	certificate.SymptomsDescription = req.SymptomsDescription
	certificate.PatientAddress = req.PatientAddress
	certificate.PatientPhone = req.PatientPhone

	if req.AttendedAtLocation != "" {
		certificate.AttendedAtLocation = req.AttendedAtLocation
	}
	if req.ContingencyType != "" {
		certificate.ContingencyType = req.ContingencyType
	}

	if err := u.certificateRepo.Update(ctx, certificate); err != nil {
		u.log.Warnf("Failed to update certificate: %+v", err)
		return nil, err
	}

	operatorID := operatorFromContext(ctx)
	if operatorID != nil {
		if err := u.editSessions.ClearIfEditing(ctx, *operatorID, service.EditTargetCertificate, attentionID); err != nil {
			u.log.Warnf("Failed to clear edit session: %+v", err)
		}
	}

	if err := u.auditService.LogUpdate(ctx, operatorID, entity.AuditActionCertificateUpdate, "certificate", attentionID, old, certificate); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) DeleteCertificate(ctx context.Context, attentionID string) error {
	certificate, err := u.certificateRepo.FindByAttentionID(ctx, attentionID)
	if err != nil {
		u.log.Warnf("Failed to find certificate: %+v", err)
		return err
	}
	// Deleting an absent certificate is a no-op: a repeated click on the
	// same delete button must not fail.
	if certificate == nil {
		return nil
	}

	if err := u.certificateRepo.Delete(ctx, attentionID); err != nil {
		u.log.Warnf("Failed to delete certificate: %+v", err)
		return err
	}

	operatorID := operatorFromContext(ctx)
	if operatorID != nil {
		if err := u.editSessions.ClearIfEditing(ctx, *operatorID, service.EditTargetCertificate, attentionID); err != nil {
			u.log.Warnf("Failed to clear edit session: %+v", err)
		}
	}

	if err := u.auditService.LogDelete(ctx, operatorID, entity.AuditActionCertificateDelete, "certificate", attentionID, certificate); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *certificateUsecase) BeginEdit(ctx context.Context, attentionID string) (*dto.CertificateResponse, error) {
	certificate, err := u.certificateRepo.FindByAttentionID(ctx, attentionID)
	if err != nil {
		u.log.Warnf("Failed to find certificate: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}

	if operatorID := operatorFromContext(ctx); operatorID != nil {
		if err := u.editSessions.BeginEdit(ctx, *operatorID, service.EditTargetCertificate, attentionID); err != nil {
			u.log.Warnf("Failed to record edit session: %+v", err)
		}
	}

	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) PrefillFromPatient(ctx context.Context, patientID string) (*dto.CertificatePrefillResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	now := time.Now()
	return &dto.CertificatePrefillResponse{
		PatientID:              patient.ID,
		PatientFullName:        patient.FullName,
		PatientIDNumber:        patient.IdentificationNumber,
		PatientFileNumber:      patient.FileNumber,
		PatientAge:             fmt.Sprintf("%d años", agecalc.FromBirthDate(patient.DateOfBirth)),
		PatientAddress:         patient.Address,
		PatientPhone:           patient.Phone,
		Diagnosis:              patient.LastDiagnosis,
		AttendedAtLocation:     entity.DefaultAttendedAtLocation,
		ContingencyType:        entity.DefaultContingencyType,
		DateOfAttentionNumeric: now.Format("02/01/2006"),
		DateOfAttentionWritten: writtenSpanishDate(now),
	}, nil
}

func (u *certificateUsecase) Render(ctx context.Context, attentionID string) ([]byte, error) {
	certificate, err := u.certificateRepo.FindByAttentionID(ctx, attentionID)
	if err != nil {
		u.log.Warnf("Failed to find certificate: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}

	html, err := u.renderer.Render(certificate)
	if err != nil {
		u.log.Warnf("Failed to render certificate: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return html, nil
}

func writtenSpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
