package repository

import (
	"context"
	"errors"

	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"

	"gorm.io/gorm"
)

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) domainRepo.CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(ctx context.Context, certificate *entity.Certificate) error {
	return r.db.WithContext(ctx).Create(certificate).Error
}

func (r *certificateRepository) FindByAttentionID(ctx context.Context, attentionID string) (*entity.Certificate, error) {
	var certificate entity.Certificate
	err := r.db.WithContext(ctx).Where("attention_id = ?", attentionID).First(&certificate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (r *certificateRepository) FindAll(ctx context.Context) ([]entity.Certificate, error) {
	var certificates []entity.Certificate
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&certificates).Error
	return certificates, err
}

func (r *certificateRepository) Update(ctx context.Context, certificate *entity.Certificate) error {
	return r.db.WithContext(ctx).Save(certificate).Error
}

func (r *certificateRepository) Delete(ctx context.Context, attentionID string) error {
	return r.db.WithContext(ctx).Where("attention_id = ?", attentionID).Delete(&entity.Certificate{}).Error
}
