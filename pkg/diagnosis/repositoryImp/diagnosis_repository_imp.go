package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"krishisahay/entities"
	"krishisahay/pkg/diagnosis"
	"krishisahay/pkg/diagnosis/repository"
)

type diagnosisRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DiagnosisRepository { return &diagnosisRepo{db} }

func (r *diagnosisRepo) Create(ctx context.Context, d *entities.Diagnosis) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *diagnosisRepo) FindByID(ctx context.Context, id string) (*entities.Diagnosis, error) {
	var out entities.Diagnosis
	err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, diagnosis.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
