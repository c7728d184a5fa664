package repository

import (
	"context"

	"krishisahay/entities"
)

type DiagnosisRepository interface {
	Create(ctx context.Context, d *entities.Diagnosis) error
	FindByID(ctx context.Context, id string) (*entities.Diagnosis, error)
}
