package service

import (
	"context"

	"krishisahay/entities"
)

type DiagnosisService interface {
	Diagnose(ctx context.Context, filename, declaredType string, data []byte) (*entities.Diagnosis, error)
	Get(ctx context.Context, id string) (*entities.Diagnosis, error)
}
