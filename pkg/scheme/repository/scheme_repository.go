package repository

import (
	"context"

	"krishisahay/entities"
)

type SchemeRepository interface {
	Seed(ctx context.Context, list []entities.Scheme) error
	List(ctx context.Context, category string) ([]entities.Scheme, error)
	Count(ctx context.Context) (int64, error)
}
