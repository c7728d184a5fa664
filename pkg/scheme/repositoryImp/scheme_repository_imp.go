package repositoryImp

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"krishisahay/entities"
	"krishisahay/pkg/scheme/repository"
)

type schemeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SchemeRepository { return &schemeRepo{db} }

// Seed upserts by id so a reloaded catalog file replaces older text.
func (r *schemeRepo) Seed(ctx context.Context, list []entities.Scheme) error {
	if len(list) == 0 {
		return nil
	}
	rows := make([]entities.Scheme, len(list))
	copy(rows, list)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}

func (r *schemeRepo) List(ctx context.Context, category string) ([]entities.Scheme, error) {
	q := r.db.WithContext(ctx).Model(&entities.Scheme{})
	if category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", category)
	}
	var out []entities.Scheme
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schemeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&entities.Scheme{}).Count(&n).Error
}
