package serviceImp

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"krishisahay/entities"
	"krishisahay/pkg/diagnosis"
	"krishisahay/pkg/diagnosis/repository"
	svc "krishisahay/pkg/diagnosis/service"
)

type service struct {
	repo  repository.DiagnosisRepository
	delay time.Duration
	log   *zap.Logger
}

func New(repo repository.DiagnosisRepository, delay time.Duration, log *zap.Logger) svc.DiagnosisService {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{repo: repo, delay: delay, log: log}
}

func (s *service) Diagnose(ctx context.Context, filename, declaredType string, data []byte) (*entities.Diagnosis, error) {
	if len(data) > diagnosis.MaxUploadBytes {
		return nil, diagnosis.ErrTooLarge
	}
	ct, err := diagnosis.Sniff(data, declaredType)
	if err != nil {
		return nil, err
	}

	// scan time
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	d := diagnosis.Canned()
	d.ID = uuid.NewString()
	d.Filename = filepath.Base(filename)
	d.ContentType = ct
	d.SizeBytes = len(data)
	d.CreatedAt = time.Now()
	if err := s.repo.Create(ctx, &d); err != nil {
		return nil, fmt.Errorf("store diagnosis: %w", err)
	}
	s.log.Info("diagnosis stored", zap.String("id", d.ID), zap.String("content_type", ct), zap.Int("bytes", d.SizeBytes))
	return &d, nil
}

func (s *service) Get(ctx context.Context, id string) (*entities.Diagnosis, error) {
	return s.repo.FindByID(ctx, id)
}
