package service

import (
	"context"

	"gitlab.com/goxp/cloud0/logger"

	"github.com/banam0503-alt/goc-cafe/pkg/repo"
)

type HealthService struct {
	repo repo.PGInterface
}

func NewHealthService(repo repo.PGInterface) HealthServiceInterface {
	return &HealthService{repo: repo}
}

type HealthServiceInterface interface {
	Ping(ctx context.Context) error
}

func (s *HealthService) Ping(ctx context.Context) error {
	log := logger.WithCtx(ctx, "HealthService.Ping")

	if err := s.repo.Ping(ctx); err != nil {
		return err
	}

	log.Debug("Ping: database reachable")
	return nil
}
