package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"camera-control/entities"
	"camera-control/repository"
)

// GetCameraStatus returns the current status singleton. On a fresh
// deployment the first read materializes and persists the defaults, so
// this read performs a write.
func (s *service) GetCameraStatus(ctx context.Context) (*entities.CameraStatus, error) {
	doc, err := s.repo.LatestStatus(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		status := entities.DefaultCameraStatus(s.clock.Now())
		if err := s.repo.InsertStatus(ctx, status); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("failed to materialize default camera status")
			return nil, err
		}
		zerolog.Ctx(ctx).Info().Msg("materialized default camera status")
		return status, nil
	}
	if err != nil {
		return nil, err
	}
	return entities.StatusFromDoc(doc)
}

// UpdateCameraStatus stamps lastUpdate and replaces the stored singleton
// wholesale. Fields absent from the payload are dropped from the stored
// document; they surface again as defaults on the next read.
func (s *service) UpdateCameraStatus(ctx context.Context, doc map[string]any) (*entities.CameraStatus, error) {
	if doc == nil {
		doc = map[string]any{}
	}
	doc["lastUpdate"] = s.clock.Now()
	if err := s.repo.ReplaceStatus(ctx, doc); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to replace camera status")
		return nil, err
	}
	return entities.StatusFromDoc(doc)
}
