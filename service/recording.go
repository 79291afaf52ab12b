package service

import (
	"context"

	"github.com/rs/zerolog"

	"camera-control/constant"
	"camera-control/dto"
	"camera-control/entities"
	"camera-control/repository"
)

func (s *service) StartRecording(ctx context.Context, req dto.StartRecordingRequest) (*entities.Recording, error) {
	recording := &entities.Recording{
		ID:         s.ids.New(),
		SessionID:  s.ids.New(),
		FileName:   req.FileName,
		Resolution: req.Resolution,
		FrameRate:  req.FrameRate,
		Settings:   req.Settings,
		StartTime:  s.clock.Now(),
		Status:     constant.RecordingStatusRecording,
	}
	if recording.Resolution == "" {
		recording.Resolution = "4K UHD"
	}
	if recording.FrameRate == "" {
		recording.FrameRate = "24p"
	}

	if err := s.repo.InsertRecording(ctx, recording); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to insert recording")
		return nil, err
	}
	zerolog.Ctx(ctx).Info().
		Str("recording_id", recording.ID).
		Str("file_name", recording.FileName).
		Msg("recording started")
	return recording, nil
}

// StopRecording transitions a live recording to completed and stamps
// the simulated file metrics. A recording that is absent or already
// terminal is reported as not-found and left untouched. Concurrent
// stops on the same id can both observe "recording" and race; the last
// write wins, there is no lock here.
func (s *service) StopRecording(ctx context.Context, id string) (*entities.Recording, error) {
	recording, err := s.repo.FindRecordingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recording.Status != constant.RecordingStatusRecording {
		return nil, repository.ErrNotFound
	}

	endTime := s.clock.Now()
	duration := endTime.Sub(recording.StartTime).Seconds()
	fileSize := duration * constant.FileSizePerSecondMB
	fields := map[string]any{
		"endTime":  endTime,
		"duration": duration,
		"fileSize": fileSize,
		"status":   constant.RecordingStatusCompleted.String(),
	}
	if err := s.repo.UpdateRecordingFields(ctx, id, fields); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().
		Str("recording_id", id).
		Float64("duration_seconds", duration).
		Float64("file_size_mb", fileSize).
		Msg("recording stopped")
	return s.repo.FindRecordingByID(ctx, id)
}

func (s *service) GetRecording(ctx context.Context, id string) (*entities.Recording, error) {
	return s.repo.FindRecordingByID(ctx, id)
}

func (s *service) GetAllRecordings(ctx context.Context) ([]*entities.Recording, error) {
	return s.repo.ListRecordings(ctx, constant.MaxListResults)
}

func (s *service) DeleteRecording(ctx context.Context, id string) error {
	if err := s.repo.DeleteRecording(ctx, id); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Str("recording_id", id).Msg("recording deleted")
	return nil
}
