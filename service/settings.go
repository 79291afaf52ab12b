package service

import (
	"context"

	"github.com/rs/zerolog"

	"camera-control/constant"
	"camera-control/dto"
	"camera-control/entities"
	"camera-control/repository"
)

// defaultSettings are the documented creation defaults; caller-supplied
// fields are merged over them.
func (s *service) defaultSettings() *entities.CameraSettings {
	now := s.clock.Now()
	return &entities.CameraSettings{
		ID:              s.ids.New(),
		Name:            "Custom Settings",
		ISO:             800,
		Aperture:        2.8,
		ShutterSpeed:    "1/60",
		Focus:           85,
		WhiteBalance:    "daylight",
		Exposure:        0.0,
		Mode:            "manual",
		Zoom:            1.0,
		RecordingFormat: "4K UHD",
		FrameRate:       "24p",
		ColorProfile:    "S-Log3",
		Stabilization:   true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (s *service) CreateSettings(ctx context.Context, req dto.CreateCameraSettingsRequest) (*entities.CameraSettings, error) {
	settings := s.defaultSettings()
	req.Apply(settings)
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.InsertSettings(ctx, settings); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to insert camera settings")
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("settings_id", settings.ID).Str("name", settings.Name).Msg("camera settings created")
	return settings, nil
}

func (s *service) GetSettings(ctx context.Context, id string) (*entities.CameraSettings, error) {
	return s.repo.FindSettingsByID(ctx, id)
}

func (s *service) GetAllSettings(ctx context.Context) ([]*entities.CameraSettings, error) {
	return s.repo.ListSettings(ctx, constant.MaxListResults)
}

func (s *service) UpdateSettings(ctx context.Context, id string, req dto.UpdateCameraSettingsRequest) (*entities.CameraSettings, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		// An all-absent partial is a no-op: nothing is written and
		// updatedAt keeps its old value.
		return nil, repository.ErrNotFound
	}

	current, err := s.repo.FindSettingsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	merged := *current
	req.Apply(&merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	fields["updatedAt"] = s.clock.Now()
	if err := s.repo.UpdateSettingsFields(ctx, id, fields); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("settings_id", id).Int("fields", len(fields)-1).Msg("camera settings updated")
	return s.repo.FindSettingsByID(ctx, id)
}

func (s *service) DeleteSettings(ctx context.Context, id string) error {
	if err := s.repo.DeleteSettings(ctx, id); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Str("settings_id", id).Msg("camera settings deleted")
	return nil
}
