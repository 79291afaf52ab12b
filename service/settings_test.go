package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camera-control/dto"
	"camera-control/entities"
	"camera-control/repository"
)

func TestCreateSettingsDefaults(t *testing.T) {
	svc, clock := newTestService(t)

	settings, err := svc.CreateSettings(context.Background(), dto.CreateCameraSettingsRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, settings.ID)
	assert.Equal(t, "Custom Settings", settings.Name)
	assert.Equal(t, 800, settings.ISO)
	assert.Equal(t, 2.8, settings.Aperture)
	assert.Equal(t, "1/60", settings.ShutterSpeed)
	assert.Equal(t, 85, settings.Focus)
	assert.Equal(t, "daylight", settings.WhiteBalance)
	assert.Equal(t, 0.0, settings.Exposure)
	assert.Equal(t, "manual", settings.Mode)
	assert.Equal(t, 1.0, settings.Zoom)
	assert.Equal(t, "4K UHD", settings.RecordingFormat)
	assert.Equal(t, "24p", settings.FrameRate)
	assert.Equal(t, "S-Log3", settings.ColorProfile)
	assert.True(t, settings.Stabilization)
	assert.Equal(t, clock.Now(), settings.CreatedAt)
	assert.Equal(t, clock.Now(), settings.UpdatedAt)
}

func TestCreateSettingsOverrides(t *testing.T) {
	svc, _ := newTestService(t)

	settings, err := svc.CreateSettings(context.Background(), dto.CreateCameraSettingsRequest{
		Name:     strPtr("Night Shoot"),
		ISO:      intPtr(3200),
		Aperture: floatPtr(1.4),
	})
	require.NoError(t, err)

	assert.Equal(t, "Night Shoot", settings.Name)
	assert.Equal(t, 3200, settings.ISO)
	assert.Equal(t, 1.4, settings.Aperture)
	// Unsupplied fields keep their defaults.
	assert.Equal(t, "1/60", settings.ShutterSpeed)
}

func TestCreateSettingsUniqueIDs(t *testing.T) {
	svc, _ := newTestService(t)

	a, err := svc.CreateSettings(context.Background(), dto.CreateCameraSettingsRequest{})
	require.NoError(t, err)
	b, err := svc.CreateSettings(context.Background(), dto.CreateCameraSettingsRequest{})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateSettingsOutOfBoundsRejected(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []dto.CreateCameraSettingsRequest{
		{ISO: intPtr(50000)},
		{Aperture: floatPtr(0.5)},
		{Focus: intPtr(5)},
		{Exposure: floatPtr(4.2)},
		{Zoom: floatPtr(11.0)},
	}
	for _, req := range cases {
		_, err := svc.CreateSettings(context.Background(), req)
		assert.ErrorIs(t, err, entities.ErrValidation)
	}

	// Nothing was persisted.
	all, err := svc.GetAllSettings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetSettingsRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateSettings(context.Background(), dto.CreateCameraSettingsRequest{ISO: intPtr(1600)})
	require.NoError(t, err)

	got, err := svc.GetSettings(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetSettingsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetSettings(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateSettingsPartial(t *testing.T) {
	svc, clock := newTestService(t)

	created, err := svc.CreateSettings(context.Background(), dto.CreateCameraSettingsRequest{})
	require.NoError(t, err)

	clock.Advance(time.Minute)
	updated, err := svc.UpdateSettings(context.Background(), created.ID, dto.UpdateCameraSettingsRequest{
		ISO: intPtr(1600),
	})
	require.NoError(t, err)

	assert.Equal(t, 1600, updated.ISO)
	assert.Equal(t, clock.Now(), updated.UpdatedAt)
	// Everything else is untouched.
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Aperture, updated.Aperture)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateSettingsEmptyPartialIsNoOp(t *testing.T) {
	svc, clock := newTestService(t)

	created, err := svc.CreateSettings(context.Background(), dto.CreateCameraSettingsRequest{})
	require.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = svc.UpdateSettings(context.Background(), created.ID, dto.UpdateCameraSettingsRequest{})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := svc.GetSettings(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.UpdatedAt, got.UpdatedAt)
}

func TestUpdateSettingsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateSettings(context.Background(), "missing", dto.UpdateCameraSettingsRequest{
		ISO: intPtr(1600),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateSettingsOutOfBoundsRejected(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateSettings(context.Background(), dto.CreateCameraSettingsRequest{})
	require.NoError(t, err)

	_, err = svc.UpdateSettings(context.Background(), created.ID, dto.UpdateCameraSettingsRequest{
		ISO: intPtr(50000),
	})
	assert.ErrorIs(t, err, entities.ErrValidation)

	got, err := svc.GetSettings(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 800, got.ISO)
	assert.Equal(t, created.UpdatedAt, got.UpdatedAt)
}

func TestDeleteSettings(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateSettings(context.Background(), dto.CreateCameraSettingsRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSettings(context.Background(), created.ID))

	_, err = svc.GetSettings(context.Background(), created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting again reports not-found.
	assert.ErrorIs(t, svc.DeleteSettings(context.Background(), created.ID), repository.ErrNotFound)
}

func TestGetAllSettingsOrderAndCap(t *testing.T) {
	svc, clock := newTestService(t)

	for i := 0; i < 105; i++ {
		_, err := svc.CreateSettings(context.Background(), dto.CreateCameraSettingsRequest{
			Name: strPtr(fmt.Sprintf("preset-%d", i)),
		})
		require.NoError(t, err)
		clock.Advance(time.Second)
	}

	all, err := svc.GetAllSettings(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 100)

	// Newest created first.
	assert.Equal(t, "preset-104", all[0].Name)
	assert.Equal(t, "preset-5", all[99].Name)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt))
	}
}
