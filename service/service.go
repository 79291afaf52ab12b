package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"camera-control/dto"
	"camera-control/entities"
	"camera-control/repository"
)

// Clock abstracts time retrieval so business logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator abstracts unique ID generation so tests are deterministic.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }

// Service implements every camera use case on top of the persistence
// gateway. It holds no state between requests; all state lives in the
// document store.
type Service interface {
	CreateSettings(ctx context.Context, req dto.CreateCameraSettingsRequest) (*entities.CameraSettings, error)
	GetSettings(ctx context.Context, id string) (*entities.CameraSettings, error)
	GetAllSettings(ctx context.Context) ([]*entities.CameraSettings, error)
	UpdateSettings(ctx context.Context, id string, req dto.UpdateCameraSettingsRequest) (*entities.CameraSettings, error)
	DeleteSettings(ctx context.Context, id string) error

	StartRecording(ctx context.Context, req dto.StartRecordingRequest) (*entities.Recording, error)
	StopRecording(ctx context.Context, id string) (*entities.Recording, error)
	GetRecording(ctx context.Context, id string) (*entities.Recording, error)
	GetAllRecordings(ctx context.Context) ([]*entities.Recording, error)
	DeleteRecording(ctx context.Context, id string) error

	GetCameraStatus(ctx context.Context) (*entities.CameraStatus, error)
	UpdateCameraStatus(ctx context.Context, doc map[string]any) (*entities.CameraStatus, error)

	GetCameraCapabilities() *entities.CameraCapabilities
}

type service struct {
	repo  repository.CameraRepository
	clock Clock
	ids   IDGenerator
}

func NewService(repo repository.CameraRepository) Service {
	return &service{
		repo:  repo,
		clock: RealClock{},
		ids:   UUIDGenerator{},
	}
}
