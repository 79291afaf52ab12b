package entities

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation marks a data-model bound violation. Handlers translate
// it to a 422 response, distinct from not-found.
var ErrValidation = errors.New("validation failed")

// CameraSettings is a named preset of camera parameters. The id is a
// generated UUID stored as a top-level field, not the store-native key.
type CameraSettings struct {
	ID              string    `json:"id" bson:"id"`
	Name            string    `json:"name" bson:"name"`
	ISO             int       `json:"iso" bson:"iso"`
	Aperture        float64   `json:"aperture" bson:"aperture"`
	ShutterSpeed    string    `json:"shutterSpeed" bson:"shutterSpeed"`
	Focus           int       `json:"focus" bson:"focus"`
	WhiteBalance    string    `json:"whiteBalance" bson:"whiteBalance"`
	Exposure        float64   `json:"exposure" bson:"exposure"`
	Mode            string    `json:"mode" bson:"mode"`
	Zoom            float64   `json:"zoom" bson:"zoom"`
	RecordingFormat string    `json:"recordingFormat" bson:"recordingFormat"`
	FrameRate       string    `json:"frameRate" bson:"frameRate"`
	ColorProfile    string    `json:"colorProfile" bson:"colorProfile"`
	Stabilization   bool      `json:"stabilization" bson:"stabilization"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Validate enforces the numeric bounds. A preset violating any bound is
// never persisted.
func (s *CameraSettings) Validate() error {
	if s.ISO < 100 || s.ISO > 12800 {
		return fmt.Errorf("%w: iso %d out of range [100, 12800]", ErrValidation, s.ISO)
	}
	if s.Aperture < 1.4 || s.Aperture > 16.0 {
		return fmt.Errorf("%w: aperture %g out of range [1.4, 16.0]", ErrValidation, s.Aperture)
	}
	if s.Focus < 10 || s.Focus > 300 {
		return fmt.Errorf("%w: focus %d out of range [10, 300]", ErrValidation, s.Focus)
	}
	if s.Exposure < -3.0 || s.Exposure > 3.0 {
		return fmt.Errorf("%w: exposure %g out of range [-3.0, 3.0]", ErrValidation, s.Exposure)
	}
	if s.Zoom < 0.5 || s.Zoom > 10.0 {
		return fmt.Errorf("%w: zoom %g out of range [0.5, 10.0]", ErrValidation, s.Zoom)
	}
	return nil
}
