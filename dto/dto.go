package dto

import "camera-control/entities"

// CreateCameraSettingsRequest carries the optional overrides for a new
// preset. Absent fields fall back to the service defaults; present
// numeric fields are bound-checked at the binding layer.
type CreateCameraSettingsRequest struct {
	Name            *string  `json:"name"`
	ISO             *int     `json:"iso" binding:"omitempty,gte=100,lte=12800"`
	Aperture        *float64 `json:"aperture" binding:"omitempty,gte=1.4,lte=16.0"`
	ShutterSpeed    *string  `json:"shutterSpeed"`
	Focus           *int     `json:"focus" binding:"omitempty,gte=10,lte=300"`
	WhiteBalance    *string  `json:"whiteBalance"`
	Exposure        *float64 `json:"exposure" binding:"omitempty,gte=-3.0,lte=3.0"`
	Mode            *string  `json:"mode"`
	Zoom            *float64 `json:"zoom" binding:"omitempty,gte=0.5,lte=10.0"`
	RecordingFormat *string  `json:"recordingFormat"`
	FrameRate       *string  `json:"frameRate"`
	ColorProfile    *string  `json:"colorProfile"`
	Stabilization   *bool    `json:"stabilization"`
}

// Apply overlays the supplied fields onto a preset.
func (r CreateCameraSettingsRequest) Apply(s *entities.CameraSettings) {
	UpdateCameraSettingsRequest(r).Apply(s)
}

// UpdateCameraSettingsRequest is a partial update: only non-nil fields
// are applied to the stored preset.
type UpdateCameraSettingsRequest struct {
	Name            *string  `json:"name"`
	ISO             *int     `json:"iso" binding:"omitempty,gte=100,lte=12800"`
	Aperture        *float64 `json:"aperture" binding:"omitempty,gte=1.4,lte=16.0"`
	ShutterSpeed    *string  `json:"shutterSpeed"`
	Focus           *int     `json:"focus" binding:"omitempty,gte=10,lte=300"`
	WhiteBalance    *string  `json:"whiteBalance"`
	Exposure        *float64 `json:"exposure" binding:"omitempty,gte=-3.0,lte=3.0"`
	Mode            *string  `json:"mode"`
	Zoom            *float64 `json:"zoom" binding:"omitempty,gte=0.5,lte=10.0"`
	RecordingFormat *string  `json:"recordingFormat"`
	FrameRate       *string  `json:"frameRate"`
	ColorProfile    *string  `json:"colorProfile"`
	Stabilization   *bool    `json:"stabilization"`
}

// Apply overlays the supplied fields onto a preset.
func (r UpdateCameraSettingsRequest) Apply(s *entities.CameraSettings) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.ISO != nil {
		s.ISO = *r.ISO
	}
	if r.Aperture != nil {
		s.Aperture = *r.Aperture
	}
	if r.ShutterSpeed != nil {
		s.ShutterSpeed = *r.ShutterSpeed
	}
	if r.Focus != nil {
		s.Focus = *r.Focus
	}
	if r.WhiteBalance != nil {
		s.WhiteBalance = *r.WhiteBalance
	}
	if r.Exposure != nil {
		s.Exposure = *r.Exposure
	}
	if r.Mode != nil {
		s.Mode = *r.Mode
	}
	if r.Zoom != nil {
		s.Zoom = *r.Zoom
	}
	if r.RecordingFormat != nil {
		s.RecordingFormat = *r.RecordingFormat
	}
	if r.FrameRate != nil {
		s.FrameRate = *r.FrameRate
	}
	if r.ColorProfile != nil {
		s.ColorProfile = *r.ColorProfile
	}
	if r.Stabilization != nil {
		s.Stabilization = *r.Stabilization
	}
}

// Fields returns the explicitly supplied values keyed by their stored
// field name. An empty map means an empty partial.
func (r UpdateCameraSettingsRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.ISO != nil {
		fields["iso"] = *r.ISO
	}
	if r.Aperture != nil {
		fields["aperture"] = *r.Aperture
	}
	if r.ShutterSpeed != nil {
		fields["shutterSpeed"] = *r.ShutterSpeed
	}
	if r.Focus != nil {
		fields["focus"] = *r.Focus
	}
	if r.WhiteBalance != nil {
		fields["whiteBalance"] = *r.WhiteBalance
	}
	if r.Exposure != nil {
		fields["exposure"] = *r.Exposure
	}
	if r.Mode != nil {
		fields["mode"] = *r.Mode
	}
	if r.Zoom != nil {
		fields["zoom"] = *r.Zoom
	}
	if r.RecordingFormat != nil {
		fields["recordingFormat"] = *r.RecordingFormat
	}
	if r.FrameRate != nil {
		fields["frameRate"] = *r.FrameRate
	}
	if r.ColorProfile != nil {
		fields["colorProfile"] = *r.ColorProfile
	}
	if r.Stabilization != nil {
		fields["stabilization"] = *r.Stabilization
	}
	return fields
}

// StartRecordingRequest opens a new capture session. The settings map
// is an opaque snapshot of whatever parameters were active.
type StartRecordingRequest struct {
	FileName   string         `json:"fileName" binding:"required"`
	Resolution string         `json:"resolution"`
	FrameRate  string         `json:"frameRate"`
	Settings   map[string]any `json:"settings" binding:"required"`
}
