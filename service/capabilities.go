package service

import "camera-control/entities"

// GetCameraCapabilities reports the static catalog of supported values.
// Pure and side-effect-free; two calls return identical catalogs.
func (s *service) GetCameraCapabilities() *entities.CameraCapabilities {
	return &entities.CameraCapabilities{
		Modes: []entities.CameraMode{
			{ID: "manual", Name: "Manual", Description: "Full manual control"},
			{ID: "auto", Name: "Auto", Description: "Automatic settings"},
			{ID: "cinema", Name: "Cinema", Description: "Cinema optimized"},
			{ID: "portrait", Name: "Portrait", Description: "Portrait mode"},
			{ID: "landscape", Name: "Landscape", Description: "Landscape mode"},
		},
		ISOValues:      []int{100, 200, 400, 800, 1600, 3200, 6400, 12800},
		ApertureValues: []float64{1.4, 2, 2.8, 4, 5.6, 8, 11, 16},
		ShutterSpeeds: []string{
			"1/4000", "1/2000", "1/1000", "1/500", "1/250",
			"1/125", "1/60", "1/30", "1/15", "1/8",
		},
		WhiteBalanceOptions: []entities.WhiteBalanceOption{
			{ID: "auto", Name: "Auto", Temp: 5500},
			{ID: "daylight", Name: "Daylight", Temp: 5500},
			{ID: "cloudy", Name: "Cloudy", Temp: 6500},
			{ID: "tungsten", Name: "Tungsten", Temp: 3200},
			{ID: "fluorescent", Name: "Fluorescent", Temp: 4000},
			{ID: "flash", Name: "Flash", Temp: 5500},
		},
		RecordingFormats: []string{"4K UHD", "FHD", "HD"},
		FrameRates:       []string{"24p", "30p", "60p", "120p"},
		ColorProfiles:    []string{"S-Log3", "Standard", "Cinema", "Vivid"},
	}
}
