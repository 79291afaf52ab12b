package entities

// CameraMode is one entry of the static mode catalog.
type CameraMode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WhiteBalanceOption pairs a white-balance preset with its color
// temperature in kelvin.
type WhiteBalanceOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Temp int    `json:"temp"`
}

// CameraCapabilities is the static, read-only catalog of supported
// parameter values. It is never persisted; the service rebuilds it from
// constants on every request.
type CameraCapabilities struct {
	Modes               []CameraMode         `json:"modes"`
	ISOValues           []int                `json:"isoValues"`
	ApertureValues      []float64            `json:"apertureValues"`
	ShutterSpeeds       []string             `json:"shutterSpeeds"`
	WhiteBalanceOptions []WhiteBalanceOption `json:"whiteBalanceOptions"`
	RecordingFormats    []string             `json:"recordingFormats"`
	FrameRates          []string             `json:"frameRates"`
	ColorProfiles       []string             `json:"colorProfiles"`
}
