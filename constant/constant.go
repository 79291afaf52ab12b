package constant

type RecordingStatus string

const (
	RecordingStatusRecording RecordingStatus = "recording"
	RecordingStatusCompleted RecordingStatus = "completed"
	RecordingStatusFailed    RecordingStatus = "failed"
)

func (s RecordingStatus) String() string {
	return string(s)
}

type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentStaging    Environment = "staging"
	EnvironmentDevelop    Environment = "develop"
)

func (e Environment) String() string {
	return string(e)
}

// FileSizePerSecondMB simulates recording file growth: 0.5 MB per second
// of recorded time. There is no real media pipeline behind it.
const FileSizePerSecondMB = 0.5

// MaxListResults caps every listing endpoint.
const MaxListResults = 100
