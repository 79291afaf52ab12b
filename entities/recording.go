package entities

import (
	"time"

	"camera-control/constant"
)

// Recording tracks one capture session from start to stop. EndTime,
// Duration and FileSize stay unset while the status is "recording" and
// are all set in the single mutation performed by stop.
type Recording struct {
	ID         string                   `json:"id" bson:"id"`
	SessionID  string                   `json:"sessionId" bson:"sessionId"`
	FileName   string                   `json:"fileName" bson:"fileName"`
	Duration   float64                  `json:"duration" bson:"duration"`
	FileSize   float64                  `json:"fileSize" bson:"fileSize"`
	Resolution string                   `json:"resolution" bson:"resolution"`
	FrameRate  string                   `json:"frameRate" bson:"frameRate"`
	Settings   map[string]any           `json:"settings" bson:"settings"`
	StartTime  time.Time                `json:"startTime" bson:"startTime"`
	EndTime    *time.Time               `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Status     constant.RecordingStatus `json:"status" bson:"status"`
}
