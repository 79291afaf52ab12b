package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CameraStatus is the keyless singleton "current device status"
// document. Updates replace it wholesale; there is no per-field merge.
type CameraStatus struct {
	Battery     int       `json:"battery" bson:"battery"`
	Storage     string    `json:"storage" bson:"storage"`
	StorageUsed float64   `json:"storageUsed" bson:"storageUsed"`
	Temperature string    `json:"temperature" bson:"temperature"`
	LastUpdate  time.Time `json:"lastUpdate" bson:"lastUpdate"`
}

// DefaultCameraStatus materializes the documented defaults, stamped at t.
func DefaultCameraStatus(t time.Time) *CameraStatus {
	return &CameraStatus{
		Battery:     85,
		Storage:     "64GB",
		StorageUsed: 23.5,
		Temperature: "Normal",
		LastUpdate:  t,
	}
}

// StatusFromDoc decodes a stored status document over the defaults, so
// fields absent from the document surface as their documented default
// rather than a zero value. Unknown fields are dropped.
func StatusFromDoc(doc map[string]any) (*CameraStatus, error) {
	status := DefaultCameraStatus(time.Time{})
	raw, err := bson.Marshal(bson.M(doc))
	if err != nil {
		return nil, err
	}
	if err := bson.Unmarshal(raw, status); err != nil {
		return nil, err
	}
	return status, nil
}
