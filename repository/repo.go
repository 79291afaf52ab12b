package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"camera-control/entities"
)

// ErrNotFound is returned when no document matches the given identifier,
// and by deletes that removed nothing.
var ErrNotFound = errors.New("not found")

const (
	settingsCollection   = "camera_settings"
	recordingsCollection = "recordings"
	statusCollection     = "camera_status"
)

// CameraRepository is the persistence gateway: one document collection
// per entity kind, no business rules, no cross-collection transactions.
// Each call is atomic only with respect to its own document.
type CameraRepository interface {
	InsertSettings(ctx context.Context, settings *entities.CameraSettings) error
	FindSettingsByID(ctx context.Context, id string) (*entities.CameraSettings, error)
	ListSettings(ctx context.Context, limit int) ([]*entities.CameraSettings, error)
	UpdateSettingsFields(ctx context.Context, id string, fields map[string]any) error
	DeleteSettings(ctx context.Context, id string) error

	InsertRecording(ctx context.Context, recording *entities.Recording) error
	FindRecordingByID(ctx context.Context, id string) (*entities.Recording, error)
	ListRecordings(ctx context.Context, limit int) ([]*entities.Recording, error)
	UpdateRecordingFields(ctx context.Context, id string, fields map[string]any) error
	DeleteRecording(ctx context.Context, id string) error

	// LatestStatus returns the most recently updated status document, or
	// ErrNotFound when the collection is empty.
	LatestStatus(ctx context.Context) (map[string]any, error)
	InsertStatus(ctx context.Context, status *entities.CameraStatus) error
	// ReplaceStatus replaces whichever status document matches first,
	// inserting when none exists. There is no identifier filter; the
	// status is a keyless singleton.
	ReplaceStatus(ctx context.Context, doc map[string]any) error
}

type mongoRepo struct {
	settings   *mongo.Collection
	recordings *mongo.Collection
	status     *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) CameraRepository {
	return &mongoRepo{
		settings:   db.Collection(settingsCollection),
		recordings: db.Collection(recordingsCollection),
		status:     db.Collection(statusCollection),
	}
}

func (r *mongoRepo) InsertSettings(ctx context.Context, settings *entities.CameraSettings) error {
	_, err := r.settings.InsertOne(ctx, settings)
	return err
}

func (r *mongoRepo) FindSettingsByID(ctx context.Context, id string) (*entities.CameraSettings, error) {
	return findByID[entities.CameraSettings](ctx, r.settings, id)
}

func (r *mongoRepo) ListSettings(ctx context.Context, limit int) ([]*entities.CameraSettings, error) {
	return listNewestFirst[entities.CameraSettings](ctx, r.settings, "createdAt", limit)
}

func (r *mongoRepo) UpdateSettingsFields(ctx context.Context, id string, fields map[string]any) error {
	return updateFields(ctx, r.settings, id, fields)
}

func (r *mongoRepo) DeleteSettings(ctx context.Context, id string) error {
	return deleteByID(ctx, r.settings, id)
}

func (r *mongoRepo) InsertRecording(ctx context.Context, recording *entities.Recording) error {
	_, err := r.recordings.InsertOne(ctx, recording)
	return err
}

func (r *mongoRepo) FindRecordingByID(ctx context.Context, id string) (*entities.Recording, error) {
	return findByID[entities.Recording](ctx, r.recordings, id)
}

func (r *mongoRepo) ListRecordings(ctx context.Context, limit int) ([]*entities.Recording, error) {
	return listNewestFirst[entities.Recording](ctx, r.recordings, "startTime", limit)
}

func (r *mongoRepo) UpdateRecordingFields(ctx context.Context, id string, fields map[string]any) error {
	return updateFields(ctx, r.recordings, id, fields)
}

func (r *mongoRepo) DeleteRecording(ctx context.Context, id string) error {
	return deleteByID(ctx, r.recordings, id)
}

func (r *mongoRepo) LatestStatus(ctx context.Context) (map[string]any, error) {
	var doc bson.M
	opts := options.FindOne().SetSort(bson.D{{Key: "lastUpdate", Value: -1}})
	err := r.status.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// The store-native key is not part of the record shape.
	delete(doc, "_id")
	return doc, nil
}

func (r *mongoRepo) InsertStatus(ctx context.Context, status *entities.CameraStatus) error {
	_, err := r.status.InsertOne(ctx, status)
	return err
}

func (r *mongoRepo) ReplaceStatus(ctx context.Context, doc map[string]any) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.status.ReplaceOne(ctx, bson.M{}, bson.M(doc), opts)
	return err
}

func findByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var out T
	err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func listNewestFirst[T any](ctx context.Context, coll *mongo.Collection, sortKey string, limit int) ([]*T, error) {
	opts := options.Find().SetSort(bson.D{{Key: sortKey, Value: -1}}).SetLimit(int64(limit))
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []*T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func updateFields(ctx context.Context, coll *mongo.Collection, id string, fields map[string]any) error {
	res, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
