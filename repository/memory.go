package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"camera-control/entities"
)

// memoryRepo keeps all documents in process. It exists for tests and
// local development; documents pass through a bson round trip on every
// insert and read so merge and timestamp-precision behavior match the
// Mongo implementation.
type memoryRepo struct {
	mu         sync.RWMutex
	settings   map[string]*entities.CameraSettings
	recordings map[string]*entities.Recording
	statusDoc  map[string]any
}

func NewMemoryRepo() CameraRepository {
	return &memoryRepo{
		settings:   make(map[string]*entities.CameraSettings),
		recordings: make(map[string]*entities.Recording),
	}
}

func (m *memoryRepo) InsertSettings(ctx context.Context, settings *entities.CameraSettings) error {
	c, err := clone(settings)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[settings.ID] = c
	return nil
}

func (m *memoryRepo) FindSettingsByID(ctx context.Context, id string) (*entities.CameraSettings, error) {
	m.mu.RLock()
	stored, ok := m.settings[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return clone(stored)
}

func (m *memoryRepo) ListSettings(ctx context.Context, limit int) ([]*entities.CameraSettings, error) {
	m.mu.RLock()
	all := make([]*entities.CameraSettings, 0, len(m.settings))
	for _, s := range m.settings {
		all = append(all, s)
	}
	m.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]*entities.CameraSettings, 0, len(all))
	for _, s := range all {
		c, err := clone(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *memoryRepo) UpdateSettingsFields(ctx context.Context, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.settings[id]
	if !ok {
		return ErrNotFound
	}
	merged, err := mergeFields(stored, fields)
	if err != nil {
		return err
	}
	m.settings[id] = merged
	return nil
}

func (m *memoryRepo) DeleteSettings(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.settings[id]; !ok {
		return ErrNotFound
	}
	delete(m.settings, id)
	return nil
}

func (m *memoryRepo) InsertRecording(ctx context.Context, recording *entities.Recording) error {
	c, err := clone(recording)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordings[recording.ID] = c
	return nil
}

func (m *memoryRepo) FindRecordingByID(ctx context.Context, id string) (*entities.Recording, error) {
	m.mu.RLock()
	stored, ok := m.recordings[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return clone(stored)
}

func (m *memoryRepo) ListRecordings(ctx context.Context, limit int) ([]*entities.Recording, error) {
	m.mu.RLock()
	all := make([]*entities.Recording, 0, len(m.recordings))
	for _, r := range m.recordings {
		all = append(all, r)
	}
	m.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].StartTime.After(all[j].StartTime)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]*entities.Recording, 0, len(all))
	for _, r := range all {
		c, err := clone(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *memoryRepo) UpdateRecordingFields(ctx context.Context, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.recordings[id]
	if !ok {
		return ErrNotFound
	}
	merged, err := mergeFields(stored, fields)
	if err != nil {
		return err
	}
	m.recordings[id] = merged
	return nil
}

func (m *memoryRepo) DeleteRecording(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recordings[id]; !ok {
		return ErrNotFound
	}
	delete(m.recordings, id)
	return nil
}

func (m *memoryRepo) LatestStatus(ctx context.Context) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.statusDoc == nil {
		return nil, ErrNotFound
	}
	return cloneDoc(m.statusDoc)
}

func (m *memoryRepo) InsertStatus(ctx context.Context, status *entities.CameraStatus) error {
	doc, err := toDoc(status)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusDoc = doc
	return nil
}

func (m *memoryRepo) ReplaceStatus(ctx context.Context, doc map[string]any) error {
	cloned, err := cloneDoc(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusDoc = cloned
	return nil
}

// clone round-trips an entity through bson so callers never share
// memory with the store, and so time values lose sub-millisecond
// precision exactly like documents persisted to Mongo.
func clone[T any](v *T) (*T, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func toDoc(v any) (map[string]any, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func cloneDoc(doc map[string]any) (map[string]any, error) {
	return toDoc(bson.M(doc))
}

func mergeFields[T any](stored *T, fields map[string]any) (*T, error) {
	doc, err := toDoc(stored)
	if err != nil {
		return nil, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	raw, err := bson.Marshal(bson.M(doc))
	if err != nil {
		return nil, err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
