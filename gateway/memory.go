package gateway

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-memory gateway for scaffolding and tests. It honours the
// same query semantics as the REST client so collection services behave
// identically against either implementation.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]Record

	// FailNext makes the next mutating or reading call fail with the given
	// error. Tests use it to exercise failure propagation.
	failNext error
}

var _ Service = (*Memory)(nil)

// NewMemory constructs an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]Record)}
}

// Seed replaces the named collection's contents. Records without ids are
// assigned one.
func (m *Memory) Seed(name string, records []Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seeded := make([]Record, 0, len(records))
	for _, record := range records {
		copied := cloneRecord(record)
		copied.Collection = name
		if copied.ID == "" {
			copied.ID = uuid.NewString()
		}
		if copied.Fields == nil {
			copied.Fields = map[string]any{}
		}
		copied.Fields["id"] = copied.ID
		seeded = append(seeded, copied)
	}
	m.collections[name] = seeded
}

// FailNextWith arms a one-shot failure for the next gateway call.
func (m *Memory) FailNextWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = err
}

func (m *Memory) Mode() Mode { return ModeLive }

func (m *Memory) FetchCollection(_ context.Context, name string, query Query) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}

	loaded := make([]Record, 0, len(m.collections[name]))
	for _, record := range m.collections[name] {
		loaded = append(loaded, cloneRecord(record))
	}
	return query.Apply(loaded), nil
}

func (m *Memory) InsertRecord(_ context.Context, name string, fields map[string]any) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}

	record := Record{Collection: name, ID: uuid.NewString(), Fields: cloneFields(fields)}
	if record.Fields == nil {
		record.Fields = map[string]any{}
	}
	record.Fields["id"] = record.ID
	m.collections[name] = append(m.collections[name], record)

	stored := cloneRecord(record)
	return &stored, nil
}

func (m *Memory) UpdateRecord(_ context.Context, name, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}

	records := m.collections[name]
	for i := range records {
		if records[i].ID == id {
			for key, value := range fields {
				records[i].Fields[key] = value
			}
			return nil
		}
	}
	return &RejectedError{Op: "update", Collection: name, Message: fmt.Sprintf("no record with id %s", id)}
}

func (m *Memory) DeleteRecord(_ context.Context, name, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}

	records := m.collections[name]
	for i := range records {
		if records[i].ID == id {
			m.collections[name] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return &RejectedError{Op: "delete", Collection: name, Message: fmt.Sprintf("no record with id %s", id)}
}

func (m *Memory) ResolveOne(_ context.Context, name, matchField string, matchValue any) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}

	for _, record := range m.collections[name] {
		if filterEqual(record, matchField, matchValue) {
			found := cloneRecord(record)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) takeFailure() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func cloneRecord(record Record) Record {
	record.Fields = cloneFields(record.Fields)
	return record
}

func cloneFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}
