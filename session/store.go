package session

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

const sessionsKey = "sessions"

// Store keeps finished runs.
type Store interface {
	Save(Record) error
	Load() ([]Record, error)
}

// itemStore is the subset of gdata.Manager the store needs.
type itemStore interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
}

// GDataStore keeps the history as one JSON item in the user's data dir.
type GDataStore struct {
	mu    sync.Mutex
	items itemStore
}

// OpenGData opens the data directory for appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return &GDataStore{items: m}, nil
}

func (s *GDataStore) Load() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *GDataStore) load() ([]Record, error) {
	data, err := s.items.LoadItem(sessionsKey)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse sessions: %w", err)
	}
	return records, nil
}

// Save appends r to the stored history. A history that cannot be parsed
// is replaced.
func (s *GDataStore) Save(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		log.Printf("Warning: Could not read saved sessions, starting over: %v", err)
		records = nil
	}
	records = append(records, r)

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serialize sessions: %w", err)
	}
	if err := s.items.SaveItem(sessionsKey, data); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}
	return nil
}

// MemoryStore keeps records in memory.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

func (s *MemoryStore) Save(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return nil
}

func (s *MemoryStore) Load() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
