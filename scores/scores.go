// Package scores persists the best score between sessions.
package scores

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "stardodge"

const (
	scoresObject   = "scores"
	scoresProperty = "best"
)

// Record is what gets saved.
type Record struct {
	Best int `yaml:"best"`
	Runs int `yaml:"runs"`
}

// Store keeps the record in memory and mirrors it to gdata. With a nil
// manager it works as a memory-only store.
type Store struct {
	manager *gdata.Manager
	record  Record
}

// Open opens the gdata storage for AppName. When gdata is unavailable the
// store falls back to memory-only and the error is logged.
func Open() *Store {
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[scores] persistent storage unavailable, keeping scores in memory: %v", err)
		manager = nil
	}
	return NewStore(manager)
}

// NewStore wraps manager and loads any saved record. A load failure leaves
// the zero record and is logged.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{manager: manager}
	if err := s.Load(); err != nil {
		log.Printf("[scores] %v (starting from zero)", err)
	}
	return s
}

// Persistent reports whether records survive the process.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load replaces the in-memory record with the saved one.
func (s *Store) Load() error {
	s.record = Record{}
	if s.manager == nil || !s.manager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("unmarshal scores: %w", err)
	}
	s.record = record
	return nil
}

// Save writes the record. It is a no-op without a manager.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.record)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	if err := s.manager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}

func (s *Store) Best() int {
	return s.record.Best
}

func (s *Store) Runs() int {
	return s.record.Runs
}

// Submit records a finished run and saves. improved is true when score beat
// the previous best; the record is updated even when saving fails.
func (s *Store) Submit(score int) (improved bool, err error) {
	s.record.Runs++
	if score > s.record.Best {
		s.record.Best = score
		improved = true
	}
	return improved, s.Save()
}
