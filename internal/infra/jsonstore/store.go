// Package jsonstore provides a JSON file-based implementation of StateRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/willflow/internal/domain"
)

// Store implements domain.StateRepository using one JSON document.
// Fields are ordered to minimize memory padding.
type Store struct {
	clock    domain.Clock
	logger   domain.Logger
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string, clock domain.Clock, logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Store{
		clock:    clock,
		logger:   logger,
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Decode parses a snapshot document and lays it over the default snapshot,
// so fields missing from older documents keep their default values.
// A list stored as null is present and decodes to an empty list.
func Decode(content []byte, today string) (*domain.AppState, error) {
	state := domain.NewDefaultState(today)

	// Detach the seeded lists so stored elements never merge into seed elements.
	templates, backlog := state.Templates, state.Backlog
	state.Templates, state.Backlog = nil, nil
	if err := json.Unmarshal(content, state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	// Only a JSON object has keys; "null" leaves fields nil and seeds everything.
	var fields map[string]json.RawMessage
	_ = json.Unmarshal(content, &fields)
	if _, ok := fields["templates"]; !ok {
		state.Templates = templates
	}
	if _, ok := fields["backlog"]; !ok {
		state.Backlog = backlog
	}
	state.Normalize()
	return state, nil
}

// Encode serializes a snapshot as indented JSON.
func Encode(state *domain.AppState) ([]byte, error) {
	content, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return content, nil
}

// Load reads the snapshot under a shared lock.
func (s *Store) Load() (*domain.LoadResult, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	return s.read()
}

// Save replaces the snapshot under an exclusive lock.
func (s *Store) Save(state *domain.AppState) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	return s.write(state)
}

// Update loads, applies fn and writes back under one exclusive lock.
func (s *Store) Update(fn func(*domain.AppState) (bool, error)) (*domain.AppState, error) {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	res, err := s.read()
	if err != nil {
		return nil, err
	}

	changed, err := fn(res.State)
	if err != nil {
		return nil, err
	}
	if !changed {
		return res.State, nil
	}

	if res.Recovered != nil {
		s.quarantine()
	}
	if err := s.write(res.State); err != nil {
		return nil, err
	}
	return res.State, nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read returns the stored snapshot. A missing file yields the default
// snapshot; an unparsable one yields the default with Recovered set.
func (s *Store) read() (*domain.LoadResult, error) {
	today := domain.FormatDate(s.clock.Now())

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("store", "no state file at "+s.path+", using defaults")
			return &domain.LoadResult{State: domain.NewDefaultState(today)}, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	state, err := Decode(content, today)
	if err != nil {
		s.logger.Warn("store", fmt.Sprintf("state file %s is unreadable, using defaults: %v", s.path, err))
		return &domain.LoadResult{State: domain.NewDefaultState(today), Recovered: err}, nil
	}
	return &domain.LoadResult{State: state}, nil
}

// quarantine keeps an unreadable snapshot next to the new one instead of
// overwriting it.
func (s *Store) quarantine() {
	bad := s.path + ".bad"
	if err := os.Rename(s.path, bad); err != nil {
		s.logger.Warn("store", fmt.Sprintf("keep unreadable state file: %v", err))
		return
	}
	s.logger.Warn("store", "unreadable state file moved to "+bad)
}

func (s *Store) write(state *domain.AppState) error {
	content, err := Encode(state)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements StateRepository.
var _ domain.StateRepository = (*Store)(nil)
