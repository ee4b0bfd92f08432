// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/willflow/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockStateRepository is an in-memory test double for domain.StateRepository.
// Load and Update work on copies, so a failed Update leaves State untouched.
// Fields are ordered to minimize memory padding.
type MockStateRepository struct {
	State     *domain.AppState
	Recovered error // Reported by Load and Update
	LoadErr   error
	SaveErr   error
	Saves     int // Successful writes
}

// NewMockStateRepository creates a repository holding state.
func NewMockStateRepository(state *domain.AppState) *MockStateRepository {
	return &MockStateRepository{State: state}
}

// Load returns a copy of the stored state.
func (m *MockStateRepository) Load() (*domain.LoadResult, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return &domain.LoadResult{State: clone(m.State), Recovered: m.Recovered}, nil
}

// Save stores a copy of state.
func (m *MockStateRepository) Save(state *domain.AppState) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State = clone(state)
	m.Saves++
	return nil
}

// Update applies fn to a copy and stores it when fn reports a change.
func (m *MockStateRepository) Update(fn func(*domain.AppState) (bool, error)) (*domain.AppState, error) {
	res, err := m.Load()
	if err != nil {
		return nil, err
	}
	changed, err := fn(res.State)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := m.Save(res.State); err != nil {
			return nil, err
		}
	}
	return res.State, nil
}

var _ domain.StateRepository = (*MockStateRepository)(nil)

func clone(state *domain.AppState) *domain.AppState {
	data, err := json.Marshal(state)
	if err != nil {
		panic(fmt.Sprintf("clone state: %v", err))
	}
	var out domain.AppState
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("clone state: %v", err))
	}
	return &out
}

// SeqIDGenerator returns id-1, id-2, ... in order.
type SeqIDGenerator struct {
	Prefix string // Defaults to "id-"
	N      int
}

// NewID returns the next sequential id.
func (g *SeqIDGenerator) NewID() string {
	g.N++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "id-"
	}
	return fmt.Sprintf("%s%d", prefix, g.N)
}

// LogEntry is one line captured by RecordingLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// RecordingLogger is a domain.Logger that keeps every entry in memory.
type RecordingLogger struct {
	entries []LogEntry
	mu      sync.Mutex
}

func (l *RecordingLogger) record(level, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Info records an info entry.
func (l *RecordingLogger) Info(category, msg string) { l.record("INFO", category, msg) }

// Debug records a debug entry.
func (l *RecordingLogger) Debug(category, msg string) { l.record("DEBUG", category, msg) }

// Warn records a warning entry.
func (l *RecordingLogger) Warn(category, msg string) { l.record("WARN", category, msg) }

// Error records an error entry.
func (l *RecordingLogger) Error(category, msg string) { l.record("ERROR", category, msg) }

// Entries returns a copy of the recorded entries.
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), l.entries...)
}

// Contains returns true if an entry at level has a message containing substr.
func (l *RecordingLogger) Contains(level, substr string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}

var _ domain.Logger = (*RecordingLogger)(nil)

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// GetLocalConfigInfo returns the configured local info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(_ *domain.Config) error {
	m.InitLocalCalled = true
	return m.InitLocalErr
}

var _ domain.ConfigManager = (*MockConfigManager)(nil)
