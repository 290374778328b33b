package preferences

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/reef-robotics/reefbot/pkg/dashboard"
	"github.com/reef-robotics/reefbot/pkg/robotlog"
)

// FileVersion is the current version of the preferences file format.
const FileVersion = 1

// prefsFile is the on-disk representation.
type prefsFile struct {
	// Version is the preferences file format version.
	Version int `json:"version"`

	// SavedAt is when the preferences were last saved.
	SavedAt time.Time `json:"saved_at"`

	// Values maps preference keys to their saved values.
	Values map[string]any `json:"values,omitempty"`
}

// Store manages a set of typed preferences backed by a JSON file.
type Store struct {
	logger robotlog.Logger

	mu       sync.RWMutex
	path     string
	kinds    map[string]dashboard.ValueKind
	values   map[string]any
	order    []string
	watchers map[string][]*dashboard.Entry
}

// NewStore creates a preferences store persisting to path.
// A nil logger disables logging.
func NewStore(path string, logger robotlog.Logger) *Store {
	if logger == nil {
		logger = robotlog.NoopLogger{}
	}
	return &Store{
		logger: logger,
		path:   path,
		kinds:  make(map[string]dashboard.ValueKind),
		values: make(map[string]any),
	}
}

// Load reads saved values from disk. A missing file is not an error;
// registered preferences then keep their defaults. Saved values take
// effect for keys registered before or after Load.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var file prefsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse preferences file: %w", err)
	}
	if file.Version != FileVersion {
		return fmt.Errorf("unsupported preferences file version %d", file.Version)
	}

	// Saved values win over defaults, including for keys registered
	// after Load.
	for key, value := range file.Values {
		s.values[key] = value
	}
	return nil
}

// Save writes all current values to disk, creating the parent
// directory if needed.
func (s *Store) Save() error {
	s.mu.RLock()
	file := prefsFile{
		Version: FileVersion,
		SavedAt: time.Now(),
		Values:  make(map[string]any, len(s.values)),
	}
	for key, value := range s.values {
		file.Values[key] = value
	}
	path := s.path
	s.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// register records a key's kind and applies the default unless a saved
// or earlier value exists.
func (s *Store) register(key string, kind dashboard.ValueKind, def any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.kinds[key]; ok {
		if existing != kind {
			panic(fmt.Sprintf("preferences: %q registered as %s and %s", key, existing, kind))
		}
		return
	}
	s.kinds[key] = kind
	s.order = append(s.order, key)
	if _, ok := s.values[key]; !ok {
		s.values[key] = def
	}
}

// set stores a value, mirrors it to any watching dashboard entries,
// and persists the store.
func (s *Store) set(key string, value any) {
	s.mu.Lock()
	s.values[key] = value
	kind := s.kinds[key]
	watchers := append([]*dashboard.Entry(nil), s.watchers[key]...)
	s.mu.Unlock()

	for _, entry := range watchers {
		if err := entry.Set(normalizeForKind(kind, value)); err != nil {
			s.logError("mirror", err)
		}
	}

	if err := s.Save(); err != nil {
		s.logError("save", err)
	}
}

// get returns the raw stored value for a key.
func (s *Store) get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Keys returns all registered preference keys in registration order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Float registers a float preference and returns its handle.
func (s *Store) Float(key string, def float64) *Float {
	s.register(key, dashboard.KindFloat, def)
	return &Float{store: s, key: key}
}

// Int registers an integer preference and returns its handle.
func (s *Store) Int(key string, def int64) *Int {
	s.register(key, dashboard.KindInt, def)
	return &Int{store: s, key: key}
}

// Bool registers a boolean preference and returns its handle.
func (s *Store) Bool(key string, def bool) *Bool {
	s.register(key, dashboard.KindBool, def)
	return &Bool{store: s, key: key}
}

// String registers a string preference and returns its handle.
func (s *Store) String(key string, def string) *StringPref {
	s.register(key, dashboard.KindString, def)
	return &StringPref{store: s, key: key}
}

// Float is a handle to a float preference.
type Float struct {
	store *Store
	key   string
}

// Get returns the current value.
func (p *Float) Get() float64 { return asFloat(p.store.get(p.key)) }

// Set updates and persists the value.
func (p *Float) Set(v float64) { p.store.set(p.key, v) }

// Int is a handle to an integer preference.
type Int struct {
	store *Store
	key   string
}

// Get returns the current value.
func (p *Int) Get() int64 { return asInt(p.store.get(p.key)) }

// Set updates and persists the value.
func (p *Int) Set(v int64) { p.store.set(p.key, v) }

// Bool is a handle to a boolean preference.
type Bool struct {
	store *Store
	key   string
}

// Get returns the current value.
func (p *Bool) Get() bool {
	v, _ := p.store.get(p.key).(bool)
	return v
}

// Set updates and persists the value.
func (p *Bool) Set(v bool) { p.store.set(p.key, v) }

// StringPref is a handle to a string preference.
type StringPref struct {
	store *Store
	key   string
}

// Get returns the current value.
func (p *StringPref) Get() string {
	v, _ := p.store.get(p.key).(string)
	return v
}

// Set updates and persists the value.
func (p *StringPref) Set(v string) { p.store.set(p.key, v) }

// asFloat widens JSON- and CBOR-decoded numerics to float64.
func asFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return 0
}

// asInt narrows JSON- and CBOR-decoded numerics to int64.
func asInt(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case uint64:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// AddDashboardTab exposes every registered preference as a writable
// entry on the given container. Client writes are applied and
// persisted immediately, and local Set calls show up on the dashboard
// at the next flush.
func (s *Store) AddDashboardTab(c dashboard.Container) {
	for _, key := range s.Keys() {
		s.mu.RLock()
		kind := s.kinds[key]
		value := s.values[key]
		s.mu.RUnlock()

		entry := c.Add(key, kind, normalizeForKind(kind, value))
		entry.AllowWrites(func(v any) {
			s.set(key, v)
		})
		s.watch(key, entry)
	}
}

// watch records a dashboard entry to mirror local Set calls into.
func (s *Store) watch(key string, entry *dashboard.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watchers == nil {
		s.watchers = make(map[string][]*dashboard.Entry)
	}
	s.watchers[key] = append(s.watchers[key], entry)
}

// normalizeForKind coerces a loaded JSON value to the entry's Go type.
// encoding/json decodes all numbers as float64.
func normalizeForKind(kind dashboard.ValueKind, value any) any {
	switch kind {
	case dashboard.KindFloat:
		return asFloat(value)
	case dashboard.KindInt:
		return asInt(value)
	}
	return value
}

func (s *Store) logError(op string, err error) {
	s.logger.Log(robotlog.Event{
		Timestamp: time.Now(),
		Category:  robotlog.CategoryError,
		Source:    "preferences",
		Error:     &robotlog.ErrorEventData{Op: op, Message: err.Error()},
	})
}
