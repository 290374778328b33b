package dashboard

import (
	"errors"
	"fmt"
	"sync"
)

// Entry errors.
var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrNotWritable   = errors.New("entry is not writable")
	ErrKindMismatch  = errors.New("value does not match entry kind")
)

// ValueKind is the data type of an entry.
type ValueKind uint8

const (
	// KindFloat is a float64 entry.
	KindFloat ValueKind = iota + 1
	// KindInt is an int64 entry.
	KindInt
	// KindBool is a bool entry.
	KindBool
	// KindString is a string entry.
	KindString
	// KindStringList is a []string entry.
	KindStringList
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindFloat:
		return "FLOAT"
	case KindInt:
		return "INT"
	case KindBool:
		return "BOOL"
	case KindString:
		return "STRING"
	case KindStringList:
		return "STRING_LIST"
	default:
		return "UNKNOWN"
	}
}

// checkKind validates that the value matches the kind.
func checkKind(kind ValueKind, value any) error {
	ok := false
	switch kind {
	case KindFloat:
		_, ok = value.(float64)
	case KindInt:
		_, ok = value.(int64)
	case KindBool:
		_, ok = value.(bool)
	case KindString:
		_, ok = value.(string)
	case KindStringList:
		_, ok = value.([]string)
	}
	if !ok {
		return fmt.Errorf("%w: %s got %T", ErrKindMismatch, kind, value)
	}
	return nil
}

// Entry is a single named telemetry value. Entries are safe for
// concurrent use: subsystems update them from the robot loop while the
// server reads them from its flush goroutine.
type Entry struct {
	mu       sync.RWMutex
	path     string
	kind     ValueKind
	value    any
	widget   string
	writable bool
	onWrite  func(any)
	dirty    bool
}

// Path returns the full entry path ("Tab/Layout/Name").
func (e *Entry) Path() string { return e.path }

// Kind returns the entry's value kind.
func (e *Entry) Kind() ValueKind { return e.kind }

// Set updates the entry value and marks it dirty. The value must match
// the entry kind.
func (e *Entry) Set(value any) error {
	if err := checkKind(e.kind, value); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.value == nil || !equalValue(e.value, value) {
		e.value = value
		e.dirty = true
	}
	return nil
}

// equalValue compares entry values. String lists compare element-wise.
func equalValue(a, b any) bool {
	as, aok := a.([]string)
	bs, bok := b.([]string)
	if aok || bok {
		if !aok || !bok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if as[i] != bs[i] {
				return false
			}
		}
		return true
	}
	return a == b
}

// Get returns the current value.
func (e *Entry) Get() any {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.value
}

// SetFloat updates a float entry.
func (e *Entry) SetFloat(v float64) error { return e.Set(v) }

// Float reads a float entry; non-float entries read 0.
func (e *Entry) Float() float64 {
	v, _ := e.Get().(float64)
	return v
}

// SetInt updates an int entry.
func (e *Entry) SetInt(v int64) error { return e.Set(v) }

// Int reads an int entry; non-int entries read 0.
func (e *Entry) Int() int64 {
	v, _ := e.Get().(int64)
	return v
}

// SetBool updates a bool entry.
func (e *Entry) SetBool(v bool) error { return e.Set(v) }

// Bool reads a bool entry; non-bool entries read false.
func (e *Entry) Bool() bool {
	v, _ := e.Get().(bool)
	return v
}

// SetString updates a string entry.
func (e *Entry) SetString(v string) error { return e.Set(v) }

// String reads a string entry; non-string entries read "".
func (e *Entry) String() string {
	v, _ := e.Get().(string)
	return v
}

// WithWidget sets a display hint for dashboard clients.
func (e *Entry) WithWidget(widget string) *Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.widget = widget
	return e
}

// AllowWrites marks the entry writable by dashboard clients. The
// callback, if non-nil, runs after each accepted client write.
func (e *Entry) AllowWrites(onWrite func(value any)) *Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.writable = true
	e.onWrite = onWrite
	return e
}

// state captures the entry for the wire, optionally clearing the dirty
// flag.
func (e *Entry) state(clearDirty bool) EntryState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if clearDirty {
		e.dirty = false
	}
	return EntryState{
		Path:     e.path,
		Kind:     e.kind,
		Value:    e.value,
		Writable: e.writable,
		Widget:   e.widget,
	}
}

// isDirty reports whether the entry changed since the last flush.
func (e *Entry) isDirty() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dirty
}

// Board is the registry of all dashboard entries, organized into tabs.
type Board struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	order   []string
	tabs    map[string]*Tab
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		entries: make(map[string]*Entry),
		tabs:    make(map[string]*Tab),
	}
}

// Tab returns the named tab, creating it if needed.
func (b *Board) Tab(name string) *Tab {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.tabs[name]; ok {
		return t
	}
	t := &Tab{board: b, name: name}
	b.tabs[name] = t
	return t
}

// Entry returns the entry at the given path.
func (b *Board) Entry(path string) (*Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.entries[path]
	if !ok {
		return nil, ErrEntryNotFound
	}
	return e, nil
}

// add registers a new entry. Duplicate paths keep the first registration.
func (b *Board) add(path string, kind ValueKind, def any) *Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	if e, ok := b.entries[path]; ok {
		return e
	}
	e := &Entry{path: path, kind: kind, value: def, dirty: true}
	b.entries[path] = e
	b.order = append(b.order, path)
	return e
}

// Snapshot returns the state of every entry in registration order.
func (b *Board) Snapshot() []EntryState {
	b.mu.RLock()
	paths := append([]string(nil), b.order...)
	b.mu.RUnlock()

	out := make([]EntryState, 0, len(paths))
	for _, p := range paths {
		b.mu.RLock()
		e := b.entries[p]
		b.mu.RUnlock()
		out = append(out, e.state(false))
	}
	return out
}

// Dirty returns the state of entries changed since the last call and
// clears their dirty flags.
func (b *Board) Dirty() []EntryState {
	b.mu.RLock()
	paths := append([]string(nil), b.order...)
	b.mu.RUnlock()

	var out []EntryState
	for _, p := range paths {
		b.mu.RLock()
		e := b.entries[p]
		b.mu.RUnlock()
		if e.isDirty() {
			out = append(out, e.state(true))
		}
	}
	return out
}

// Write applies a client write to a writable entry.
func (b *Board) Write(path string, value any) error {
	e, err := b.Entry(path)
	if err != nil {
		return err
	}

	e.mu.RLock()
	writable := e.writable
	onWrite := e.onWrite
	e.mu.RUnlock()

	if !writable {
		return ErrNotWritable
	}
	if err := e.Set(normalizeValue(e.Kind(), value)); err != nil {
		return err
	}
	if onWrite != nil {
		onWrite(e.Get())
	}
	return nil
}

// normalizeValue converts CBOR-decoded numerics to the entry's Go type.
// CBOR decodes integers as uint64/int64 and may decode whole floats as
// integers.
func normalizeValue(kind ValueKind, value any) any {
	switch kind {
	case KindFloat:
		switch v := value.(type) {
		case int64:
			return float64(v)
		case uint64:
			return float64(v)
		}
	case KindInt:
		switch v := value.(type) {
		case uint64:
			return int64(v)
		case float64:
			return int64(v)
		}
	case KindStringList:
		if vs, ok := value.([]any); ok {
			out := make([]string, 0, len(vs))
			for _, v := range vs {
				if s, ok := v.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return value
}

// Container is anything entries can be added to (tabs and layouts).
type Container interface {
	// Add registers an entry with the given name, kind, and default value.
	Add(name string, kind ValueKind, def any) *Entry
}

// Tab is a top-level grouping of entries.
type Tab struct {
	board *Board
	name  string
}

// Name returns the tab name.
func (t *Tab) Name() string { return t.name }

// Layout returns a named layout within the tab.
func (t *Tab) Layout(name string) *Layout {
	return &Layout{board: t.board, path: t.name + "/" + name}
}

// Add registers an entry directly on the tab.
func (t *Tab) Add(name string, kind ValueKind, def any) *Entry {
	return t.board.add(t.name+"/"+name, kind, def)
}

// AddNumber registers a float entry on the tab.
func (t *Tab) AddNumber(name string, def float64) *Entry {
	return t.Add(name, KindFloat, def)
}

// AddBoolean registers a bool entry on the tab.
func (t *Tab) AddBoolean(name string, def bool) *Entry {
	return t.Add(name, KindBool, def)
}

// AddString registers a string entry on the tab.
func (t *Tab) AddString(name string, def string) *Entry {
	return t.Add(name, KindString, def)
}

// Layout is a grouping of entries within a tab.
type Layout struct {
	board *Board
	path  string
}

// Add registers an entry in the layout.
func (l *Layout) Add(name string, kind ValueKind, def any) *Entry {
	return l.board.add(l.path+"/"+name, kind, def)
}

// AddNumber registers a float entry in the layout.
func (l *Layout) AddNumber(name string, def float64) *Entry {
	return l.Add(name, KindFloat, def)
}

// AddBoolean registers a bool entry in the layout.
func (l *Layout) AddBoolean(name string, def bool) *Entry {
	return l.Add(name, KindBool, def)
}

// AddString registers a string entry in the layout.
func (l *Layout) AddString(name string, def string) *Entry {
	return l.Add(name, KindString, def)
}

// Compile-time interface satisfaction checks.
var (
	_ Container = (*Tab)(nil)
	_ Container = (*Layout)(nil)
)
