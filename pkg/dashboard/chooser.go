package dashboard

import (
	"sync"
)

// Chooser is a mutually-exclusive option selector published to the
// dashboard: a read-only option list plus a writable selection entry.
// Used for the autonomous routine selector.
type Chooser struct {
	mu       sync.RWMutex
	options  []string
	selected string

	optionsEntry  *Entry
	selectedEntry *Entry
}

// NewChooser creates a chooser published under the given container with
// "<name> options" and "<name>" entries.
func NewChooser(c Container, name string) *Chooser {
	ch := &Chooser{}
	ch.optionsEntry = c.Add(name+" options", KindStringList, []string(nil)).
		WithWidget("chooser-options")
	ch.selectedEntry = c.Add(name, KindString, "").
		WithWidget("chooser")
	ch.selectedEntry.AllowWrites(func(value any) {
		s, ok := value.(string)
		ch.mu.Lock()
		if ok && ch.hasOption(s) {
			ch.selected = s
			ch.mu.Unlock()
			return
		}
		selected := ch.selected
		ch.mu.Unlock()
		// The write already landed in the entry; push the accepted
		// selection back so the next flush re-syncs clients.
		_ = ch.selectedEntry.Set(selected)
	})
	return ch
}

// hasOption reports whether the option is registered. Caller holds mu.
func (c *Chooser) hasOption(name string) bool {
	for _, o := range c.options {
		if o == name {
			return true
		}
	}
	return false
}

// AddOption registers an option. The first option added becomes the
// default selection.
func (c *Chooser) AddOption(name string) {
	c.mu.Lock()
	if c.hasOption(name) {
		c.mu.Unlock()
		return
	}
	c.options = append(c.options, name)
	if c.selected == "" {
		c.selected = name
	}
	options := append([]string(nil), c.options...)
	selected := c.selected
	c.mu.Unlock()

	_ = c.optionsEntry.Set(options)
	_ = c.selectedEntry.Set(selected)
}

// SetDefault selects the given option if it is registered.
func (c *Chooser) SetDefault(name string) {
	c.mu.Lock()
	if !c.hasOption(name) {
		c.mu.Unlock()
		return
	}
	c.selected = name
	c.mu.Unlock()

	_ = c.selectedEntry.Set(name)
}

// Selected returns the currently selected option.
func (c *Chooser) Selected() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected
}

// Options returns the registered options in order.
func (c *Chooser) Options() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.options...)
}
