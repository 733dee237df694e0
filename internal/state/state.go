// Package state persists small client-side preferences that don't belong on
// the server: the per-canvas tabs toggle and the last opened canvas. One
// JSON file under the user config dir.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

type prefs struct {
	TabsEnabled map[string]bool `json:"tabsEnabled,omitempty"`
	LastCanvas  string          `json:"lastCanvas,omitempty"`
}

// Store is a mutex-guarded preferences file. Zero value is unusable; create
// with Open.
type Store struct {
	mu   sync.Mutex
	path string
	p    prefs
}

// Open loads (or initializes) the preferences file under dir. A missing or
// unreadable file starts fresh rather than failing: prefs are best-effort.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{
		path: filepath.Join(dir, "state.json"),
		p:    prefs{TabsEnabled: map[string]bool{}},
	}
	data, err := os.ReadFile(s.path)
	if err == nil {
		_ = json.Unmarshal(data, &s.p)
	}
	if s.p.TabsEnabled == nil {
		s.p.TabsEnabled = map[string]bool{}
	}
	return s, nil
}

// DefaultDir is where Open puts the file unless overridden.
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "pinboard")
	}
	return ".pinboard"
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// TabsEnabled reports whether the tab bar is shown for a canvas. Defaults
// to true for canvases never toggled.
func (s *Store) TabsEnabled(canvasID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.p.TabsEnabled[strconv.FormatUint(uint64(canvasID), 10)]
	if !ok {
		return true
	}
	return v
}

func (s *Store) SetTabsEnabled(canvasID uint, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.TabsEnabled[strconv.FormatUint(uint64(canvasID), 10)] = enabled
	return s.save()
}

func (s *Store) LastCanvas() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.LastCanvas
}

func (s *Store) SetLastCanvas(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.LastCanvas = name
	return s.save()
}
