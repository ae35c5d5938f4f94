// Package config manages difficulty profiles: named removal-count ranges
// applied after full-board generation. The built-in profiles (easy,
// medium, hard) are always present; a config directory may add custom
// profiles as JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cityjumper/mysudoku/game/engine"
	"github.com/cityjumper/mysudoku/game/service"
)

var (
	ErrProfileNotFound = errors.New("difficulty profile not found")
	ErrInvalidProfile  = errors.New("invalid difficulty profile")
)

// DefaultDifficulty is used when a request names no difficulty
const DefaultDifficulty = string(engine.Medium)

// Profile is a named removal-count range
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MinRemoved  int    `json:"min_removed"`
	MaxRemoved  int    `json:"max_removed"`
}

// Manager handles difficulty profile loading and resolution
type Manager struct {
	profiles map[string]*Profile
	rng      *rand.Rand
	mu       sync.Mutex
}

// NewManager creates a manager holding the built-in profiles plus any
// custom JSON profiles found in configDir. An empty or missing directory
// is fine; the built-ins always apply.
func NewManager(configDir string) (*Manager, error) {
	m := &Manager{
		profiles: builtinProfiles(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if configDir != "" {
		if err := m.loadCustomProfiles(configDir); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// builtinProfiles mirrors the engine's removal ranges
func builtinProfiles() map[string]*Profile {
	profiles := make(map[string]*Profile)
	descriptions := map[engine.Difficulty]string{
		engine.Easy:   "Gentle puzzles with most of the board given",
		engine.Medium: "The standard challenge",
		engine.Hard:   "Sparse boards for experienced players",
	}

	for _, d := range []engine.Difficulty{engine.Easy, engine.Medium, engine.Hard} {
		min, max := engine.RemovalRange(d)
		profiles[string(d)] = &Profile{
			ID:          string(d),
			Name:        titleCase(string(d)),
			Description: descriptions[d],
			MinRemoved:  min,
			MaxRemoved:  max,
		}
	}
	return profiles
}

// titleCase upper-cases the first letter of an ASCII identifier
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// loadCustomProfiles reads every *.json file in dir as a Profile
func (m *Manager) loadCustomProfiles(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read profile %s: %w", entry.Name(), err)
		}

		var p Profile
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("failed to parse profile %s: %w", entry.Name(), err)
		}

		if p.ID == "" {
			p.ID = strings.TrimSuffix(entry.Name(), ".json")
		}
		if err := validateProfile(&p); err != nil {
			return fmt.Errorf("profile %s: %w", entry.Name(), err)
		}

		m.profiles[p.ID] = &p
	}

	return nil
}

// validateProfile enforces a sane removal range
func validateProfile(p *Profile) error {
	if p.MinRemoved < 0 || p.MaxRemoved > engine.TotalCells {
		return fmt.Errorf("%w: removal range must stay within 0-%d", ErrInvalidProfile, engine.TotalCells)
	}
	if p.MinRemoved > p.MaxRemoved {
		return fmt.Errorf("%w: min_removed exceeds max_removed", ErrInvalidProfile)
	}
	return nil
}

// Get returns a profile by id
func (m *Manager) Get(id string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.profiles[id]
	if !exists {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// Resolve maps a difficulty name to its canonical id and a removal count
// rolled from the profile's range. Unknown names keep their tag and get
// the fixed fallback count of 40, matching the engine's own fallback.
func (m *Manager) Resolve(name string) (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.profiles[name]
	if !exists {
		min, max := engine.RemovalRange(engine.Difficulty(name))
		p = &Profile{ID: name, MinRemoved: min, MaxRemoved: max}
	}

	count := p.MinRemoved
	if p.MaxRemoved > p.MinRemoved {
		count += m.rng.Intn(p.MaxRemoved - p.MinRemoved + 1)
	}
	return p.ID, count
}

// List returns all profiles sorted by increasing removal count
func (m *Manager) List() []*service.DifficultyInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	infos := make([]*service.DifficultyInfo, 0, len(m.profiles))
	for _, p := range m.profiles {
		infos = append(infos, &service.DifficultyInfo{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			MinRemoved:  p.MinRemoved,
			MaxRemoved:  p.MaxRemoved,
			Default:     p.ID == DefaultDifficulty,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].MinRemoved != infos[j].MinRemoved {
			return infos[i].MinRemoved < infos[j].MinRemoved
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Default returns the difficulty used when none is requested
func (m *Manager) Default() string {
	return DefaultDifficulty
}
