package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinProfiles(t *testing.T) {
	m, err := NewManager("")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	cases := []struct {
		id       string
		min, max int
	}{
		{"easy", 30, 35},
		{"medium", 40, 45},
		{"hard", 50, 55},
	}
	for _, c := range cases {
		p, err := m.Get(c.id)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", c.id, err)
		}
		if p.MinRemoved != c.min || p.MaxRemoved != c.max {
			t.Errorf("Profile %s range = [%d,%d], want [%d,%d]",
				c.id, p.MinRemoved, p.MaxRemoved, c.min, c.max)
		}
	}

	if _, err := m.Get("nightmare"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	m, err := NewManager("")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	t.Run("known profile rolls within its range", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			id, count := m.Resolve("hard")
			if id != "hard" {
				t.Fatalf("Resolve id = %s, want hard", id)
			}
			if count < 50 || count > 55 {
				t.Errorf("Resolved count %d outside [50,55]", count)
			}
		}
	})

	t.Run("unknown name keeps its tag with fixed count", func(t *testing.T) {
		id, count := m.Resolve("nightmare")
		if id != "nightmare" {
			t.Errorf("Resolve id = %s, want nightmare", id)
		}
		if count != 40 {
			t.Errorf("Resolved count = %d, want the fixed fallback 40", count)
		}
	})
}

func TestLoadCustomProfiles(t *testing.T) {
	t.Run("missing directory is allowed", func(t *testing.T) {
		if _, err := NewManager(filepath.Join(t.TempDir(), "nope")); err != nil {
			t.Fatalf("NewManager failed for a missing directory: %v", err)
		}
	})

	t.Run("custom profile joins the built-ins", func(t *testing.T) {
		dir := t.TempDir()
		data := `{"name": "Extreme", "description": "Almost nothing given", "min_removed": 58, "max_removed": 60}`
		if err := os.WriteFile(filepath.Join(dir, "extreme.json"), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		m, err := NewManager(dir)
		if err != nil {
			t.Fatalf("NewManager failed: %v", err)
		}

		p, err := m.Get("extreme")
		if err != nil {
			t.Fatalf("Get(extreme) failed: %v", err)
		}
		if p.ID != "extreme" {
			t.Errorf("Expected ID from filename, got %s", p.ID)
		}
		if p.MinRemoved != 58 || p.MaxRemoved != 60 {
			t.Errorf("Range = [%d,%d], want [58,60]", p.MinRemoved, p.MaxRemoved)
		}

		if got := len(m.List()); got != 4 {
			t.Errorf("Expected 4 profiles, got %d", got)
		}
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		dir := t.TempDir()
		data := `{"min_removed": 50, "max_removed": 20}`
		if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := NewManager(dir); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("Expected ErrInvalidProfile, got %v", err)
		}
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := NewManager(dir); err == nil {
			t.Error("Expected an error for malformed JSON")
		}
	})
}

func TestList(t *testing.T) {
	m, err := NewManager("")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	infos := m.List()
	if len(infos) != 3 {
		t.Fatalf("Expected 3 built-in profiles, got %d", len(infos))
	}

	wantOrder := []string{"easy", "medium", "hard"}
	for i, want := range wantOrder {
		if infos[i].ID != want {
			t.Errorf("List[%d].ID = %s, want %s", i, infos[i].ID, want)
		}
	}

	for _, info := range infos {
		if got := info.ID == m.Default(); info.Default != got {
			t.Errorf("Profile %s Default flag = %t", info.ID, info.Default)
		}
	}
}
