package themes

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/styledot/pkg/errors"
	"github.com/arthur-debert/styledot/pkg/styles"
)

func newSheet(rules map[string]string) *styles.Sheet[string] {
	s := styles.New[string](styles.WithLogger(zerolog.Nop()))
	for path, value := range rules {
		_ = s.Set(path, nil, value)
	}
	return s
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry[string]()

	if reg == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if reg.Count() != 0 {
		t.Errorf("new registry should be empty, got count %d", reg.Count())
	}
	if reg.ActiveName() != "" {
		t.Errorf("new registry should have no active theme, got %q", reg.ActiveName())
	}
}

func TestRegister(t *testing.T) {
	reg := NewRegistry[string]()

	t.Run("register valid theme", func(t *testing.T) {
		err := reg.Register("dark", newSheet(map[string]string{"panel": "#202020"}))

		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", newSheet(nil))

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register nil sheet", func(t *testing.T) {
		err := reg.Register("broken", nil)

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with nil sheet should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("dark", newSheet(nil))

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})
}

func TestGetAndResolve(t *testing.T) {
	reg := NewRegistry[string]()
	_ = reg.Register("dark", newSheet(map[string]string{"panel": "#202020"}))

	t.Run("get existing theme", func(t *testing.T) {
		sheet, err := reg.Get("dark")
		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}

		v, ok := sheet.Match(styles.Query{Nouns: []string{"panel"}})
		if !ok || v != "#202020" {
			t.Errorf("resolved %q, %v; want #202020, true", v, ok)
		}
	})

	t.Run("get missing theme", func(t *testing.T) {
		_, err := reg.Get("light")
		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() missing should return ErrNotFound, got %v", err)
		}
	})
}

func TestActiveTheme(t *testing.T) {
	reg := NewRegistry[string]()
	_ = reg.Register("dark", newSheet(map[string]string{"panel": "#202020"}))
	_ = reg.Register("light", newSheet(map[string]string{"panel": "#fafafa"}))

	t.Run("no active theme initially", func(t *testing.T) {
		if _, err := reg.Active(); !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Active() with nothing active should return ErrNotFound, got %v", err)
		}
	})

	t.Run("set active", func(t *testing.T) {
		if err := reg.SetActive("dark"); err != nil {
			t.Fatalf("SetActive() error = %v, want nil", err)
		}
		if reg.ActiveName() != "dark" {
			t.Errorf("ActiveName() = %q, want dark", reg.ActiveName())
		}

		sheet, err := reg.Active()
		if err != nil {
			t.Fatalf("Active() error = %v, want nil", err)
		}
		v, _ := sheet.Match(styles.Query{Nouns: []string{"panel"}})
		if v != "#202020" {
			t.Errorf("active theme resolved %q, want #202020", v)
		}
	})

	t.Run("switch active", func(t *testing.T) {
		if err := reg.SetActive("light"); err != nil {
			t.Fatalf("SetActive() error = %v, want nil", err)
		}

		sheet, _ := reg.Active()
		v, _ := sheet.Match(styles.Query{Nouns: []string{"panel"}})
		if v != "#fafafa" {
			t.Errorf("active theme resolved %q, want #fafafa", v)
		}
	})

	t.Run("set active unregistered", func(t *testing.T) {
		err := reg.SetActive("sepia")
		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("SetActive() unregistered should return ErrNotFound, got %v", err)
		}
		if reg.ActiveName() != "light" {
			t.Errorf("failed SetActive must not change the active theme, got %q", reg.ActiveName())
		}
	})

	t.Run("removing active deactivates", func(t *testing.T) {
		if err := reg.Remove("light"); err != nil {
			t.Fatalf("Remove() error = %v, want nil", err)
		}
		if reg.ActiveName() != "" {
			t.Errorf("ActiveName() after removing active = %q, want empty", reg.ActiveName())
		}
	})
}

func TestRemove(t *testing.T) {
	reg := NewRegistry[string]()
	_ = reg.Register("dark", newSheet(nil))

	if err := reg.Remove("dark"); err != nil {
		t.Fatalf("Remove() error = %v, want nil", err)
	}
	if reg.Has("dark") {
		t.Error("Has() after Remove() = true, want false")
	}

	if err := reg.Remove("dark"); !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Remove() missing should return ErrNotFound, got %v", err)
	}
}

func TestListSorted(t *testing.T) {
	reg := NewRegistry[string]()
	for _, name := range []string{"zen", "dark", "light"} {
		_ = reg.Register(name, newSheet(nil))
	}

	names := reg.List()
	if len(names) != 3 {
		t.Fatalf("List() returned %d names, want 3", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("List() = %v, want sorted order", names)
	}
}

func TestClear(t *testing.T) {
	reg := NewRegistry[string]()
	_ = reg.Register("dark", newSheet(nil))
	_ = reg.SetActive("dark")

	reg.Clear()

	if reg.Count() != 0 {
		t.Errorf("Count() after Clear() = %d, want 0", reg.Count())
	}
	if reg.ActiveName() != "" {
		t.Errorf("ActiveName() after Clear() = %q, want empty", reg.ActiveName())
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := NewRegistry[string]()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("theme%d", n)
			_ = reg.Register(name, newSheet(nil))
			_ = reg.SetActive(name)
			_, _ = reg.Get(name)
			_ = reg.List()
			_ = reg.ActiveName()
		}(i)
	}
	wg.Wait()

	if reg.Count() != 10 {
		t.Errorf("Count() after concurrent registration = %d, want 10", reg.Count())
	}
}

func TestMustHelpers(t *testing.T) {
	reg := NewRegistry[string]()
	MustRegister(reg, "dark", newSheet(map[string]string{"panel": "#202020"}))

	sheet := MustGet(reg, "dark")
	if sheet == nil {
		t.Fatal("MustGet() returned nil sheet")
	}

	t.Run("MustRegister panics on duplicate", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustRegister() duplicate should panic")
			}
		}()
		MustRegister(reg, "dark", newSheet(nil))
	})

	t.Run("MustGet panics on missing", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustGet() missing should panic")
			}
		}()
		MustGet(reg, "missing")
	})
}
