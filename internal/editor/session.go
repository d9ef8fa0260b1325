// Package editor applies field edits to a loaded enemy table and writes it back.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/enemyedit/internal/data"
	"github.com/udisondev/enemyedit/internal/model"
)

var (
	// ErrUnknownField is returned for a field name not in Fields().
	ErrUnknownField = errors.New("unknown enemy field")
	// ErrReadOnlyField is returned when setting a field fixed at load time.
	ErrReadOnlyField = errors.New("enemy field is read-only")
)

// Session is one editing pass over a table set. A Session is not safe for
// concurrent use; concurrent sessions must each load their own table set.
type Session struct {
	set   *data.TableSet
	dirty map[int]struct{}
}

// Open loads the table set at paths.
func Open(ctx context.Context, paths data.TablePaths) (*Session, error) {
	set, err := data.LoadTableSet(ctx, paths)
	if err != nil {
		return nil, err
	}
	return NewSession(set), nil
}

// NewSession wraps an already loaded table set.
func NewSession(set *data.TableSet) *Session {
	return &Session{set: set, dirty: make(map[int]struct{})}
}

// TableSet returns the underlying table set.
func (s *Session) TableSet() *data.TableSet {
	return s.set
}

// Enemy returns the record at index.
func (s *Session) Enemy(index int) (*model.Enemy, error) {
	return s.set.Enemies.Enemy(index)
}

// Get reads a field of enemy index.
func (s *Session) Get(index int, name string) (int, error) {
	e, f, err := s.lookup(index, name)
	if err != nil {
		return 0, err
	}
	return f.get(e), nil
}

// Set writes a field of enemy index and returns the value actually stored,
// which differs from value only for disable.instant_death.
func (s *Session) Set(index int, name string, value int) (int, error) {
	e, f, err := s.lookup(index, name)
	if err != nil {
		return 0, err
	}
	if f.set == nil {
		return 0, fmt.Errorf("%w: %s", ErrReadOnlyField, name)
	}
	before := f.get(e)
	if err := f.set(e, value); err != nil {
		return 0, fmt.Errorf("setting %s on enemy %d: %w", name, index, err)
	}

	stored := f.get(e)
	if stored != before {
		s.dirty[index] = struct{}{}
	}
	slog.Debug("enemy edited",
		"index", index,
		"field", name,
		"value", value,
		"stored", stored)
	return stored, nil
}

// Dirty returns the indexes of enemies whose stored values changed since the
// last Save, in ascending order.
func (s *Session) Dirty() []int {
	out := make([]int, 0, len(s.dirty))
	for i := range s.dirty {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Save writes the enemy table back. See data.SaveTableSet for force.
func (s *Session) Save(force bool) error {
	if err := data.SaveTableSet(s.set, force); err != nil {
		return err
	}
	clear(s.dirty)
	return nil
}

func (s *Session) lookup(index int, name string) (*model.Enemy, field, error) {
	f, ok := fields[name]
	if !ok {
		return nil, field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	e, err := s.set.Enemies.Enemy(index)
	if err != nil {
		return nil, field{}, err
	}
	return e, f, nil
}
