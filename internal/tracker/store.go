// Package tracker owns the list of tracked habits and keeps the durable copy
// in step with it.
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/brk3/quit/internal/elapsed"
	"github.com/brk3/quit/internal/logger"
	"github.com/brk3/quit/internal/storage"
	"github.com/brk3/quit/pkg/habit"
)

// DefaultKey is the storage key the habit list lives under.
const DefaultKey = "quit-tracker-data"

const maxNameLength = 32

var (
	ErrInvalidName = errors.New("habit name must be 1-32 characters")
	ErrInvalidDate = errors.New("quit date is required")
)

type Store struct {
	mu     sync.RWMutex
	kv     storage.KV
	key    string
	newID  func() string
	habits []habit.TrackedHabit
}

type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithIDGenerator replaces the uuid id source.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// Open builds a Store over kv and loads whatever it already holds.
func Open(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		key:   DefaultKey,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	s.Load()
	return s
}

// Load replaces the in-memory list with the stored one. Missing or
// malformed data gives an empty list; individual invalid records are
// dropped and the rest kept.
func (s *Store) Load() []habit.TrackedHabit {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.habits = s.read()
	return slices.Clone(s.habits)
}

func (s *Store) read() []habit.TrackedHabit {
	data, err := s.kv.Get(s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read habits, starting empty", "key", s.key, "error", err)
		}
		return []habit.TrackedHabit{}
	}

	var habits []habit.TrackedHabit
	if err := json.Unmarshal(data, &habits); err != nil {
		logger.Warn("Stored habits are malformed, starting empty", "key", s.key, "error", err)
		return []habit.TrackedHabit{}
	}
	return s.validRecords(habits)
}

// validRecords drops records that could not have come from Add: a missing
// id, name or quit date, or an id already seen earlier in the list.
func (s *Store) validRecords(habits []habit.TrackedHabit) []habit.TrackedHabit {
	out := make([]habit.TrackedHabit, 0, len(habits))
	seen := make(map[string]struct{}, len(habits))
	for i, h := range habits {
		var reason string
		_, dup := seen[h.ID]
		switch {
		case h.ID == "":
			reason = "missing id"
		case strings.TrimSpace(h.Name) == "":
			reason = "missing name"
		case h.QuitDate.IsZero():
			reason = "missing quit date"
		case dup:
			reason = "duplicate id"
		}
		if reason != "" {
			logger.Warn("Dropping invalid stored habit", "key", s.key, "index", i, "habit_id", h.ID, "reason", reason)
			continue
		}
		seen[h.ID] = struct{}{}
		out = append(out, h)
	}
	return out
}

func (s *Store) persist(habits []habit.TrackedHabit) error {
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("encode habits: %w", err)
	}
	if err := s.kv.Put(s.key, data); err != nil {
		return fmt.Errorf("write habits: %w", err)
	}
	return nil
}

// Add appends a new habit and writes the whole list.
func (s *Store) Add(name, icon string, quit habit.Date) (habit.TrackedHabit, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameLength {
		return habit.TrackedHabit{}, ErrInvalidName
	}
	if quit.IsZero() {
		return habit.TrackedHabit{}, ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h := habit.TrackedHabit{
		ID:       s.uniqueID(),
		Name:     name,
		QuitDate: quit,
		Icon:     icon,
	}
	next := append(slices.Clone(s.habits), h)
	if err := s.persist(next); err != nil {
		logger.Error("Failed to persist new habit", "habit_name", name, "error", err)
		return habit.TrackedHabit{}, err
	}
	s.habits = next

	logger.Info("Habit added", "habit_id", h.ID, "habit_name", h.Name, "quit_date", h.QuitDate.String())
	return h, nil
}

func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.habits, func(h habit.TrackedHabit) bool { return h.ID == id })
}

// Remove drops the habit with id and writes the list. It reports whether a
// habit was removed; unknown ids are ignored and leave storage untouched.
func (s *Store) Remove(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		logger.Debug("Remove of unknown habit ignored", "habit_id", id)
		return false, nil
	}
	next := slices.Delete(slices.Clone(s.habits), i, i+1)
	if err := s.persist(next); err != nil {
		logger.Error("Failed to persist habit removal", "habit_id", id, "error", err)
		return false, err
	}
	s.habits = next

	logger.Info("Habit removed", "habit_id", id)
	return true, nil
}

// List returns the habits in insertion order.
func (s *Store) List() []habit.TrackedHabit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.habits)
}

func (s *Store) Get(id string) (habit.TrackedHabit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return habit.TrackedHabit{}, false
	}
	return s.habits[i], true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.habits)
}

// TotalDaysAcrossAll sums the whole elapsed days of every habit at now.
func (s *Store) TotalDaysAcrossAll(now time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, h := range s.habits {
		total += elapsed.ForHabit(h, now).Days
	}
	return total
}

// Progress computes the display view of every habit at now.
func (s *Store) Progress(now time.Time) []habit.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]habit.Progress, 0, len(s.habits))
	for _, h := range s.habits {
		out = append(out, elapsed.Progress(h, now))
	}
	return out
}
