package theme

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/worldview/internal/logger"
)

// Storage is the persistent key/value surface the store writes through.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Source names where the initial mode came from.
type Source string

const (
	SourcePersisted Source = "saved preference"
	SourceAmbient   Source = "environment"
	SourceDefault   Source = "default"
)

// Resolve picks the initial mode: persisted value, then ambient signal, then
// light.
func Resolve(storage Storage, ambient Ambient) (Mode, Source) {
	if storage != nil {
		if saved, ok := storage.Get(StorageKey); ok {
			if mode, ok := ParseMode(saved); ok {
				return mode, SourcePersisted
			}
		}
	}
	if ambient != nil {
		if mode, ok := ambient(); ok {
			return mode, SourceAmbient
		}
	}
	return Light, SourceDefault
}

// Store holds the active mode. It is safe for concurrent use.
type Store struct {
	// writeMu orders toggles so the last write to storage matches mode.
	writeMu     sync.Mutex
	mu          sync.RWMutex
	mode        Mode
	source      Source
	storage     Storage
	subscribers map[int]func(Mode)
	nextID      int
	log         *logger.Logger
}

// Option customises a Store.
type Option func(*Store)

// WithLogger attaches a logger for persistence failures.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New resolves the initial mode and writes it back to storage. A failed
// write is logged; the store remains usable.
func New(storage Storage, ambient Ambient, opts ...Option) *Store {
	s := &Store{
		storage:     storage,
		subscribers: make(map[int]func(Mode)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mode, s.source = Resolve(storage, ambient)
	if err := s.persist(s.mode); err != nil {
		s.log.Error(err, "failed to persist initial theme")
	}
	s.log.WithFields(map[string]any{"theme": s.mode.String(), "source": string(s.source)}).Debug("theme initialised")

	return s
}

// Mode returns the active mode.
func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Dark reports whether the dark scheme is active.
func (s *Store) Dark() bool {
	return s.Mode().IsDark()
}

// Source reports where the initial mode came from.
func (s *Store) Source() Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Toggle flips the mode, persists it and notifies subscribers. The new mode
// stays active even when persisting fails; the write error is returned.
// Subscribers must not call Toggle.
func (s *Store) Toggle() (Mode, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.mode = s.mode.Opposite()
	mode := s.mode
	subscribers := make([]func(Mode), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	err := s.persist(mode)
	if err != nil {
		s.log.Error(err, "failed to persist theme")
	}

	for _, fn := range subscribers {
		fn(mode)
	}
	return mode, err
}

// Subscribe registers fn to run after every toggle. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Mode)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) persist(mode Mode) error {
	if s.storage == nil {
		return nil
	}
	if err := s.storage.Set(StorageKey, mode.String()); err != nil {
		return fmt.Errorf("persist theme %q: %w", mode, err)
	}
	return nil
}
