package locale

import (
	"log"
	"strings"
	"sync"
)

// Store is the code -> Locale registry of spec.md §4.14. It is safe for
// concurrent use; the documented usage pattern is "initialize, then
// read" per spec.md §1.8, but Store itself tolerates concurrent
// register/set_active calls defensively.
type Store struct {
	mu     sync.RWMutex
	data   map[string]Locale
	active string
}

// NewStore returns an empty Store with no active locale set.
func NewStore() *Store {
	return &Store{data: make(map[string]Locale)}
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Register adds or replaces the Locale for code.
func (s *Store) Register(code string, l Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[normalizeCode(code)] = l
	if s.active == "" {
		s.active = normalizeCode(code)
	}
}

// Get returns the Locale registered for code, if any.
func (s *Store) Get(code string) (Locale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.data[normalizeCode(code)]
	return l, ok
}

// Active returns the currently active locale code, or "" if none has
// ever been registered or set.
func (s *Store) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// ActiveLocale returns the currently active Locale value, if one is
// registered.
func (s *Store) ActiveLocale() (Locale, bool) {
	s.mu.RLock()
	active := s.active
	s.mu.RUnlock()
	return s.Get(active)
}

// SetActive changes the active locale to code. Per spec.md §4.14, an
// unknown code is a no-op (the previous active locale is kept, with a
// warning logged) rather than an error; ok reports whether code was
// known and became active.
func (s *Store) SetActive(code string) (ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	norm := normalizeCode(code)
	if _, exists := s.data[norm]; !exists {
		log.Printf("kairos/locale: set_active(%q) ignored: no locale registered under that code", code)
		return false
	}
	s.active = norm
	return true
}

// List returns every registered locale code.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, 0, len(s.data))
	for code := range s.data {
		codes = append(codes, code)
	}
	return codes
}

// Global is the process-wide locale store, matching the source's
// module-level active-locale state per spec.md's Design Notes. Hosts
// that need per-call isolation instead of process-wide state should
// construct their own Store with NewStore and pass it explicitly.
var Global = NewStore()

func init() {
	RegisterBuiltins(Global)
	Global.SetActive("en-US")
}
