package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"inventory-console/internal/model"
	"inventory-console/internal/storage"
	"inventory-console/internal/token"
)

// Durable storage keys. Both are written and removed together: an identity
// snapshot without its token (or the reverse) must never survive.
const (
	tokenKey    = "auth_token"
	identityKey = "current_user"
)

// ErrSessionRejected marks a freshly obtained token that is undecodable or
// already expired at commit time. Surfaced to the user as a sign-in failure.
var ErrSessionRejected = errors.New("session rejected")

// Store holds the current authenticated identity, persists the backing token,
// and notifies subscribers on every transition.
type Store struct {
	storage storage.Store
	logger  *slog.Logger
	now     func() time.Time

	mu          sync.RWMutex
	current     *model.Identity
	rawToken    string
	subscribers map[string]chan *model.Identity
}

func New(st storage.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		storage:     st,
		logger:      logger,
		now:         time.Now,
		subscribers: map[string]chan *model.Identity{},
	}
}

// Restore rebuilds the session from the persisted token, typically at app
// start. A missing token leaves the store empty; an undecodable or expired
// one additionally wipes durable state. Both cases are silent, equivalent to
// a fresh anonymous start.
func (s *Store) Restore() {
	raw, ok := s.storage.Get(tokenKey)
	if !ok || raw == "" {
		return
	}

	claims, err := token.Decode(raw)
	if err != nil {
		s.logger.Debug("discarding persisted token", "error", err)
		s.Clear()
		return
	}

	if token.IsExpired(claims, s.now()) {
		s.logger.Debug("persisted token expired", "user", claims.Username)
		s.Clear()
		return
	}

	s.set(raw, claims.Identity())
}

// Commit establishes a session from a freshly obtained token. A token that
// cannot be decoded or is already expired clears everything and fails with
// ErrSessionRejected.
func (s *Store) Commit(raw string) error {
	claims, err := token.Decode(raw)
	if err != nil {
		s.Clear()
		return fmt.Errorf("%w: %v", ErrSessionRejected, err)
	}

	if token.IsExpired(claims, s.now()) {
		s.Clear()
		return fmt.Errorf("%w: token already expired", ErrSessionRejected)
	}

	s.set(raw, claims.Identity())
	return nil
}

// Clear removes the session from memory and durable storage. Safe to call
// when already empty.
func (s *Store) Clear() {
	s.mu.Lock()
	s.rawToken = ""
	s.current = nil
	if err := s.storage.Remove(tokenKey); err != nil {
		s.logger.Warn("failed to remove persisted token", "error", err)
	}
	if err := s.storage.Remove(identityKey); err != nil {
		s.logger.Warn("failed to remove identity snapshot", "error", err)
	}
	s.mu.Unlock()

	s.emit(nil)
}

// Peek returns the current identity, or nil when anonymous. Synchronous
// snapshot for call sites that cannot subscribe, such as the route gate.
func (s *Store) Peek() *model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Token returns the raw bearer token of the current session, or empty.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rawToken
}

// Subscribe registers for identity transitions. The latest state is delivered
// immediately, so a new subscriber never misses the current value. The
// returned function unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan *model.Identity, func()) {
	s.mu.Lock()

	id := uuid.NewString()
	ch := make(chan *model.Identity, 8)
	s.subscribers[id] = ch
	ch <- s.current

	s.mu.Unlock()

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, exists := s.subscribers[id]; exists {
			close(sub)
			delete(s.subscribers, id)
		}
	}

	return ch, unsubscribe
}

func (s *Store) set(raw string, identity *model.Identity) {
	s.mu.Lock()
	s.rawToken = raw
	s.current = identity
	if err := s.storage.Set(tokenKey, raw); err != nil {
		s.logger.Warn("failed to persist token", "error", err)
	}
	if snapshot, err := json.Marshal(identity); err == nil {
		if setErr := s.storage.Set(identityKey, string(snapshot)); setErr != nil {
			s.logger.Warn("failed to persist identity snapshot", "error", setErr)
		}
	}
	s.mu.Unlock()

	s.emit(identity)
}

func (s *Store) emit(identity *model.Identity) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.subscribers {
		// Non-blocking send so a slow subscriber never stalls a transition.
		select {
		case ch <- identity:
		default:
		}
	}
}
