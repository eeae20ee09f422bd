package session

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTimeout is the inactivity window after which a guided
// command is abandoned.
const DefaultTimeout = 10 * time.Minute

// Session tracks one sender's progress through a multi-step guided
// command. At most one session exists per sender-conversation pair.
type Session struct {
	CommandName string
	CurrentStep int
	PartialData map[string]string
	StartedAt   time.Time
}

// Store keeps active sessions in a TTL cache. The cache janitor sweeps
// expired entries with the same delete the handlers use, so a session
// can never be observed mid-expiry.
type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTimeout
	}
	return &Store{
		cache: gocache.New(ttl, ttl/2),
		ttl:   ttl,
	}
}

func key(senderID, chatID string) string {
	return senderID + "|" + chatID
}

// Start opens a session for a guided command. It refuses to start a
// second one while another command is active for the same pair.
func (s *Store) Start(senderID, chatID, command string) (*Session, bool) {
	k := key(senderID, chatID)
	if _, exists := s.cache.Get(k); exists {
		return nil, false
	}

	sess := &Session{
		CommandName: command,
		CurrentStep: 0,
		PartialData: make(map[string]string),
		StartedAt:   time.Now(),
	}
	s.cache.Set(k, sess, s.ttl)
	return sess, true
}

// Get returns the active session, if any.
func (s *Store) Get(senderID, chatID string) (*Session, bool) {
	v, exists := s.cache.Get(key(senderID, chatID))
	if !exists {
		return nil, false
	}
	return v.(*Session), true
}

// Advance stores the value for the current step and moves to the next,
// refreshing the inactivity window.
func (s *Store) Advance(senderID, chatID string, field, value string) (*Session, bool) {
	sess, ok := s.Get(senderID, chatID)
	if !ok {
		return nil, false
	}
	sess.PartialData[field] = value
	sess.CurrentStep++
	s.cache.Set(key(senderID, chatID), sess, s.ttl)
	return sess, true
}

// End removes the session (completion or explicit cancellation).
func (s *Store) End(senderID, chatID string) {
	s.cache.Delete(key(senderID, chatID))
}

// Sweep forces expired sessions out immediately. The background
// janitor does the same on its own interval; this exists for tests and
// shutdown paths.
func (s *Store) Sweep() {
	s.cache.DeleteExpired()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
