package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/cart"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/review"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/wishlist"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderSessionID = "X-Session-ID"

// Session is the client-side state of one browser: its cart, the hearts
// of the books it has displayed and the reviews it has written.
type Session struct {
	ID   string
	Cart *cart.Cart

	syncer   wishlist.Syncer
	validate *validator.Validate
	log      *zap.Logger

	lastSeen atomic.Int64

	mu      sync.Mutex
	hearts  map[string]*wishlist.Heart
	reviews map[string]*review.Board
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) Heart(bookID string) *wishlist.Heart {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hearts[bookID]
	if !ok {
		h = wishlist.NewHeart(bookID, s.syncer, s.log)
		s.hearts[bookID] = h
	}
	return h
}

func (s *Session) Reviews(bookID string) *review.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.reviews[bookID]
	if !ok {
		b = review.NewBoard(s.validate)
		s.reviews[bookID] = b
	}
	return b
}

type Store struct {
	syncer   wishlist.Syncer
	validate *validator.Validate
	log      *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(syncer wishlist.Syncer, log *zap.Logger) *Store {
	return &Store{
		syncer:   syncer,
		validate: validator.New(),
		log:      log.Named("session"),
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating and keeping it on first use.
// An empty id gets a freshly generated one.
func (s *Store) Get(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	if sess, ok := s.lookup(id); ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := s.newSession(id)
	s.sessions[id] = sess
	s.log.Debug("session created", zap.String("session", id))
	return sess
}

// Peek returns the kept session for id. An unknown or empty id gets a
// throwaway session that is not kept, so read-only traffic does not grow
// the store.
func (s *Store) Peek(id string) *Session {
	if sess, ok := s.lookup(id); ok {
		return sess
	}
	if id == "" {
		id = uuid.NewString()
	}
	return s.newSession(id)
}

func (s *Store) lookup(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		sess.touch(time.Now())
	}
	return sess, ok
}

func (s *Store) newSession(id string) *Session {
	sess := &Session{
		ID:       id,
		Cart:     cart.New(),
		syncer:   s.syncer,
		validate: s.validate,
		log:      s.log.With(zap.String("session", id)),
		hearts:   make(map[string]*wishlist.Heart),
		reviews:  make(map[string]*review.Board),
	}
	sess.touch(time.Now())
	return sess
}

// Evict drops the sessions not seen since now-maxIdle and reports how many.
func (s *Store) Evict(now time.Time, maxIdle time.Duration) int {
	deadline := now.Add(-maxIdle).UnixNano()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Load() < deadline {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Expire evicts idle sessions every maxIdle/2 until ctx is done. A
// non-positive maxIdle keeps sessions forever.
func (s *Store) Expire(ctx context.Context, maxIdle time.Duration) {
	if maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(maxIdle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.Evict(now, maxIdle); n > 0 {
				s.log.Debug("sessions expired", zap.Int("count", n), zap.Int("left", s.Len()))
			}
		}
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
