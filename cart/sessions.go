package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions maps opaque tokens to carts. Tokens are minted here and
// travel in the X-Cart-Token header; a cart that stays idle past the
// TTL is swept away.
type Sessions struct {
	mu    sync.Mutex
	carts map[string]*session
	ttl   time.Duration
}

type session struct {
	cart     *Cart
	lastSeen time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		carts: make(map[string]*session),
		ttl:   ttl,
	}
}

// Get returns the cart for the token, minting a fresh token and empty
// cart when the token is blank or unknown. The returned token must be
// echoed back to the client.
func (s *Sessions) Get(token string) (*Cart, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.carts[token]; ok {
		sess.lastSeen = time.Now()
		return sess.cart, token
	}

	token = uuid.New().String()
	c := New()
	s.carts[token] = &session{cart: c, lastSeen: time.Now()}
	return c, token
}

// Sweep drops carts idle past the TTL and reports how many went.
func (s *Sessions) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.carts {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.carts, token)
			removed++
		}
	}
	return removed
}

// Run sweeps on the interval until the context ends.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}
