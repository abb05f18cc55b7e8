package cart

import "sync"

// Store hands out one cart per user. It is the explicit shared-state
// container injected into handlers instead of any ambient per-request state;
// carts are created lazily and dropped when cleared via Drop.
type Store struct {
	mu    sync.Mutex
	carts map[int64]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[int64]*Cart)}
}

// ForUser returns the user's cart, creating an empty one on first use.
func (s *Store) ForUser(userID int64) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		c = New()
		s.carts[userID] = c
	}
	return c
}

// Drop forgets the user's cart entirely.
func (s *Store) Drop(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Len returns the number of users with a live cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
