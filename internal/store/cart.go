package store

import (
	"encoding/json"
	"sync"

	"github.com/jmoiron/sqlx"

	"ferromart/internal/domain"
	applog "ferromart/internal/log"
)

// CartStore keeps the cart lines in memory and mirrors them to the
// state table on every mutation. Lines keep first-add order and there
// is at most one line per product id.
//
// Handlers run on multiple goroutines, so unlike the original single
// UI thread the store guards its state with a mutex.
type CartStore struct {
	mu    sync.RWMutex
	db    *sqlx.DB
	lines []domain.CartLine
}

func NewCartStore(db *sqlx.DB) *CartStore {
	s := &CartStore{db: db}
	s.load()
	return s
}

// load restores the persisted line list. Malformed or absent data is
// treated as an empty cart; parse failures are logged, not propagated.
func (s *CartStore) load() {
	raw, ok, err := loadValue(s.db, cartKey)
	if err != nil {
		applog.Error(nil, "cart.state.load", err, nil)
		return
	}
	if !ok {
		return
	}
	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		applog.Error(nil, "cart.state.parse", err, nil)
		return
	}
	s.lines = lines
}

// persist must be called with the lock held.
func (s *CartStore) persist() {
	b, err := json.Marshal(s.lines)
	if err == nil {
		err = saveValue(s.db, cartKey, string(b))
	}
	if err != nil {
		applog.Error(nil, "cart.state.save", err, nil)
	}
}

// Add merges by product id: an existing line has its quantity
// incremented, otherwise a new line is appended. Stock is not checked
// here. A quantity below 1 counts as 1.
func (s *CartStore) Add(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity += qty
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{Product: p, Quantity: qty})
	s.persist()
}

// Remove deletes the line for the product id; no-op if absent.
func (s *CartStore) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity sets the quantity, clamped to >= 0. A resulting zero
// removes the line; a zero-quantity line is never persisted. No-op for
// an unknown product id.
func (s *CartStore) UpdateQuantity(productID, qty int) {
	if qty < 0 {
		qty = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID != productID {
			continue
		}
		if qty == 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = qty
		}
		s.persist()
		return
	}
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist()
}

// Lines returns a copy of the current line list in first-add order.
func (s *CartStore) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Subtotal is recomputed from the current lines on every read.
func (s *CartStore) Subtotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

func (s *CartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}
