// Package packing holds the in-memory packing list and the stats derived
// from it. Nothing here touches disk: the list is rebuilt from seed items
// on every start.
package packing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/faraway/internal/model"
)

var (
	ErrDuplicateID     = errors.New("duplicate item id")
	ErrInvalidItem     = errors.New("invalid item")
	errEmptyDescription = fmt.Errorf("%w: empty description", ErrInvalidItem)
)

// Store is an ordered collection of packing items. It is not safe for
// concurrent use; the TUI root model owns the only instance.
type Store struct {
	items  []model.Item
	nextID int
}

// NewStore builds a store from seed items, keeping their order and ids.
// Fresh ids continue after the highest seed id.
func NewStore(seed []model.Item) (*Store, error) {
	s := &Store{items: make([]model.Item, 0, len(seed)), nextID: 1}
	seen := make(map[int]bool, len(seed))
	for _, it := range seed {
		if err := validate(it); err != nil {
			return nil, fmt.Errorf("seed item %d: %w", it.ID, err)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("seed item %d: %w", it.ID, ErrDuplicateID)
		}
		seen[it.ID] = true
		it.Description = strings.TrimSpace(it.Description)
		s.items = append(s.items, it)
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	return s, nil
}

func validate(it model.Item) error {
	if it.ID < 1 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidItem)
	}
	if strings.TrimSpace(it.Description) == "" {
		return errEmptyDescription
	}
	if it.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidItem)
	}
	return nil
}

// Add appends a new unpacked item. An empty description or a quantity
// below one is ignored and reported with ok=false.
func (s *Store) Add(description string, quantity int) (model.Item, bool) {
	description = strings.TrimSpace(description)
	if description == "" || quantity < 1 {
		return model.Item{}, false
	}
	it := model.Item{
		ID:          s.nextID,
		Description: description,
		Quantity:    quantity,
	}
	s.nextID++
	s.items = append(s.items, it)
	return it, true
}

// Toggle flips the packed flag of the item with the given id.
func (s *Store) Toggle(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items[i].Packed = !s.items[i].Packed
	return true
}

// Remove deletes the item with the given id.
func (s *Store) Remove(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Clear drops every item. Ids are not reused afterwards.
func (s *Store) Clear() {
	s.items = s.items[:0]
}

// Get returns the item with the given id.
func (s *Store) Get(id int) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

func (s *Store) Len() int { return len(s.items) }

// Items returns a copy of the items in insertion order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) index(id int) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
