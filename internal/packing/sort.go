package packing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Makepad-fr/faraway/internal/model"
)

// SortOrder selects how the list view orders items.
type SortOrder string

const (
	SortByInput       SortOrder = "input"
	SortByDescription SortOrder = "description"
	SortByPacked      SortOrder = "packed"
)

var sortOrders = []SortOrder{SortByInput, SortByDescription, SortByPacked}

// ParseSortOrder accepts the names used on the command line and in config.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByInput:
		return SortByInput, nil
	case SortByDescription:
		return SortByDescription, nil
	case SortByPacked:
		return SortByPacked, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// Next cycles input → description → packed → input.
func (o SortOrder) Next() SortOrder {
	for i, so := range sortOrders {
		if so == o {
			return sortOrders[(i+1)%len(sortOrders)]
		}
	}
	return SortByInput
}

func (o SortOrder) Label() string {
	switch o {
	case SortByDescription:
		return "Sort by description"
	case SortByPacked:
		return "Sort by packed status"
	default:
		return "Sort by input order"
	}
}

// Sorted returns a snapshot ordered by o. The store itself keeps insertion order.
func (s *Store) Sorted(o SortOrder) []model.Item {
	out := s.Items()
	switch o {
	case SortByDescription:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Description) < strings.ToLower(out[j].Description)
		})
	case SortByPacked:
		sort.SliceStable(out, func(i, j int) bool {
			return !out[i].Packed && out[j].Packed
		})
	}
	return out
}
