package packing

import (
	"fmt"
	"math"

	"github.com/Makepad-fr/faraway/internal/model"
)

// Stats is the aggregate shown in the footer.
type Stats struct {
	Total      int
	Packed     int
	Percentage int
}

// ComputeStats derives counts from items. Percentage is rounded and is 0
// for an empty list.
func ComputeStats(items []model.Item) Stats {
	st := Stats{Total: len(items)}
	for _, it := range items {
		if it.Packed {
			st.Packed++
		}
	}
	if st.Total > 0 {
		st.Percentage = int(math.Round(float64(st.Packed) / float64(st.Total) * 100))
	}
	return st
}

// Message is the footer sentence for st.
func (st Stats) Message() string {
	switch {
	case st.Total == 0:
		return "Start adding some items to your packing list 🚀"
	case st.Packed == st.Total:
		return "You got everything! Ready to go ✈️"
	}
	return fmt.Sprintf("You have %d items on your list, and you already packed %d (%d%%)",
		st.Total, st.Packed, st.Percentage)
}
