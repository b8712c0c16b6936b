// Package menu holds the static pizza menu and its opening hours.
package menu

import (
	"fmt"
	"time"

	"github.com/Makepad-fr/faraway/internal/model"
)

const (
	DefaultOpenHour  = 12
	DefaultCloseHour = 22
)

// Default is the house menu.
func Default() []model.Pizza {
	return []model.Pizza{
		{Name: "Focaccia", Ingredients: "Bread with italian olive oil and rosemary", Price: 6, PhotoName: "pizzas/focaccia.jpg"},
		{Name: "Pizza Margherita", Ingredients: "Tomato and mozarella", Price: 10, PhotoName: "pizzas/margherita.jpg"},
		{Name: "Pizza Spinaci", Ingredients: "Tomato, mozarella, spinach, and ricotta cheese", Price: 12, PhotoName: "pizzas/spinaci.jpg"},
		{Name: "Pizza Funghi", Ingredients: "Tomato, mozarella, mushrooms, and onion", Price: 12, PhotoName: "pizzas/funghi.jpg"},
		{Name: "Pizza Salamino", Ingredients: "Tomato, mozarella, and pepperoni", Price: 15, PhotoName: "pizzas/salamino.jpg", SoldOut: true},
		{Name: "Pizza Prosciutto", Ingredients: "Tomato, mozarella, ham, aragula, and burrata cheese", Price: 18, PhotoName: "pizzas/prosciutto.jpg"},
	}
}

// Available drops sold-out pizzas.
func Available(pizzas []model.Pizza) []model.Pizza {
	out := make([]model.Pizza, 0, len(pizzas))
	for _, p := range pizzas {
		if !p.SoldOut {
			out = append(out, p)
		}
	}
	return out
}

// Hours is the daily opening window. Both ends are inclusive.
type Hours struct {
	Open  int
	Close int
}

func (h Hours) Validate() error {
	if h.Open < 0 || h.Open > 23 || h.Close < 0 || h.Close > 23 {
		return fmt.Errorf("hours out of range: %d-%d", h.Open, h.Close)
	}
	if h.Open > h.Close {
		return fmt.Errorf("open hour %d is after close hour %d", h.Open, h.Close)
	}
	return nil
}

// IsOpen reports whether hour falls in the window.
func (h Hours) IsOpen(hour int) bool {
	return hour >= h.Open && hour <= h.Close
}

// FooterText is the line under the menu for the given moment.
func (h Hours) FooterText(now time.Time) string {
	if h.IsOpen(now.Hour()) {
		return fmt.Sprintf("We're open from %d:00 until %d:00. Come visit us or order online.", h.Open, h.Close)
	}
	return fmt.Sprintf("We're happy to welcome you between %d:00 and %d:00.", h.Open, h.Close)
}
