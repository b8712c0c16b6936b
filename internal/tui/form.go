package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/faraway/internal/ui"
)

// addItemMsg carries a submitted form up to the root model, which owns the store.
type addItemMsg struct {
	description string
	quantity    int
}

// formClosedMsg is sent when the form is dismissed without submitting.
type formClosedMsg struct{}

// formModel captures a new item. It never reads the store.
type formModel struct {
	ti              textinput.Model
	quantity        int
	defaultQuantity int
	maxQuantity     int
}

func newForm(defaultQuantity, maxQuantity int) formModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item..."
	ti.CharLimit = 200
	return formModel{
		ti:              ti,
		quantity:        defaultQuantity,
		defaultQuantity: defaultQuantity,
		maxQuantity:     maxQuantity,
	}
}

func (f *formModel) open() tea.Cmd {
	return f.ti.Focus()
}

func (f *formModel) reset() {
	f.ti.SetValue("")
	f.ti.Blur()
	f.quantity = f.defaultQuantity
}

func (f formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			desc := f.ti.Value()
			if strings.TrimSpace(desc) == "" {
				// Silently ignored; the form keeps its state.
				return f, nil
			}
			q := f.quantity
			f.reset()
			return f, func() tea.Msg { return addItemMsg{description: desc, quantity: q} }
		case "esc":
			f.reset()
			return f, func() tea.Msg { return formClosedMsg{} }
		case "up":
			f.quantity = f.quantity%f.maxQuantity + 1
			return f, nil
		case "down":
			f.quantity--
			if f.quantity < 1 {
				f.quantity = f.maxQuantity
			}
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.ti, cmd = f.ti.Update(msg)
	return f, cmd
}

func (f formModel) View() string {
	th := ui.Current()
	bar := lipgloss.NewStyle().Border(th.Border).BorderForeground(th.BorderColor).Padding(0, 1)
	head := th.Accent.Render("What do you need for your trip?")
	qty := fmt.Sprintf("%s %s", th.Pending.Render(fmt.Sprintf("[%2d]", f.quantity)), th.Help.Render("↑/↓ quantity"))
	return bar.Render(head + "\n" + qty + "  " + f.ti.View())
}
