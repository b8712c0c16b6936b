package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/faraway/internal/model"
	"github.com/Makepad-fr/faraway/internal/packing"
	"github.com/Makepad-fr/faraway/internal/ui"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestApp(t *testing.T) App {
	t.Helper()
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })
	store, err := packing.NewStore([]model.Item{
		{ID: 1, Description: "Passports", Quantity: 2},
		{ID: 2, Description: "Socks", Quantity: 12},
		{ID: 3, Description: "Charger", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return New(store, Options{DefaultQuantity: 1, MaxQuantity: 20})
}

func press(t *testing.T, m App, keys ...string) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		next, c := m.Update(keyMsg(k))
		app, ok := next.(App)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
		m, cmd = app, c
	}
	return m, cmd
}

// deliver runs a form command and feeds its message back to the root model.
func deliver(t *testing.T, m App, cmd tea.Cmd) App {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	next, _ := m.Update(cmd())
	app, ok := next.(App)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return app
}

func typeText(t *testing.T, m App, s string) App {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(App)
}

func TestSpaceTogglesSelectedItem(t *testing.T) {
	m := newTestApp(t)
	m, _ = press(t, m, "j", " ")
	it, _ := m.store.Get(2)
	if !it.Packed {
		t.Fatalf("expected item 2 packed")
	}
	st := packing.ComputeStats(m.store.Items())
	if st.Packed != 1 || st.Percentage != 33 {
		t.Fatalf("stats = %+v", st)
	}
	if !strings.Contains(m.View(), "you already packed 1 (33%)") {
		t.Fatalf("stats footer not rendered:\n%s", m.View())
	}
	m, _ = press(t, m, " ")
	if it, _ := m.store.Get(2); it.Packed {
		t.Fatalf("expected item 2 unpacked after second toggle")
	}
}

func TestRemoveSelectedItem(t *testing.T) {
	m := newTestApp(t)
	m, _ = press(t, m, "G", "d")
	if m.store.Len() != 2 {
		t.Fatalf("len = %d, want 2", m.store.Len())
	}
	if _, ok := m.store.Get(3); ok {
		t.Fatalf("item 3 should be removed")
	}
	if _, ok := m.selectedID(); !ok {
		t.Fatalf("selection should move to a remaining item")
	}
}

func TestAddThroughForm(t *testing.T) {
	m := newTestApp(t)
	m, _ = press(t, m, "a")
	if m.mode != modeAdding {
		t.Fatalf("expected adding mode")
	}
	m = typeText(t, m, "Sun hat")
	m, _ = press(t, m, "up", "up")
	m, cmd := press(t, m, "enter")
	m = deliver(t, m, cmd)

	if m.mode != modeBrowse {
		t.Fatalf("form should close after submit")
	}
	if m.store.Len() != 4 {
		t.Fatalf("len = %d, want 4", m.store.Len())
	}
	items := m.store.Items()
	last := items[len(items)-1]
	if last.Description != "Sun hat" || last.Quantity != 3 || last.Packed {
		t.Fatalf("unexpected item %+v", last)
	}
	if m.form.ti.Value() != "" || m.form.quantity != 1 {
		t.Fatalf("form not reset: %q qty=%d", m.form.ti.Value(), m.form.quantity)
	}
}

func TestEmptyDescriptionIsIgnored(t *testing.T) {
	m := newTestApp(t)
	m, _ = press(t, m, "a")
	m = typeText(t, m, "   ")
	m, _ = press(t, m, "up")
	m, cmd := press(t, m, "enter")
	if cmd != nil {
		t.Fatalf("empty submit should not emit a command")
	}
	if m.store.Len() != 3 {
		t.Fatalf("len = %d, want 3", m.store.Len())
	}
	if m.mode != modeAdding {
		t.Fatalf("form should stay open")
	}
	if m.form.ti.Value() != "   " || m.form.quantity != 2 {
		t.Fatalf("form should not be cleared: %q qty=%d", m.form.ti.Value(), m.form.quantity)
	}
}

func TestEscClosesFormWithoutAdding(t *testing.T) {
	m := newTestApp(t)
	m, _ = press(t, m, "a")
	m = typeText(t, m, "Tent")
	m, cmd := press(t, m, "esc")
	m = deliver(t, m, cmd)
	if m.mode != modeBrowse || m.store.Len() != 3 {
		t.Fatalf("mode=%d len=%d", m.mode, m.store.Len())
	}
}

func TestQuantityWraps(t *testing.T) {
	f := newForm(1, 3)
	f, _ = f.Update(keyMsg("down"))
	if f.quantity != 3 {
		t.Fatalf("down from 1 = %d, want 3", f.quantity)
	}
	f, _ = f.Update(keyMsg("up"))
	if f.quantity != 1 {
		t.Fatalf("up from 3 = %d, want 1", f.quantity)
	}
}

func TestSortCyclesViewOnly(t *testing.T) {
	m := newTestApp(t)
	m, _ = press(t, m, "s")
	if m.sort != packing.SortByDescription {
		t.Fatalf("sort = %s", m.sort)
	}
	if id, _ := m.selectedID(); id != 3 {
		t.Fatalf("first row after description sort = %d, want 3 (Charger)", id)
	}
	if m.store.Items()[0].Description != "Passports" {
		t.Fatalf("store order changed")
	}
}

func TestClearAsksForConfirmation(t *testing.T) {
	m := newTestApp(t)
	m, _ = press(t, m, "c", "n")
	if m.store.Len() != 3 {
		t.Fatalf("clear without confirmation removed items")
	}
	m, _ = press(t, m, "c", "y")
	if m.store.Len() != 0 {
		t.Fatalf("len after confirmed clear = %d", m.store.Len())
	}
	if !strings.Contains(m.View(), "Start adding some items") {
		t.Fatalf("empty stats message missing:\n%s", m.View())
	}
	m, _ = press(t, m, " ", "d")
	if m.store.Len() != 0 {
		t.Fatalf("toggle/remove on empty list changed the store")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestApp(t)
	for _, k := range []string{"q", "esc"} {
		_, cmd := press(t, m, k)
		if cmd == nil {
			t.Fatalf("%s should quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s did not produce QuitMsg", k)
		}
	}
}
