// Package tui is the interactive packing list. The root App owns the
// store; the form only emits messages and the list and stats re-render
// from a fresh snapshot on every update.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/faraway/internal/logging"
	"github.com/Makepad-fr/faraway/internal/packing"
	"github.com/Makepad-fr/faraway/internal/ui"
)

// Options configures the App.
type Options struct {
	DefaultQuantity int
	MaxQuantity     int
	SortOrder       packing.SortOrder
	Logger          *logging.Logger
}

type mode int

const (
	modeBrowse mode = iota
	modeAdding
	modeConfirmClear
)

// App is the root Bubble Tea model.
type App struct {
	store *packing.Store
	list  list.Model
	form  formModel
	mode  mode
	sort  packing.SortOrder
	log   *logging.Logger

	width, height int
}

// New wires the list view and form around store.
func New(store *packing.Store, opt Options) App {
	if opt.MaxQuantity < 1 {
		opt.MaxQuantity = 20
	}
	if opt.DefaultQuantity < 1 || opt.DefaultQuantity > opt.MaxQuantity {
		opt.DefaultQuantity = 1
	}
	if opt.SortOrder == "" {
		opt.SortOrder = packing.SortByInput
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "🌴 Far Away 🌴"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	bindings := []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pack")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return bindings }
	l.AdditionalFullHelpKeys = func() []key.Binding { return bindings }

	m := App{
		store:  store,
		list:   l,
		form:   newForm(opt.DefaultQuantity, opt.MaxQuantity),
		sort:   opt.SortOrder,
		log:    opt.Logger,
		width:  80,
		height: 24,
	}
	m.resize()
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(store *packing.Store, opt Options) error {
	p := tea.NewProgram(New(store, opt), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m App) Init() tea.Cmd { return nil }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case addItemMsg:
		if it, ok := m.store.Add(msg.description, msg.quantity); ok {
			m.log.Printf("add id=%d qty=%d %q", it.ID, it.Quantity, it.Description)
		}
		m.mode = modeBrowse
		m.resize()
		cmd := m.refresh()
		return m, cmd
	case formClosedMsg:
		m.mode = modeBrowse
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeAdding:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case modeConfirmClear:
		if x, ok := msg.(tea.KeyMsg); ok {
			if x.String() == "y" {
				m.store.Clear()
				m.log.Printf("clear")
			}
			m.mode = modeBrowse
			cmd := m.refresh()
			return m, cmd
		}
		return m, nil
	}

	if x, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch x.String() {
		case "q":
			return m, tea.Quit
		case "esc":
			if m.list.FilterState() == list.Unfiltered {
				return m, tea.Quit
			}
		case " ":
			if id, ok := m.selectedID(); ok {
				m.store.Toggle(id)
				m.log.Printf("toggle id=%d", id)
				cmd := m.refresh()
				return m, cmd
			}
			return m, nil
		case "d":
			if id, ok := m.selectedID(); ok {
				m.store.Remove(id)
				m.log.Printf("remove id=%d", id)
				cmd := m.refresh()
				return m, cmd
			}
			return m, nil
		case "a":
			m.mode = modeAdding
			m.resize()
			cmd := m.form.open()
			return m, cmd
		case "s":
			m.sort = m.sort.Next()
			cmd := m.refresh()
			return m, cmd
		case "c":
			if m.store.Len() > 0 {
				m.mode = modeConfirmClear
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m App) selectedID() (int, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	return li.item.ID, true
}

// refresh pushes a fresh store snapshot into the list view.
func (m *App) refresh() tea.Cmd {
	cmd := m.list.SetItems(toListItems(m.store.Sorted(m.sort)))
	if n := len(m.list.VisibleItems()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m *App) resize() {
	h := m.height - 6
	if m.mode == modeAdding {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m App) View() string {
	th := ui.Current()
	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")

	switch m.mode {
	case modeAdding:
		b.WriteString(m.form.View())
		b.WriteString("\n")
	case modeConfirmClear:
		b.WriteString(th.Error.Render("Are you sure you want to delete all items? (y/N)"))
		b.WriteString("\n")
	}

	b.WriteString(th.Muted.Render(m.sort.Label()))
	b.WriteString("\n")
	b.WriteString(statsView(m.store))
	return ui.PanelString(b.String())
}

func statsView(store *packing.Store) string {
	th := ui.Current()
	st := packing.ComputeStats(store.Items())
	return th.Muted.Render(ui.ProgressBar(st.Packed, st.Total, 28)) + "\n" + th.Accent.Render(st.Message())
}
