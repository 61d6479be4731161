package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wmkit/cursorkit/internal/icon"
)

// ApplyFunc applies a named cursor to the demo window.
type ApplyFunc func(icon.Cursor) error

// iconItem implements list.Item for the icon picker.
type iconItem struct {
	cursor icon.Cursor
}

func (i iconItem) Title() string       { return i.cursor.Name() }
func (i iconItem) Description() string { return "" }
func (i iconItem) FilterValue() string { return i.cursor.Name() }

// statusMsg is sent after a cursor has been applied (or failed to).
type statusMsg struct {
	text string
}

// clearStatusMsg clears the status line after a delay.
type clearStatusMsg struct{}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// model is the root bubbletea model for the picker.
type model struct {
	list  list.Model
	apply ApplyFunc

	statusText string

	width  int
	height int
}

func newModel(apply ApplyFunc) model {
	icons := icon.All()
	items := make([]list.Item, 0, len(icons))
	for _, c := range icons {
		items = append(items, iconItem{cursor: c})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Cursor icons"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return model{
		list:  l,
		apply: apply,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height-3)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(iconItem); ok {
				return m, m.applyCmd(item.cursor)
			}
		case "H":
			return m, m.applyCmd(icon.None)
		}

	case statusMsg:
		m.statusText = msg.text
		return m, clearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.statusText = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) applyCmd(sel icon.Cursor) tea.Cmd {
	return func() tea.Msg {
		if err := m.apply(sel); err != nil {
			return statusMsg{text: fmt.Sprintf("error: %v", err)}
		}
		if sel == icon.None {
			return statusMsg{text: "cursor hidden"}
		}
		return statusMsg{text: fmt.Sprintf("applied %s", sel)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m model) View() string {
	status := m.statusText
	if status == "" {
		status = " "
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("cursorkit"),
		m.list.View(),
		statusStyle.Render(status),
		helpStyle.Render("enter: apply  H: hide cursor  q: quit"),
	)
}

// Run starts the picker; apply is invoked for every selection until the
// user quits.
func Run(apply ApplyFunc) error {
	p := tea.NewProgram(newModel(apply), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
