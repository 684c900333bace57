package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerEntry is one chart offered by the picker.
type PickerEntry struct {
	ID       string
	Title    string
	Source   string
	Notes    int
	Duration float64
}

// PickerKeyMap defines the key bindings for the chart picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Help, k.Quit},
	}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel is the Bubble Tea model for the chart picker.
type PickerModel struct {
	entries  []PickerEntry
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	quitting bool
	selected *PickerEntry
}

// NewPickerModel creates a picker over entries.
func NewPickerModel(entries []PickerEntry, width, height int) PickerModel {
	m := PickerModel{
		entries: entries,
		help:    help.New(),
		keys:    DefaultPickerKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Chart", Width: 16},
		{Title: "Title", Width: 24},
		{Title: "Source", Width: 10},
		{Title: "Notes", Width: 6},
		{Title: "Length", Width: 8},
	}

	// Give spare width to the title column.
	if spare := m.width - 4 - 64 - 2*len(columns); spare > 0 {
		columns[1].Width += min(spare, 24)
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.ID,
			e.Title,
			sourceLabel(e.Source),
			fmt.Sprintf("%d", e.Notes),
			fmt.Sprintf("%.1fs", e.Duration),
		}
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// sourceLabel shortens file paths to "file" for the table.
func sourceLabel(src string) string {
	switch src {
	case "builtin", "library", "":
		return src
	}
	return "file"
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.entries) == 0 {
				return m, nil
			}
			e := m.entries[m.table.Cursor()]
			m.selected = &e
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("R H Y T H M", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No charts found.\nImport one with `rhythm import <file>`.")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the chosen chart, if any.
func (m PickerModel) Selected() (PickerEntry, bool) {
	if m.selected == nil {
		return PickerEntry{}, false
	}
	return *m.selected, true
}

// Quitting returns true if the player closed the picker.
func (m PickerModel) Quitting() bool {
	return m.quitting
}

// centerText centers text horizontally within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunPicker shows the picker in the local terminal. ok is false when the
// player quit without choosing.
func RunPicker(entries []PickerEntry, width, height int) (choice PickerEntry, ok bool, err error) {
	p := tea.NewProgram(NewPickerModel(entries, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return PickerEntry{}, false, err
	}
	m, isPicker := final.(PickerModel)
	if !isPicker {
		return PickerEntry{}, false, nil
	}
	choice, ok = m.Selected()
	return choice, ok, nil
}
