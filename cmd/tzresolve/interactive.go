package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/tzresolve"
	"github.com/wippyai/tzresolve/windowszones"
)

const pageSize = 15

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	territoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateDetail
)

type browseModel struct {
	err      error
	hostErr  error
	table    *windowszones.Table
	resolver *tzresolve.Resolver
	filter   textinput.Model
	host     string
	dataFile string
	matches  []windowszones.Entry
	selected int
	state    modelState
}

type loadedMsg struct {
	err   error
	table *windowszones.Table
}

type hostMsg struct {
	err error
	id  string
}

func newBrowseModel(o options) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "filter by Windows name, territory or IANA id"
	ti.Prompt = "/ "
	ti.Width = 50
	ti.Focus()

	return &browseModel{
		dataFile: o.dataFile,
		filter:   ti,
		state:    stateBrowse,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return tea.Batch(m.loadTable, textinput.Blink)
}

func (m *browseModel) loadTable() tea.Msg {
	t, err := loadTable(m.dataFile)
	return loadedMsg{table: t, err: err}
}

func (m *browseModel) queryHost() tea.Msg {
	id, err := m.resolver.IANATimeZone()
	return hostMsg{id: id, err: err}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "up":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.state == stateBrowse && m.selected < len(m.matches)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			if m.state == stateBrowse && len(m.matches) > 0 {
				m.state = stateDetail
				m.filter.Blur()
			} else if m.state == stateDetail {
				m.state = stateBrowse
				m.filter.Focus()
			}
			return m, nil

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
				m.filter.Focus()
				return m, nil
			}
			return m, tea.Quit
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.table = msg.table
		m.resolver = tzresolve.NewResolver(tzresolve.WithTable(msg.table))
		m.applyFilter()
		return m, m.queryHost

	case hostMsg:
		m.host = msg.id
		m.hostErr = msg.err
		return m, nil
	}

	if m.state != stateBrowse {
		return m, nil
	}

	var cmd tea.Cmd
	prev := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != prev {
		m.applyFilter()
	}
	return m, cmd
}

func (m *browseModel) applyFilter() {
	if m.table == nil {
		return
	}
	m.matches = filterEntries(m.table.Entries(), m.filter.Value())
	if m.selected >= len(m.matches) {
		m.selected = max(len(m.matches)-1, 0)
	}
}

// filterEntries keeps entries whose native id, territory or zones contain
// every whitespace separated term, case-insensitively.
func filterEntries(entries []windowszones.Entry, query string) []windowszones.Entry {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return entries
	}

	out := entries[:0:0]
	for _, e := range entries {
		hay := strings.ToLower(e.Native + " " + e.Territory + " " + e.Zones)
		matched := true
		for _, term := range terms {
			if !strings.Contains(hay, term) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress esc to quit.", m.err))
	}
	if m.table == nil {
		return "Loading table..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Windows Zones"))
	if v := m.table.Version(); v.CLDR != "" {
		b.WriteString(" CLDR " + v.CLDR)
	}
	b.WriteString("\n")
	b.WriteString(m.hostLine())
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")

		start := 0
		if m.selected >= pageSize {
			start = m.selected - pageSize + 1
		}
		end := min(start+pageSize, len(m.matches))
		for i := start; i < end; i++ {
			line := formatEntry(m.matches[i])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("\n%d of %d entries\n", len(m.matches), m.table.Len()))
		b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • enter details • esc quit"))

	case stateDetail:
		e := m.matches[m.selected]
		b.WriteString(m.detail(e))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter/esc back • ctrl+c quit"))
	}

	return b.String()
}

func (m *browseModel) hostLine() string {
	switch {
	case m.hostErr != nil:
		return "Host: " + errorStyle.Render(m.hostErr.Error())
	case m.host != "":
		return "Host: " + resultStyle.Render(m.host)
	default:
		return "Host: resolving..."
	}
}

func (m *browseModel) detail(e windowszones.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s in %s\n\n", nativeStyle.Render(e.Native), territoryStyle.Render(e.Territory))

	id, err := m.resolver.Resolve(e.Native, e.Territory)
	if err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return b.String()
	}
	b.WriteString("Resolves to: " + resultStyle.Render(id) + "\n")
	if aliases := e.Aliases(); len(aliases) > 1 {
		b.WriteString("Also:        " + strings.Join(aliases[1:], ", ") + "\n")
	}
	b.WriteString("Territories: " + strings.Join(m.table.Territories(e.Native), " "))
	return b.String()
}

func formatEntry(e windowszones.Entry) string {
	return fmt.Sprintf("%s %s %s",
		nativeStyle.Render(fmt.Sprintf("%-36s", e.Native)),
		territoryStyle.Render(fmt.Sprintf("%-4s", e.Territory)),
		e.Canonical())
}

func runInteractive(o options) error {
	p := tea.NewProgram(newBrowseModel(o), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
