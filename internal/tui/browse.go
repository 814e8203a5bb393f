// Package tui implements the interactive interface browser used by
// the browse command. It sits outside the MCP request path and talks
// to the registry through the same client as the server.
package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yapihq/yapi-mcp/internal/yapi"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 1)
)

// item adapts a registry interface to the bubbles list.
type item struct {
	iface yapi.Interface
}

func (i item) Title() string       { return i.iface.Name }
func (i item) Description() string { return fmt.Sprintf("%s %s", i.iface.Method, i.iface.Path) }
func (i item) FilterValue() string { return i.iface.Name + " " + i.iface.Path }

type interfacesLoadedMsg []yapi.Interface

type detailLoadedMsg struct {
	name string
	text string
}

type errMsg struct {
	err error
}

// Model is the browse view: a filterable interface list, with a
// scrollable detail pane behind enter.
type Model struct {
	client    *yapi.Client
	projectID int64

	list     list.Model
	viewport viewport.Model
	detail   bool
	name     string
	err      error
	width    int
	height   int
}

// New creates a browse model for one project.
func New(client *yapi.Client, projectID int64) Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("YAPI project %d", projectID)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return Model{
		client:    client,
		projectID: projectID,
		list:      l,
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetchInterfaces
}

func (m Model) fetchInterfaces() tea.Msg {
	interfaces, err := m.client.ListInterfaces(context.Background(), m.projectID)
	if err != nil {
		return errMsg{err}
	}
	return interfacesLoadedMsg(interfaces)
}

func (m Model) fetchDetail(iface yapi.Interface) tea.Cmd {
	return func() tea.Msg {
		raw, err := m.client.GetInterface(context.Background(), iface.ID)
		if err != nil {
			return errMsg{err}
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return errMsg{err}
		}
		return detailLoadedMsg{name: iface.Name, text: buf.String()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-1)
		m.viewport = viewport.New(msg.Width, msg.Height-2)
		return m, nil

	case interfacesLoadedMsg:
		items := make([]list.Item, 0, len(msg))
		for _, iface := range msg {
			items = append(items, item{iface: iface})
		}
		return m, m.list.SetItems(items)

	case detailLoadedMsg:
		m.detail = true
		m.name = msg.name
		m.viewport.SetContent(msg.text)
		m.viewport.GotoTop()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.detail {
			switch msg.String() {
			case "q", "esc":
				m.detail = false
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		// While the list filter is open, every key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				return m, m.fetchDetail(it.iface)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n" +
			statusStyle.Render("press q to quit")
	}

	if m.detail {
		header := titleStyle.Render(m.name)
		footer := statusStyle.Render("esc back • ↑/↓ scroll")
		return header + "\n" + m.viewport.View() + "\n" + footer
	}

	return m.list.View() + "\n" + statusStyle.Render("enter detail • / filter • q quit")
}

// Browse runs the interactive browser until the user quits.
func Browse(client *yapi.Client, projectID int64) error {
	p := tea.NewProgram(New(client, projectID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse ui: %w", err)
	}
	return nil
}
