package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mailforge/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type viewerKeyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

func defaultViewerKeys() viewerKeyMap {
	return viewerKeyMap{
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Top:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		End:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	}
}

// emailViewer is a full-screen pager for one email.
type emailViewer struct {
	title   string
	content string
	keys    viewerKeyMap
	vp      viewport.Model
	ready   bool
}

func newEmailViewer(title, content string) emailViewer {
	return emailViewer{title: title, content: content, keys: defaultViewerKeys()}
}

func (m emailViewer) Init() tea.Cmd { return nil }

func (m emailViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-lipgloss.Height(m.header())-lipgloss.Height(m.footer()), 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.MouseWheelEnabled = true
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.End):
			m.vp.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m emailViewer) View() string {
	if !m.ready {
		return "loading…"
	}
	return m.header() + "\n" + m.vp.View() + "\n" + m.footer()
}

func (m emailViewer) header() string {
	return formatter.StyleHeader.Render(strings.ToUpper(m.title))
}

func (m emailViewer) footer() string {
	percent := 100.0
	if m.ready {
		percent = m.vp.ScrollPercent() * 100
	}
	return formatter.Dim(fmt.Sprintf("%3.f%%  ↑/↓ scroll · g/G top/bottom · q quit", percent))
}

// runViewer shows content in the alternate screen until the user quits.
func runViewer(title, content string) error {
	_, err := tea.NewProgram(newEmailViewer(title, content), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
