// Package bubbletea provides a terminal UI viewer for diff results using the
// Bubble Tea framework.
package bubbletea

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	textdiff "github.com/honlnk/text-diff-viewer"
)

// Model is the Bubble Tea model for viewing a diff result. The body scrolls
// inside a viewport while the header and footer stay pinned.
type Model struct {
	result    *textdiff.Result
	theme     textdiff.Theme
	title     string
	language  string
	tokenizer textdiff.Tokenizer
	keys      KeyMap

	viewport viewport.Model
	ready    bool
	content  string
	header   string
	footer   string
}

// NewModel creates a new Model for the given result.
func NewModel(result *textdiff.Result, theme textdiff.Theme) Model {
	return Model{
		result: result,
		theme:  theme,
		keys:   DefaultKeyMap(),
	}
}

// WithTitle sets the title shown in the header line.
func (m Model) WithTitle(title string) Model {
	m.title = title
	return m
}

// WithSyntax enables syntax highlighting of unchanged spans.
func (m Model) WithSyntax(tokenizer textdiff.Tokenizer, language string) Model {
	m.tokenizer = tokenizer
	m.language = language
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.GotoTop):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// layout sizes the viewport and re-renders the width-dependent chrome. The
// body itself does not depend on the width, so it is rendered once.
func (m *Model) layout(width, height int) {
	styles := m.theme.Styles()
	renderer := lipgloss.DefaultRenderer()
	m.header = renderHeader(m.title, m.result.Stats(), styles, renderer, width)
	m.footer = renderFooter(m.result, styles, renderer, width)

	bodyHeight := height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if !m.ready {
		m.content = renderBody(renderConfig{
			result:    m.result,
			styles:    styles,
			renderer:  renderer,
			language:  m.language,
			tokenizer: m.tokenizer,
		})
		m.viewport = viewport.New(width, bodyHeight)
		m.viewport.SetContent(m.content)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = bodyHeight
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.header + "\n" + m.viewport.View() + "\n" + m.footer
}

var _ textdiff.Viewer = (*Viewer)(nil)

// Viewer implements textdiff.Viewer using a Bubble Tea TUI.
type Viewer struct {
	theme     textdiff.Theme
	title     string
	language  string
	tokenizer textdiff.Tokenizer
}

// NewViewer creates a new Viewer rendering with the given theme.
func NewViewer(theme textdiff.Theme) *Viewer {
	return &Viewer{theme: theme}
}

// SetTitle sets the title shown in the header line.
func (v *Viewer) SetTitle(title string) {
	v.title = title
}

// SetSyntax enables syntax highlighting of unchanged spans.
func (v *Viewer) SetSyntax(tokenizer textdiff.Tokenizer, language string) {
	v.tokenizer = tokenizer
	v.language = language
}

// View displays the result and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, result *textdiff.Result) error {
	m := NewModel(result, v.theme).WithTitle(v.title).WithSyntax(v.tokenizer, v.language)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
