package bubbletea_test

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	textdiff "github.com/honlnk/text-diff-viewer"
	"github.com/honlnk/text-diff-viewer/bubbletea"
	themes "github.com/honlnk/text-diff-viewer/lipgloss"
	"github.com/stretchr/testify/assert"
)

// Compile-time check that Viewer implements textdiff.Viewer.
var _ textdiff.Viewer = (*bubbletea.Viewer)(nil)

// unchangedResult builds a result where both texts are identical, so the
// whole body renders as context.
func unchangedResult(text string) *textdiff.Result {
	return &textdiff.Result{
		Similarity: 100,
		Text1:      text,
		Text2:      text,
	}
}

func TestModel_Init(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(unchangedResult("hello"), themes.DarkTheme())
	cmd := m.Init()

	assert.Nil(t, cmd, "Init should return nil command")
}

func TestModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(unchangedResult(""), themes.DarkTheme())

	view := m.View()

	assert.Contains(t, view, "Loading", "View should show loading state before WindowSizeMsg")
}

func TestModel_ViewAfterReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(unchangedResult("test content"), themes.DarkTheme()).
		WithTitle("sample.txt")
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("test content")) &&
			bytes.Contains(out, []byte("sample.txt"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_QuitOnQ(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(unchangedResult(""), themes.DarkTheme())
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_QuitOnCtrlC(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(unchangedResult(""), themes.DarkTheme())
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_WindowResize(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(unchangedResult("resize test"), themes.DarkTheme())
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("resize test"))
	})

	tm.Send(tea.WindowSizeMsg{Width: 120, Height: 40})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("resize test"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_GotoBottomOnG(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("FIRST_LINE_MARKER\n")
	for i := 0; i < 98; i++ {
		sb.WriteString("line content\n")
	}
	sb.WriteString("LAST_LINE_MARKER\n")

	m := bubbletea.NewModel(unchangedResult(sb.String()), themes.DarkTheme())
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("FIRST_LINE_MARKER"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("LAST_LINE_MARKER"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}
