package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	textdiff "github.com/honlnk/text-diff-viewer"
)

// RenderOptions control the optional parts of rendering a result.
type RenderOptions struct {
	Title     string             // shown in the header line
	Width     int                // terminal width; 0 falls back to 80
	Language  string             // language for syntax highlighting, "" disables it
	Tokenizer textdiff.Tokenizer // tokenizer for syntax highlighting, nil disables it
	Renderer  *lipgloss.Renderer // nil uses the default lipgloss renderer
}

// Render returns the complete styled rendering of a result: header line,
// inline diff body, and statistics footer. The interactive viewer renders
// the same body inside a scrolling viewport.
func Render(result *textdiff.Result, theme textdiff.Theme, opts RenderOptions) string {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	styles := theme.Styles()

	cfg := renderConfig{
		result:    result,
		styles:    styles,
		renderer:  renderer,
		language:  opts.Language,
		tokenizer: opts.Tokenizer,
	}

	header := renderHeader(opts.Title, result.Stats(), styles, renderer, width)
	body := renderBody(cfg)
	footer := renderFooter(result, styles, renderer, width)

	return header + "\n" + body + "\n" + footer
}

// renderConfig holds the rendering parameters for renderBody.
type renderConfig struct {
	result    *textdiff.Result
	styles    textdiff.Styles
	renderer  *lipgloss.Renderer
	language  string
	tokenizer textdiff.Tokenizer
}

// renderHeader renders the title line in the format
// "── title ───────── +A -D ~M ──" with the fill sized to the width.
func renderHeader(title string, stats textdiff.Stats, styles textdiff.Styles, renderer *lipgloss.Renderer, width int) string {
	if title == "" {
		title = "diff"
	}
	counts := fmt.Sprintf("+%d -%d ~%d", stats.Additions, stats.Deletions, stats.Modifications)

	middle := "── " + title + " "
	end := " " + counts + " ──"

	fillWidth := width - lipgloss.Width(middle) - lipgloss.Width(end)
	if fillWidth < 3 {
		fillWidth = 3
	}
	fill := strings.Repeat("─", fillWidth)

	return styleFromColorPair(styles.Header, renderer).Render(middle + fill + end)
}

// renderFooter renders the statistics line.
func renderFooter(result *textdiff.Result, styles textdiff.Styles, renderer *lipgloss.Renderer, width int) string {
	stats := result.Stats()
	text := fmt.Sprintf(" similarity %.2f%%  +%d -%d ~%d  edit distance %d ",
		stats.Similarity, stats.Additions, stats.Deletions, stats.Modifications, result.EditDistance)
	style := styleFromColorPair(styles.Footer, renderer)
	if width > lipgloss.Width(text) {
		style = style.Width(width)
	}
	return style.Render(text)
}

// renderBody renders the inline diff: unchanged spans in the context style
// (or syntax highlighted when a tokenizer and language are available),
// removed text in the deleted style, and inserted text in the added style.
// A modify shows the old text immediately followed by the new text.
func renderBody(cfg renderConfig) string {
	result := cfg.result
	if result == nil {
		return ""
	}

	contextStyle := styleFromColorPair(cfg.styles.Context, cfg.renderer)
	addedStyle := styleFromColorPair(cfg.styles.Added, cfg.renderer)
	deletedStyle := styleFromColorPair(cfg.styles.Deleted, cfg.renderer)

	syntax := newSyntaxText(cfg.tokenizer, cfg.language, result.Text1)

	e := &emitter{}
	pos := 0
	for _, rec := range result.Records {
		if rec.Position > pos {
			e.writeContext(result.Text1[pos:rec.Position], pos, syntax, contextStyle, cfg.renderer)
			pos = rec.Position
		}
		switch rec.Kind {
		case textdiff.KindAdd:
			e.write(rec.Content, addedStyle)
		case textdiff.KindDelete:
			e.write(rec.Original, deletedStyle)
			pos += len(rec.Original)
		case textdiff.KindModify:
			e.write(rec.Original, deletedStyle)
			e.write(rec.Content, addedStyle)
			pos += len(rec.Original)
		}
	}
	if pos < len(result.Text1) {
		e.writeContext(result.Text1[pos:], pos, syntax, contextStyle, cfg.renderer)
	}

	return e.String()
}

// emitter accumulates styled text. Chunks are split on newlines so
// background colors never bleed across line boundaries, and tabs are
// expanded against the current column.
type emitter struct {
	sb  strings.Builder
	col int
}

func (e *emitter) write(text string, style lipgloss.Style) {
	for len(text) > 0 {
		chunk := text
		idx := strings.IndexByte(text, '\n')
		if idx >= 0 {
			chunk = text[:idx]
		}
		if chunk != "" {
			expanded := ExpandTabs(chunk, e.col)
			e.sb.WriteString(style.Render(expanded))
			e.col += lipgloss.Width(expanded)
		}
		if idx < 0 {
			return
		}
		e.sb.WriteByte('\n')
		e.col = 0
		text = text[idx+1:]
	}
}

// writeContext emits an unchanged span, using syntax token styles when
// available and the context style otherwise.
func (e *emitter) writeContext(text string, offset int, syntax *syntaxText, fallback lipgloss.Style, renderer *lipgloss.Renderer) {
	if syntax == nil {
		e.write(text, fallback)
		return
	}
	for _, tok := range syntax.slice(offset, offset+len(text)) {
		e.write(tok.Text, tokenStyle(tok.Style, fallback, renderer))
	}
}

func (e *emitter) String() string {
	return e.sb.String()
}

// syntaxText indexes the tokenized source text so unchanged spans can be
// sliced out by byte offset.
type syntaxText struct {
	tokens []textdiff.Token
	starts []int
}

// newSyntaxText tokenizes the whole source once. Returns nil when syntax
// highlighting is unavailable or the lexer does not reproduce the source
// exactly (offsets would drift).
func newSyntaxText(tokenizer textdiff.Tokenizer, language, source string) *syntaxText {
	if tokenizer == nil || language == "" {
		return nil
	}
	tokens := tokenizer.Tokenize(language, source)
	if tokens == nil {
		return nil
	}
	starts := make([]int, len(tokens)+1)
	for i, tok := range tokens {
		starts[i+1] = starts[i] + len(tok.Text)
	}
	if starts[len(tokens)] != len(source) {
		return nil
	}
	return &syntaxText{tokens: tokens, starts: starts}
}

// slice returns the tokens covering the byte range [from, to), clipping
// tokens that straddle the boundaries.
func (s *syntaxText) slice(from, to int) []textdiff.Token {
	var out []textdiff.Token
	for i, tok := range s.tokens {
		start, end := s.starts[i], s.starts[i+1]
		if end <= from {
			continue
		}
		if start >= to {
			break
		}
		a, b := start, end
		if a < from {
			a = from
		}
		if b > to {
			b = to
		}
		out = append(out, textdiff.Token{Text: tok.Text[a-start : b-start], Style: tok.Style})
	}
	return out
}

// styleFromColorPair creates a lipgloss style from a color pair.
func styleFromColorPair(cp textdiff.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	style := renderer.NewStyle()
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// tokenStyle converts a syntax token style to a lipgloss style, falling
// back to the context style for unstyled tokens.
func tokenStyle(tok textdiff.Style, fallback lipgloss.Style, renderer *lipgloss.Renderer) lipgloss.Style {
	if tok.Foreground == "" && !tok.Bold {
		return fallback
	}
	style := renderer.NewStyle()
	if tok.Foreground != "" {
		style = style.Foreground(lipgloss.Color(tok.Foreground))
	}
	if tok.Bold {
		style = style.Bold(true)
	}
	return style
}
