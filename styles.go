package textdiff

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a rendered diff.
type Styles struct {
	Added   ColorPair // inserted text
	Deleted ColorPair // removed text
	Context ColorPair // unchanged text
	Header  ColorPair // title line with the compared input names
	Footer  ColorPair // statistics line
}

// Palette provides semantic colors for a theme, including the syntax
// highlighting colors used for unchanged spans.
type Palette struct {
	// Base colors
	Background string
	Foreground string

	// Diff colors
	Added    string
	Deleted  string
	Modified string
	Context  string

	// Syntax highlighting colors
	Keyword     string
	String      string
	Number      string
	Comment     string
	Operator    string
	Function    string
	Type        string
	Constant    string
	Punctuation string

	// UI colors
	UIBackground string
	UIForeground string
	UIAccent     string
}

// Theme provides styles and colors for rendering diffs.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
