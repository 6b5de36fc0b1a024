// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import textdiff "github.com/honlnk/text-diff-viewer"

// Compile-time interface verification.
var _ textdiff.Theme = (*Theme)(nil)

// Theme implements textdiff.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  textdiff.Styles
	palette textdiff.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() textdiff.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() textdiff.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Changed text carries a bright background so single-character edits stay
// visible; syntax colors on unchanged spans remain readable.
func DarkTheme() *Theme {
	return &Theme{
		styles: textdiff.Styles{
			Added: textdiff.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#a6e3a1", // Bright green
			},
			Deleted: textdiff.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#f38ba8", // Bright red
			},
			Context: textdiff.ColorPair{
				Foreground: "#cdd6f4", // Plain foreground
			},
			Header: textdiff.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			Footer: textdiff.ColorPair{
				Foreground: "#a6adc8", // Muted
				Background: "#313244", // Dark surface
			},
		},
		palette: textdiff.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			// Diff colors
			Added:    "#a6e3a1",
			Deleted:  "#f38ba8",
			Modified: "#f9e2af",
			Context:  "#6c7086",

			// Syntax highlighting colors
			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",

			// UI colors
			UIBackground: "#313244",
			UIForeground: "#a6adc8",
			UIAccent:     "#89b4fa",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: textdiff.Styles{
			Added: textdiff.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#40a02b", // Green
			},
			Deleted: textdiff.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#d20f39", // Red
			},
			Context: textdiff.ColorPair{
				Foreground: "#4c4f69", // Plain foreground
			},
			Header: textdiff.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			Footer: textdiff.ColorPair{
				Foreground: "#6c6f85", // Muted
				Background: "#e6e9ef", // Light surface
			},
		},
		palette: textdiff.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			// Diff colors
			Added:    "#40a02b",
			Deleted:  "#d20f39",
			Modified: "#df8e1d",
			Context:  "#9ca0b0",

			// Syntax highlighting colors
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",

			// UI colors
			UIBackground: "#e6e9ef",
			UIForeground: "#6c6f85",
			UIAccent:     "#1e66f5",
		},
	}
}
