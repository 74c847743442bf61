package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha colors the themes draw from.
// https://catppuccin.com/palette
const (
	// accents
	colorPink   lipgloss.Color = "#f5c2e7"
	colorMauve  lipgloss.Color = "#cba6f7"
	colorRed    lipgloss.Color = "#f38ba8"
	colorMaroon lipgloss.Color = "#eba0ac"
	colorPeach  lipgloss.Color = "#fab387"
	colorYellow lipgloss.Color = "#f9e2af"
	colorGreen  lipgloss.Color = "#a6e3a1"
	colorTeal   lipgloss.Color = "#94e2d5"
	colorBlue   lipgloss.Color = "#89b4fa"

	// text and surfaces
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
)
