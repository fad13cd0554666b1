package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleKey   = lipgloss.NewStyle().Foreground(colorGray).Width(16)
)

// printTitle prints a section heading.
func printTitle(format string, args ...any) {
	fmt.Println(styleTitle.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labeled value; empty values render as a dim dash.
func printKeyValue(key, value string) {
	if value == "" {
		fmt.Println(styleKey.Render(key) + " " + styleDim.Render("-"))
		return
	}
	fmt.Println(styleKey.Render(key) + " " + styleValue.Render(value))
}

// printDetail prints a detail line (indented, muted).
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}
