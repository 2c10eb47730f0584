package rendering

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/global"
)

var (
	HighlightedColor = lipgloss.Color("33")
	ErrorColor       = lipgloss.Color("160")
	MutedColor       = lipgloss.Color("244")

	ButtonStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center)
	HighlightedButtonStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center).Foreground(HighlightedColor)

	HighlightedItemStyle = lipgloss.NewStyle().PaddingLeft(4).Foreground(HighlightedColor)
	ItemStyle            = lipgloss.NewStyle().PaddingLeft(4)

	PanelStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 2)
	HeaderStyle       = lipgloss.NewStyle().Bold(true)
	ErrorStyle        = lipgloss.NewStyle().Foreground(ErrorColor)
	StatusStyle       = lipgloss.NewStyle().Foreground(MutedColor)
)

func Center(width int, height int, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

func GlobalCenter(text string) string {
	return Center(global.TERM_WIDTH, global.TERM_HEIGHT, text)
}

func BestTextColor(backgroundColor lipgloss.Color) lipgloss.Color {
	// thanks https://andrisignorell.github.io/DescTools/reference/TextContrastColor.html
	r, g, b, _ := backgroundColor.RGBA()
	// RGBA is 16 bit per channel
	mean := (r + g + b) / 3 >> 8

	if mean < 127 {
		return lipgloss.Color("#FFFFFF")
	} else {
		return lipgloss.Color("#000000")
	}
}
