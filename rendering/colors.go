package rendering

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var DefaultTypeColor = lipgloss.Color("#FFFFFF")

// TypeColors maps a lowercase type name to the colour its moves are drawn in
var TypeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#7F7F7F"),
	"fire":     lipgloss.Color("#FF7F00"),
	"water":    lipgloss.Color("#0000FF"),
	"electric": lipgloss.Color("#FFEB04"),
	"grass":    lipgloss.Color("#00FF00"),
	"ice":      lipgloss.Color("#00FFFF"),
	"fighting": lipgloss.Color("#CC6666"),
	"poison":   lipgloss.Color("#994CCC"),
	"ground":   lipgloss.Color("#CCB27F"),
	"flying":   lipgloss.Color("#99B27F"),
	"psychic":  lipgloss.Color("#FF4C99"),
	"bug":      lipgloss.Color("#99CC66"),
	"rock":     lipgloss.Color("#B29966"),
	"ghost":    lipgloss.Color("#7F66B2"),
	"dragon":   lipgloss.Color("#7F4CB2"),
	"dark":     lipgloss.Color("#664C4C"),
	"steel":    lipgloss.Color("#B2B2CC"),
	"fairy":    lipgloss.Color("#FF99FF"),
}

// TypeColor falls back to white for types without a colour
func TypeColor(typeName string) lipgloss.Color {
	if color, ok := TypeColors[strings.ToLower(typeName)]; ok {
		return color
	}

	return DefaultTypeColor
}

// TypeBadge renders a type name on its colour, text picked for contrast
func TypeBadge(typeName string) string {
	color := TypeColor(typeName)
	return lipgloss.NewStyle().
		Background(color).
		Foreground(BestTextColor(color)).
		Padding(0, 1).
		Render(strings.ToUpper(typeName))
}
