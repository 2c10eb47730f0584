package rendering

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SimpleItem is a list row that is just its text
type SimpleItem string

func (i SimpleItem) FilterValue() string { return string(i) }

// ColoredItem is a list row drawn in its own colour
type ColoredItem struct {
	Text  string
	Color lipgloss.Color
}

func (i ColoredItem) FilterValue() string { return i.Text }

type simpleDelegate struct {
	HighlightedItemStyle lipgloss.Style
	ItemStyle            lipgloss.Style

	spacing int
}

func (d simpleDelegate) Height() int {
	// Get the smaller style's height
	height := math.Min(float64(d.ItemStyle.GetHeight()), float64(d.HighlightedItemStyle.GetHeight()))
	// Make sure the height is atleast 1
	intHeight := int(math.Max(1, height))
	return intHeight
}
func (d simpleDelegate) Spacing() int                            { return d.spacing }
func (d simpleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d simpleDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	style := d.ItemStyle
	if index == m.Index() {
		style = d.HighlightedItemStyle
	}

	if colored, ok := listItem.(ColoredItem); ok {
		style = style.Foreground(colored.Color)
		if index == m.Index() {
			style = style.Bold(true)
		}
	}

	fmt.Fprint(w, style.Render(listItem.FilterValue()))
}

func (d *simpleDelegate) SetSpacing(spacing int) {
	d.spacing = spacing
}

func NewSimpleListDelegate() simpleDelegate {
	return simpleDelegate{HighlightedItemStyle, ItemStyle, 0}
}

// NewSimpleList is a bare list without the bubbles chrome (title, filter, help)
func NewSimpleList(items []list.Item, width int, height int) list.Model {
	l := list.New(items, NewSimpleListDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)

	return l
}
