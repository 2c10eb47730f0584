package components

import tea "github.com/charmbracelet/bubbletea"

// Focus cycles keyboard focus between the inputs of a screen
type Focus struct {
	Index int
	Items []Focusable
}

func NewFocus(items ...Focusable) Focus {
	return Focus{Items: items}
}

type Focusable interface {
	OnFocus(tea.Model, tea.Msg) (tea.Model, tea.Cmd)
	Blur()
	View() string
	FocusedView() string
}

func (f *Focus) Next() {
	f.Index = (f.Index + 1) % len(f.Items)
}

func (f *Focus) Prev() {
	f.Index = (f.Index - 1 + len(f.Items)) % len(f.Items)
}

func (f Focus) Focused() Focusable {
	return f.Items[f.Index]
}

// UpdateFocused blurs everything else and hands msg to the focused item
func (f *Focus) UpdateFocused(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	for i, item := range f.Items {
		if i != f.Index {
			item.Blur()
		}
	}
	return f.Items[f.Index].OnFocus(m, msg)
}

func (f Focus) Views() []string {
	views := make([]string, len(f.Items))
	for i, item := range f.Items {
		if i == f.Index {
			views[i] = item.FocusedView()
		} else {
			views[i] = item.View()
		}
	}

	return views
}
