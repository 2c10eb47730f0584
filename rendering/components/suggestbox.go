package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/rendering"
)

const suggestBoxWidth = 30

var dropdownStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder(), false, true, true, true).
	Width(suggestBoxWidth)

// SuggestBox is a text input with an autocomplete dropdown over the name corpus.
type SuggestBox struct {
	Input textinput.Model

	corpus      dex.Corpus
	suggestions dex.Suggestions
	// -1 when nothing in the dropdown is highlighted
	highlighted int
}

func NewSuggestBox(placeholder string) SuggestBox {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Width = suggestBoxWidth - 4
	input.CharLimit = 64

	return SuggestBox{
		Input:       input,
		suggestions: dex.Suggestions{Options: []string{}},
		highlighted: -1,
	}
}

// SetCorpus swaps the names suggestions are drawn from and re-runs the current query
func (s *SuggestBox) SetCorpus(corpus dex.Corpus) {
	s.corpus = corpus
	if s.Input.Value() != "" {
		s.refresh()
	}
}

func (s SuggestBox) Value() string {
	return s.Input.Value()
}

func (s *SuggestBox) SetValue(value string) {
	s.Input.SetValue(value)
	s.Close()
}

func (s SuggestBox) Suggestions() dex.Suggestions {
	return s.suggestions
}

func (s SuggestBox) Highlighted() int {
	return s.highlighted
}

func (s *SuggestBox) Focus() tea.Cmd {
	return s.Input.Focus()
}

func (s *SuggestBox) Blur() {
	s.Input.Blur()
	s.Close()
}

// Close hides the dropdown without touching the input
func (s *SuggestBox) Close() {
	s.suggestions = dex.Suggestions{Options: []string{}}
	s.highlighted = -1
}

// Choose fills the input with option index of the dropdown.
// An index that isn't in the dropdown changes nothing.
func (s *SuggestBox) Choose(index int) bool {
	name, ok := dex.Select(index, s.suggestions.Options)
	if !ok {
		return false
	}

	s.SetValue(name)
	return true
}

func (s *SuggestBox) refresh() {
	s.suggestions = dex.Suggest(s.Input.Value(), s.corpus)
	s.highlighted = -1
}

// Update handles typing and dropdown navigation.
// handled is true when the box consumed the key (e.g. enter picked a suggestion),
// otherwise the parent screen is free to act on it.
func (s SuggestBox) Update(msg tea.Msg) (SuggestBox, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && s.Input.Focused() {
		options := s.suggestions.Options

		switch {
		case key.Matches(keyMsg, global.MoveDownKey):
			if len(options) > 0 {
				s.highlighted = min(s.highlighted+1, len(options)-1)
			}
			return s, nil, true
		case key.Matches(keyMsg, global.MoveUpKey):
			if s.highlighted >= 0 {
				s.highlighted--
			}
			return s, nil, true
		case key.Matches(keyMsg, global.SelectKey):
			if s.highlighted >= 0 && s.Choose(s.highlighted) {
				return s, nil, true
			}
			s.Close()
			return s, nil, false
		}
	}

	before := s.Input.Value()

	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)

	if s.Input.Value() != before {
		s.refresh()
	}

	return s, cmd, false
}

func (s SuggestBox) View() string {
	if !s.suggestions.Visible {
		return s.Input.View()
	}

	rows := make([]string, len(s.suggestions.Options))
	for i, option := range s.suggestions.Options {
		if i == s.highlighted {
			rows[i] = rendering.HighlightedItemStyle.Render(option)
		} else {
			rows[i] = rendering.ItemStyle.Render(option)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, s.Input.View(), dropdownStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}
