package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMenuButtonsWrapAndClick(t *testing.T) {
	clicked := ""
	buttons := NewMenuButton([]ViewButton{
		{Name: "Pokedex", OnClick: func() (tea.Model, tea.Cmd) { clicked = "Pokedex"; return namedModel("dex"), nil }},
		{Name: "Moves", OnClick: func() (tea.Model, tea.Cmd) { clicked = "Moves"; return namedModel("moves"), nil }},
	})

	buttons.Update(tea.KeyMsg{Type: tea.KeyUp})
	if buttons.Index() != 1 {
		t.Fatalf("expected up from the first button to wrap to 1, got %d", buttons.Index())
	}

	model, _ := buttons.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if clicked != "Moves" || model != namedModel("moves") {
		t.Fatalf("expected the moves button to be clicked, got %q and %v", clicked, model)
	}

	if model, _ := buttons.Update(tea.KeyMsg{Type: tea.KeyDown}); model != nil {
		t.Fatalf("moving between buttons shouldn't change screens, got %v", model)
	}

	if buttons.Index() != 0 {
		t.Fatalf("expected down from the last button to wrap to 0, got %d", buttons.Index())
	}
}
