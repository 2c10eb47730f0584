package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Breadcrumbs is the stack of screens to go back to.
// It is a value type: every method returns the modified copy so a screen can
// hand its own trail to the next screen without sharing it.
type Breadcrumbs struct {
	trail []func() tea.Model
}

func NewBreadcrumb() Breadcrumbs {
	return Breadcrumbs{}
}

// Push a model onto the stack. Going back returns this exact model.
func (b Breadcrumbs) Push(model tea.Model) Breadcrumbs {
	return b.PushNew(func() tea.Model {
		return model
	})
}

// PushNew pushes a constructor, going back rebuilds the screen from scratch.
func (b Breadcrumbs) PushNew(modelFunc func() tea.Model) Breadcrumbs {
	// copy so sibling pushes don't share a backing array
	trail := make([]func() tea.Model, len(b.trail), len(b.trail)+1)
	copy(trail, b.trail)
	b.trail = append(trail, modelFunc)

	log.Debug().Int("len", len(b.trail)).Msg("breadcrumb push")
	return b
}

func (b Breadcrumbs) Len() int {
	return len(b.trail)
}

// Pop returns the last screen and the trail without it. ok is false on an empty trail.
func (b Breadcrumbs) Pop() (tea.Model, Breadcrumbs, bool) {
	l := len(b.trail)
	if l == 0 {
		return nil, b, false
	}

	modelFunc := b.trail[l-1]
	b.trail = b.trail[:l-1]

	log.Debug().Int("len", len(b.trail)).Msg("breadcrumb pop")
	return modelFunc(), b, true
}

func (b Breadcrumbs) PopDefault(def func() tea.Model) tea.Model {
	model, _, ok := b.Pop()
	if !ok {
		return def()
	}

	return model
}
