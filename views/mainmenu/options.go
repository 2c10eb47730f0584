package mainmenu

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/rs/zerolog/log"
)

const savedMessage = "Saved! Changes apply the next time the dex starts."

type optionsMenuModel struct {
	backtrack components.Breadcrumbs

	focus components.Focus

	message string
	err     error
}

type clearMessage struct {
	t time.Time
}

type apiURLInput struct {
	inner textinput.Model
}

func (a *apiURLInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	cmds := make([]tea.Cmd, 0)

	if !a.inner.Focused() {
		cmds = append(cmds, a.inner.Focus())
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			baseURL := a.inner.Value()
			if _, err := url.ParseRequestURI(baseURL); err != nil {
				cmds = append(cmds, opM.showError(err))
			} else {
				global.Opt.API.BaseURL = baseURL
				cmds = append(cmds, opM.save())
			}
		}
	}

	var uCmd tea.Cmd
	a.inner, uCmd = a.inner.Update(msg)
	cmds = append(cmds, uCmd)

	return opM, tea.Batch(cmds...)
}

func (a *apiURLInput) Blur() {
	a.inner.Blur()
}

func (a *apiURLInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "API URL", a.inner.View())
}

func (a *apiURLInput) FocusedView() string { return a.View() }

type prefsLocationInput struct {
	inner textinput.Model
}

func (p *prefsLocationInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	cmds := make([]tea.Cmd, 0)

	if !p.inner.Focused() {
		cmds = append(cmds, p.inner.Focus())
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			prefsLocation := p.inner.Value()
			if prefsLocation != "" {
				prefsLocation = filepath.Clean(prefsLocation)

				// Relative paths are relative to the config dir
				if !filepath.IsAbs(prefsLocation) {
					prefsLocation = filepath.Join(global.DefaultConfigDir(), prefsLocation)
				}

				if err := os.MkdirAll(filepath.Dir(prefsLocation), 0750); err != nil {
					cmds = append(cmds, opM.showError(err))
				} else {
					global.Opt.PrefsLocation = prefsLocation
					cmds = append(cmds, opM.save())
				}

				p.inner.SetValue(prefsLocation)
			}
		}
	}

	var uCmd tea.Cmd
	p.inner, uCmd = p.inner.Update(msg)
	cmds = append(cmds, uCmd)

	return opM, tea.Batch(cmds...)
}

func (p *prefsLocationInput) Blur() {
	p.inner.Blur()
}

func (p *prefsLocationInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Preferences File", p.inner.View())
}

func (p *prefsLocationInput) FocusedView() string { return p.View() }

func newOptionsMenu(backtrack components.Breadcrumbs) optionsMenuModel {
	urlPrompt := textinput.New()
	urlPrompt.Width = 40
	urlPrompt.SetValue(global.Opt.API.BaseURL)
	urlPrompt.Focus()

	prefsPrompt := textinput.New()
	prefsPrompt.Width = 40
	prefsPrompt.SetValue(global.Opt.PrefsLocation)

	return optionsMenuModel{
		backtrack: backtrack,
		focus:     components.NewFocus(&apiURLInput{urlPrompt}, &prefsLocationInput{prefsPrompt}),
	}
}

func (m optionsMenuModel) Init() tea.Cmd { return nil }
func (m optionsMenuModel) View() string {
	status := rendering.StatusStyle.Render(m.message)
	if m.err != nil {
		status = rendering.ErrorStyle.Render("Error! " + m.err.Error())
	}

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, append(m.focus.Views(), status)...))
}

func (m optionsMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMessage:
		m.message = ""
		m.err = nil
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, global.DownTabKey) {
			m.focus.Next()
		}

		if key.Matches(msg, global.UpTabKey) {
			m.focus.Prev()
		}

		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	return m.focus.UpdateFocused(m, msg)
}

func (m *optionsMenuModel) save() tea.Cmd {
	if err := global.SaveConfig(global.Opt); err != nil {
		return m.showError(err)
	}

	log.Info().Str("api", global.Opt.API.BaseURL).Str("prefs", global.Opt.PrefsLocation).Msg("saved options")
	m.message = savedMessage
	return clearAfter(time.Second * 3)
}

func (m *optionsMenuModel) showError(err error) tea.Cmd {
	m.err = err

	log.Err(err).Msg("error in options")

	return clearAfter(time.Second * 2)
}

func clearAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return clearMessage{t}
	})
}
