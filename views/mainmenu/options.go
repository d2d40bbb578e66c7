package mainmenu

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/topout/global"
	"github.com/nathanieltooley/topout/rendering"
	"github.com/nathanieltooley/topout/rendering/components"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type optionsMenuModel struct {
	backtrack components.Breadcrumbs

	focus           components.Focus
	shouldShowError bool
	err             error
}

type clearErrorMessage struct {
	t time.Time
}

type climberNameInput struct {
	inner textinput.Model
}

func (c *climberNameInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	cmds := []tea.Cmd{c.inner.Focus()}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			climberName := "Climber"
			if c.inner.Value() != "" {
				climberName = c.inner.Value()
			}

			global.Opt.ClimberName = climberName
			if err := global.SaveConfig(global.Opt); err != nil {
				cmds = append(cmds, opM.showError(err))
			}
		}
	}

	var uCmd tea.Cmd
	c.inner, uCmd = c.inner.Update(msg)
	cmds = append(cmds, uCmd)

	return opM, tea.Batch(cmds...)
}

func (c *climberNameInput) Blur() {
	c.inner.Blur()
}

func (c *climberNameInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Climber Name", c.inner.View())
}

type debugToggle struct {
	focused bool
}

func (d *debugToggle) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	d.focused = true

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			global.Opt.Debug = !global.Opt.Debug

			level := zerolog.InfoLevel
			if global.Opt.Debug {
				level = zerolog.DebugLevel
			}
			global.UpdateLogLevel(level)

			if err := global.SaveConfig(global.Opt); err != nil {
				cmd = opM.showError(err)
			}
		}
	}

	return opM, cmd
}

func (d *debugToggle) Blur() {
	d.focused = false
}

func (d *debugToggle) View() string {
	label := fmt.Sprintf("Debug Logging: %t", global.Opt.Debug)
	if d.focused {
		return rendering.HighlightedItemStyle.Render(label)
	}

	return rendering.ItemStyle.Render(label)
}

func newOptionsMenu(backtrack components.Breadcrumbs) optionsMenuModel {
	namePrompt := textinput.New()
	namePrompt.Focus()
	namePrompt.SetValue(global.Opt.ClimberName)

	return optionsMenuModel{
		backtrack: backtrack,
		focus:     components.NewFocus(&climberNameInput{namePrompt}, &debugToggle{}),
	}
}

func (m optionsMenuModel) Init() tea.Cmd { return nil }
func (m optionsMenuModel) View() string {
	if m.shouldShowError {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "Error!", rendering.ButtonStyle.Render(m.err.Error())))
	}

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, m.focus.Views()...))
}

func (m optionsMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	switch msg := msg.(type) {
	case clearErrorMessage:
		m.shouldShowError = false
		m.err = nil
	case tea.KeyMsg:
		if m.shouldShowError {
			return m, nil
		}

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

	newModel, focusCmd := m.focus.UpdateFocused(m, msg)
	m = newModel.(optionsMenuModel)
	cmds = append(cmds, focusCmd)

	return m, tea.Batch(cmds...)
}

func (m *optionsMenuModel) showError(err error) tea.Cmd {
	m.shouldShowError = true
	m.err = err

	log.Err(err).Msg("error in options")

	return tea.Tick(time.Second*2, func(t time.Time) tea.Msg {
		return clearErrorMessage{t}
	})
}
