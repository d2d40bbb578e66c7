package mainmenu

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/topout/global"
	"github.com/nathanieltooley/topout/rendering"
	"github.com/nathanieltooley/topout/rendering/components"
)

type helpMenuModel struct {
	backtrack components.Breadcrumbs
}

func newHelpMenu(backtrack components.Breadcrumbs) helpMenuModel {
	return helpMenuModel{backtrack}
}

func (m helpMenuModel) Init() tea.Cmd { return nil }
func (m helpMenuModel) View() string {
	return rendering.GlobalCenter(
		lipgloss.JoinVertical(lipgloss.Center, "Help",
			"You control the highlighted climber. First one to the top row wins",
			"Advance 1 or 2 rows each turn, everyone else climbs on their own",
			"Land on a slingshot (*) to arm a one-shot knock-off",
			"",
			"H / Left and L / Right to change the selected button",
			"Up / K and Down / J to move through menus and lists",
			"Enter to select",
			"Esc to move to a previous menu",
		),
	)
}

func (m helpMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return NewModel() }), nil
		}
	}

	return m, nil
}
