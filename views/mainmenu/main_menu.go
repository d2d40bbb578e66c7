package mainmenu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/topout/crux"
	"github.com/nathanieltooley/topout/global"
	"github.com/nathanieltooley/topout/rendering"
	"github.com/nathanieltooley/topout/rendering/components"
	"github.com/nathanieltooley/topout/views/gameview"
)

type MainMenuModel struct {
	buttons components.MenuButtons
}

func NewModel() MainMenuModel {
	buttons := []components.ViewButton{
		{
			Name: "Climb",
			OnClick: func() (tea.Model, tea.Cmd) {
				gameState := crux.NewState(crux.DefaultConfig(), crux.CreateRandomStateSeed())
				return gameview.NewMainGameModel(gameState), nil
			},
		},
		{
			Name: "Help",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newHelpMenu(backtrack.PushNew(func() tea.Model { return NewModel() })), nil
			},
		},
		{
			Name: "Options",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newOptionsMenu(backtrack.PushNew(func() tea.Model { return NewModel() })), nil
			},
		},
	}

	return MainMenuModel{
		buttons: components.NewMenuButton(buttons),
	}
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) View() string {
	header := "Topout!"
	greeting := fmt.Sprintf("Race to the top of the wall, %s", global.Opt.ClimberName)

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, greeting, m.buttons.View()))
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, startCmd := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, startCmd
	}

	return m, nil
}
