package gameview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/topout/crux"
	"github.com/nathanieltooley/topout/rendering"
)

var avatarStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Padding(1, 4).Bold(true)

type endModel struct {
	winner crux.Player
}

func newEndScreen(winner crux.Player) endModel {
	return endModel{winner}
}

func (m endModel) Init() tea.Cmd { return nil }
func (m endModel) View() string {
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center,
		"Game Over",
		avatarStyle.Render(m.winner.Avatar),
		fmt.Sprintf("Climber %s topped out!", m.winner.Label),
	))
}

func (m endModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}
