package gameview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/topout/crux"
	"github.com/nathanieltooley/topout/rendering"
)

const powerUpMark = "*"

var (
	cellStyle       = lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	activeCellStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Center).Background(rendering.HighlightedColor).Bold(true)
	wallStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1)
)

// boardPanel draws the wall top-down: row 0 is the finish line, the bottom row
// is where everyone started
type boardPanel struct {
	state *crux.GameState
}

func newBoardPanel(state *crux.GameState) boardPanel {
	return boardPanel{state}
}

func (b boardPanel) Init() tea.Cmd { return nil }
func (b boardPanel) View() string {
	gridSize := b.state.Config.GridSize
	activePos := b.state.ActivePlayer().Pos

	rows := make([]string, 0, gridSize)
	for row := range gridSize {
		cells := make([]string, 0, gridSize)
		for col := range gridSize {
			pos := crux.Position{Row: row, Col: col}

			content := ""
			if b.state.PowerUpAt(pos) {
				content += powerUpMark
			}

			// cells are 4 wide, show at most two climbers and a marker for the rest
			occupants := 0
			for _, player := range b.state.Players {
				if player.Pos == pos {
					if occupants < 2 {
						content += player.Avatar
					}
					occupants++
				}
			}
			if occupants > 2 {
				content += "+"
			}

			if content == "" {
				content = "."
			}

			if pos == activePos {
				cells = append(cells, activeCellStyle.Render(content))
			} else {
				cells = append(cells, cellStyle.Render(content))
			}
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}

	return wallStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (b boardPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return b, nil
}
