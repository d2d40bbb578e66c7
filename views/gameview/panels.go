package gameview

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/topout/crux"
	"github.com/nathanieltooley/topout/global"
	"github.com/nathanieltooley/topout/rendering"
	"github.com/samber/lo"
)

var (
	panelStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 2).Align(lipgloss.Center)
	highlightedPanelStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 2).Align(lipgloss.Center).Background(rendering.HighlightedColor)
)

type actionPanel struct {
	ctx *gameContext

	actionFocus int
}

func newActionPanel(ctx *gameContext) actionPanel {
	return actionPanel{
		ctx: ctx,
	}
}

// buttonNames is dynamic since the slingshot button only shows up while the
// active climber is armed
func (m actionPanel) buttonNames() []string {
	buttons := []string{"Advance 1", "Advance 2"}
	if m.ctx.state.HasPowerUp {
		buttons = append(buttons, "Slingshot")
	}

	return buttons
}

func (m actionPanel) Init() tea.Cmd { return nil }
func (m actionPanel) View() string {
	buttons := m.buttonNames()
	views := make([]string, 0, len(buttons))

	for i, name := range buttons {
		if i == m.actionFocus {
			views = append(views, highlightedPanelStyle.Width(15).Render(name))
		} else {
			views = append(views, panelStyle.Width(15).Render(name))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}

func (m actionPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	buttonCount := len(m.buttonNames())

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.MoveLeftKey) {
			m.actionFocus--

			if m.actionFocus < 0 {
				m.actionFocus = buttonCount - 1
			}
		}

		if key.Matches(msg, global.MoveRightKey) {
			m.actionFocus++

			if m.actionFocus >= buttonCount {
				m.actionFocus = 0
			}
		}

		if key.Matches(msg, global.SelectKey) {
			switch m.actionFocus {
			case 0:
				m.ctx.setChosenAction(crux.NewMoveAction(m.ctx.state, 1))
			case 1:
				m.ctx.setChosenAction(crux.NewMoveAction(m.ctx.state, 2))
			case 2:
				return newTargetPanel(m.ctx), nil
			}
		}
	}

	return m, nil
}

type targetItem struct {
	label  string
	avatar string
}

func (t targetItem) FilterValue() string {
	return fmt.Sprintf("%s  Climber %s", t.avatar, t.label)
}

// targetPanel lists every climber except the active one, sorted by numeric
// label, as slingshot targets
type targetPanel struct {
	ctx *gameContext

	targets list.Model
}

func newTargetPanel(ctx *gameContext) targetPanel {
	others := lo.Filter(ctx.state.Players, func(_ crux.Player, i int) bool {
		return i != ctx.state.ActiveIndex
	})
	slices.SortFunc(others, func(a, b crux.Player) int {
		aLabel, _ := strconv.Atoi(a.Label)
		bLabel, _ := strconv.Atoi(b.Label)

		return cmp.Compare(aLabel, bLabel)
	})

	items := lo.Map(others, func(player crux.Player, _ int) list.Item {
		return targetItem{label: player.Label, avatar: player.Avatar}
	})

	targetList := list.New(items, rendering.NewRowDelegate(), global.TERM_WIDTH/2, global.TERM_HEIGHT/3)
	targetList.Title = "Knock a climber off the wall"
	targetList.SetShowStatusBar(false)
	targetList.SetFilteringEnabled(false)
	targetList.DisableQuitKeybindings()

	return targetPanel{
		ctx:     ctx,
		targets: targetList,
	}
}

func (m targetPanel) Init() tea.Cmd { return nil }
func (m targetPanel) View() string {
	return m.targets.View()
}

func (m targetPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			if target, ok := m.targets.SelectedItem().(targetItem); ok {
				m.ctx.setChosenAction(crux.NewShootAction(m.ctx.state, target.label))
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.targets, cmd = m.targets.Update(msg)

	return m, cmd
}
