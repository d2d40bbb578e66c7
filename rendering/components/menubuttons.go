package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/topout/global"
	"github.com/nathanieltooley/topout/rendering"
)

// ViewButton is a labelled menu entry. OnClick builds the model the menu
// hands control to when the entry is selected.
type ViewButton struct {
	Name    string
	OnClick func() (tea.Model, tea.Cmd)
}

// MenuButtons is a vertical stack of buttons cycled with the shared
// up/down/tab bindings.
type MenuButtons struct {
	buttons []ViewButton
	index   int
}

func NewMenuButton(buttons []ViewButton) MenuButtons {
	return MenuButtons{
		buttons: buttons,
	}
}

// Update returns a non-nil model only when a button was clicked
func (m *MenuButtons) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	if key.Matches(keyMsg, global.MoveDownKey, global.DownTabKey) {
		m.index = (m.index + 1) % len(m.buttons)
	}

	if key.Matches(keyMsg, global.MoveUpKey, global.UpTabKey) {
		m.index = (m.index + len(m.buttons) - 1) % len(m.buttons)
	}

	if key.Matches(keyMsg, global.SelectKey) {
		return m.buttons[m.index].OnClick()
	}

	return nil, nil
}

func (m MenuButtons) View() string {
	views := make([]string, len(m.buttons))
	for i, button := range m.buttons {
		if i == m.index {
			views[i] = rendering.HighlightedButtonStyle.Render(button.Name)
		} else {
			views[i] = rendering.ButtonStyle.Render(button.Name)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, views...)
}
