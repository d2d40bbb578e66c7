package rendering

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// rowDelegate renders each list item as a single plain-text row using the
// package item styles. Every list in the game has filtering disabled, so
// FilterValue doubles as the display string.
type rowDelegate struct{}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	style := ItemStyle
	if index == m.Index() {
		style = HighlightedItemStyle
	}

	fmt.Fprint(w, style.Render(listItem.FilterValue()))
}

func NewRowDelegate() rowDelegate {
	return rowDelegate{}
}
