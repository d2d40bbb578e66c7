package components

import tea "github.com/charmbracelet/bubbletea"

// Focusable is one row of a small form. OnFocus receives the parent model and
// the incoming message and hands the updated parent back; rows render their
// own focus state, so View is the only display hook.
type Focusable interface {
	OnFocus(tea.Model, tea.Msg) (tea.Model, tea.Cmd)
	Blur()
	View() string
}

// Focus tracks which form row holds keyboard focus.
type Focus struct {
	index int
	rows  []Focusable
}

func NewFocus(rows ...Focusable) Focus {
	return Focus{rows: rows}
}

func (f *Focus) Next() {
	f.index = (f.index + 1) % len(f.rows)
}

func (f *Focus) Prev() {
	f.index = (f.index + len(f.rows) - 1) % len(f.rows)
}

// UpdateFocused blurs every unfocused row and routes the message to the
// focused one
func (f *Focus) UpdateFocused(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	for i, row := range f.rows {
		if i != f.index {
			row.Blur()
		}
	}

	return f.rows[f.index].OnFocus(m, msg)
}

func (f *Focus) Views() []string {
	views := make([]string, 0, len(f.rows))
	for _, row := range f.rows {
		views = append(views, row.View())
	}

	return views
}
