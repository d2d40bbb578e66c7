package components

import tea "github.com/charmbracelet/bubbletea"

// Breadcrumbs records how the player reached the current menu as a stack of
// model constructors. Pushing copies the value, so a child view can be handed
// the grown trail while the parent keeps its own.
type Breadcrumbs struct {
	trail []func() tea.Model
}

func NewBreadcrumb() Breadcrumbs {
	return Breadcrumbs{}
}

func (b Breadcrumbs) PushNew(modelFunc func() tea.Model) Breadcrumbs {
	b.trail = append(b.trail, modelFunc)

	return b
}

// PopDefault rebuilds the previous menu, or falls back to def when the trail
// is empty
func (b Breadcrumbs) PopDefault(def func() tea.Model) tea.Model {
	if len(b.trail) == 0 {
		return def()
	}

	top := b.trail[len(b.trail)-1]
	b.trail = b.trail[:len(b.trail)-1]

	return top()
}
