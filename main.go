package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/topout/global"
	"github.com/nathanieltooley/topout/views/mainmenu"
	"github.com/rs/zerolog/log"
)

type model struct {
	currentView tea.Model
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newView, cmd := m.currentView.Update(msg)

	m.currentView = newView

	// Disables the closing of the program when pressing ESC
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEscape {
			return m, nil
		}
	}

	return m, cmd
}

func (m model) View() string {
	return m.currentView.View()
}

func main() {
	global.GlobalInit(true)

	m := model{
		currentView: mainmenu.NewModel(),
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal().Err(err).Msg("Error running program")
	}
}
