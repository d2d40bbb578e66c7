package gameview

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/topout/crux"
	"github.com/nathanieltooley/topout/global"
	"github.com/nathanieltooley/topout/rendering"
	"github.com/rs/zerolog/log"
)

const _MESSAGE_TIME = time.Second

// game state machine
const (
	SM_WAITING_FOR_USER_ACTION = iota
	SM_USER_ACTION_SENT
	SM_RESOLVING_TURN
	SM_RECEIVED_EVENTS
	SM_SHOWING_EVENTS
)

// Used to send info around different game UI components
type gameContext struct {
	// This state is "The One True State", the actual state that dictates how the game is going
	state          *crux.GameState
	chosenAction   crux.Action
	currentSmState int
}

func (gc *gameContext) setChosenAction(act crux.Action) {
	if gc.chosenAction == nil {
		gc.chosenAction = act
		gc.currentSmState = SM_USER_ACTION_SENT
	}
}

type MainGameModel struct {
	ctx *gameContext

	// Intermediate states (in between turns) that need to be displayed to the client
	eventQueue          crux.EventIter
	messageQueue        []string
	currentStateMessage string

	inited      bool
	insidePanel bool
	panel       tea.Model

	gameOver    bool
	winnerLabel string
}

func NewMainGameModel(gameState crux.GameState) MainGameModel {
	ctx := &gameContext{
		state:          &gameState,
		chosenAction:   nil,
		currentSmState: SM_WAITING_FOR_USER_ACTION,
	}

	return MainGameModel{
		ctx:        ctx,
		panel:      newActionPanel(ctx),
		eventQueue: crux.NewEventIter(),
	}
}

type (
	turnResolveMsg struct {
		result crux.TurnResult
	}
	nextNotifMsg struct{}
)

func (m MainGameModel) Init() tea.Cmd { return nil }

func (m MainGameModel) View() string {
	active := m.ctx.state.ActivePlayer()

	status := fmt.Sprintf("%s, you are climber %s (%s)", global.Opt.ClimberName, active.Label, active.Avatar)
	if m.ctx.state.HasPowerUp {
		status += " | slingshot armed!"
	}

	panelView := ""
	if m.ctx.currentSmState == SM_WAITING_FOR_USER_ACTION {
		panelView = m.panel.View()
	}

	return rendering.GlobalCenter(
		lipgloss.JoinVertical(
			lipgloss.Center,

			fmt.Sprintf("Turn: %d", m.ctx.state.Turn),
			status,

			newBoardPanel(m.ctx.state).View(),

			rendering.ButtonStyle.Width(60).Render(m.currentStateMessage),

			panelView,
		),
	)
}

func (m *MainGameModel) nextEvent() bool {
	messages, ok := m.eventQueue.Next(m.ctx.state)
	if !ok {
		log.Debug().Msg("no more events")
		return false
	}

	log.Debug().Strs("event messages", messages).Msg("")

	m.messageQueue = append(m.messageQueue, messages...)

	return true
}

// Returns true if there was a message in the queue
func (m *MainGameModel) nextStateMsg() bool {
	if len(m.messageQueue) != 0 {
		m.currentStateMessage = m.messageQueue[0]
		m.messageQueue = m.messageQueue[1:]

		log.Debug().Msgf("Rendering next message: %s", m.currentStateMessage)

		return true
	}

	return false
}

func (m MainGameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	switch m.panel.(type) {
	case actionPanel:
		m.insidePanel = false
	default:
		m.insidePanel = true
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.insidePanel {
				m.panel = newActionPanel(m.ctx)
			}
		}
	case turnResolveMsg:
		m.ctx.chosenAction = nil

		if msg.result.Kind == crux.RESULT_GAMEOVER {
			m.gameOver = true
			m.winnerLabel = msg.result.WinnerLabel
		}

		m.eventQueue.AddEvents(msg.result.Events)
		m.ctx.currentSmState = SM_RECEIVED_EVENTS
	case nextNotifMsg:
		// For when we still have messages in the queue
		moreMessagesToRender := m.nextStateMsg()
		if moreMessagesToRender {
			cmds = append(cmds, tea.Tick(_MESSAGE_TIME, func(t time.Time) tea.Msg {
				return nextNotifMsg{}
			}))
		} else {
			// Go to the next event once we run out of messages
			if m.nextEvent() {
				msgToShow := m.nextStateMsg()
				delay := _MESSAGE_TIME
				if !msgToShow {
					delay = 0
				}

				cmds = append(cmds, tea.Tick(delay, func(t time.Time) tea.Msg {
					return nextNotifMsg{}
				}))
			} else {
				// Reset back to normal when we run out of events
				m.currentStateMessage = ""

				if m.gameOver {
					winnerIndex := m.ctx.state.PlayerIndexByLabel(m.winnerLabel)
					return newEndScreen(*m.ctx.state.GetPlayer(winnerIndex)), nil
				}

				m.panel = newActionPanel(m.ctx)
				m.ctx.currentSmState = SM_WAITING_FOR_USER_ACTION
			}
		}
	}

	if m.ctx.currentSmState == SM_WAITING_FOR_USER_ACTION {
		m.panel, _ = m.panel.Update(msg)
	}

	// User has submitted an action
	if m.ctx.currentSmState == SM_USER_ACTION_SENT {
		action := m.ctx.chosenAction

		cmds = append(cmds, func() tea.Msg {
			return turnResolveMsg{result: crux.ProcessTurn(m.ctx.state, action)}
		})

		m.ctx.currentSmState = SM_RESOLVING_TURN
	}

	// Once we get some state updates from the state updater,
	// start displaying them
	if m.ctx.currentSmState == SM_RECEIVED_EVENTS {
		m.nextEvent()
		initialEventMsgs := len(m.messageQueue)
		m.nextStateMsg()

		if initialEventMsgs == 0 {
			cmds = append(cmds, func() tea.Msg {
				return nextNotifMsg{}
			})
		} else {
			cmds = append(cmds, tea.Tick(_MESSAGE_TIME, func(t time.Time) tea.Msg {
				return nextNotifMsg{}
			}))
		}

		m.ctx.currentSmState = SM_SHOWING_EVENTS
	}

	if !m.inited {
		active := m.ctx.state.ActivePlayer()
		m.eventQueue.AddEvents([]crux.StateEvent{
			crux.NewMessageEvent(fmt.Sprintf("Get climber %s to the top of the wall!", active.Label)),
		})

		m.ctx.currentSmState = SM_SHOWING_EVENTS
		cmds = append(cmds, func() tea.Msg {
			return nextNotifMsg{}
		})

		log.Debug().Str("activeLabel", active.Label).Msg("game inited")
		m.inited = true
	}

	return m, tea.Batch(cmds...)
}
