package crux

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/samber/lo"
)

// StateEvent represents a "single" change in GameState.
//
// StateEvents are separate from Actions in that Events are the low level changes
// of state and Actions represent the higher level moves a user can make that are
// made of Events
type StateEvent interface {
	// Update will update GameState in some way. Follow-up events caused by this update are returned
	// and should be handled DIRECTLY after this state event. The second value is a list of messages to be displayed for the event.
	Update(*GameState) ([]StateEvent, []string)
}

// ClimbEvent moves one climber up the wall. Rows clamp at the top, columns
// clamp to the wall, so a bogus delta can never push anyone out of the grid.
//
// Landing on row 0 wins immediately: no power-up pickup and no NPC movement
// follow that turn. Otherwise a power-up on the landing cell is picked up and
// then the NPCs get their wander step.
type ClimbEvent struct {
	PlayerIndex int
	RowDelta    int
}

func (event ClimbEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	player := gameState.GetPlayer(event.PlayerIndex)

	player.Pos = Position{
		Row: clampRow(player.Pos.Row - event.RowDelta),
		Col: clampCol(player.Pos.Col, gameState.Config.GridSize),
	}

	internalLogger.WithName("climb_event").Info("", "player_label", player.Label, "row", player.Pos.Row)

	messages := []string{fmt.Sprintf("Climber %s moves up %d", player.Label, event.RowDelta)}

	if player.Pos.Row == 0 {
		return []StateEvent{WinEvent{Label: player.Label}}, messages
	}

	followUpEvents := make([]StateEvent, 0)

	if gameState.PowerUpAt(player.Pos) {
		followUpEvents = append(followUpEvents, PickupEvent{Pos: player.Pos})
	}

	followUpEvents = append(followUpEvents, NPCClimbEvent{})

	return followUpEvents, messages
}

// WinEvent freezes the game with the given climber as winner
type WinEvent struct {
	Label string
}

func (event WinEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	gameState.Winner = event.Label

	internalLogger.WithName("win_event").Info("game over", "winner_label", event.Label)

	return nil, []string{fmt.Sprintf("Climber %s topped out!", event.Label)}
}

// PickupEvent removes a power-up from the wall and arms the active climber
type PickupEvent struct {
	Pos Position
}

func (event PickupEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	gameState.PowerUps = lo.Filter(gameState.PowerUps, func(pos Position, _ int) bool {
		return pos != event.Pos
	})
	gameState.HasPowerUp = true

	return nil, []string{"You grabbed a slingshot! Pick a climber to knock off"}
}

// NPCClimbEvent gives every non-human climber a random 1-or-2 row step up,
// clamped at the top. Only the active climber gets win-checked, so an NPC
// sitting on row 0 just stays there.
type NPCClimbEvent struct{}

func (event NPCClimbEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	rng := gameState.CreateRng()

	for i := range gameState.Players {
		if !gameState.Config.IsNPC(i) || i == gameState.ActiveIndex {
			continue
		}

		npc := gameState.GetPlayer(i)
		npc.Pos.Row = clampRow(npc.Pos.Row - (rng.IntN(2) + 1))
	}

	return nil, nil
}

// KnockOffEvent permanently removes the targeted climber from the roster and
// spends the power-up. Targeting yourself or a label that isn't on the wall is
// a silent no-op; the UI never offers either, so the engine just shrugs.
type KnockOffEvent struct {
	TargetLabel string
}

func (event KnockOffEvent) Update(gameState *GameState) ([]StateEvent, []string) {
	if event.TargetLabel == gameState.ActivePlayer().Label {
		internalLogger.WithName("knock_off_event").Info("climber targeted themselves", "target_label", event.TargetLabel)
		return nil, nil
	}

	targetIndex := gameState.PlayerIndexByLabel(event.TargetLabel)
	if targetIndex == -1 {
		internalLogger.WithName("knock_off_event").Info("no climber with target label", "target_label", event.TargetLabel)
		return nil, nil
	}

	lastIndex := len(gameState.Players) - 1
	gameState.Players = slices.Delete(gameState.Players, targetIndex, targetIndex+1)

	// keep the active index pointing at the same climber
	if targetIndex < gameState.ActiveIndex {
		gameState.ActiveIndex--
	}
	if targetIndex == lastIndex {
		gameState.ActiveIndex = 0
	}

	// one power-up, one shot
	gameState.HasPowerUp = false

	internalLogger.WithName("knock_off_event").Info("climber eliminated",
		"target_label", event.TargetLabel,
		"roster_size", len(gameState.Players),
	)

	return nil, []string{fmt.Sprintf("Climber %s was knocked off the wall!", event.TargetLabel)}
}

// MessageEvent is an event that only shows a message. No state updates occur.
type MessageEvent struct {
	Message string
}

func NewMessageEvent(message string) MessageEvent {
	return MessageEvent{Message: message}
}

func (event MessageEvent) Update(_ *GameState) ([]StateEvent, []string) {
	return nil, []string{event.Message}
}

type EventIter struct {
	events []StateEvent
}

func NewEventIter() EventIter {
	return EventIter{make([]StateEvent, 0)}
}

// Next updates state given the top event, adds any follow up events to the front of the queue,
// and returns the messages from that state to be shown to the user. The boolean value is true if
// there are any more events in the queue.
func (iter *EventIter) Next(state *GameState) ([]string, bool) {
	if len(iter.events) == 0 {
		return nil, false
	}

	headEvent := iter.events[0]
	internalLogger.WithName("event_iter").Info("Updating state", "event_name", reflect.TypeOf(headEvent))
	followUpEvents, messages := headEvent.Update(state)

	// pop queue
	iter.events = iter.events[1:len(iter.events)]

	if len(followUpEvents) != 0 {
		// create new queue with follow_up_events prepended to the front
		newQueue := make([]StateEvent, 0, len(iter.events)+len(followUpEvents))
		newQueue = append(newQueue, followUpEvents...)
		newQueue = append(newQueue, iter.events...)

		iter.events = newQueue
	}

	return messages, true
}

func (iter *EventIter) AddEvents(events []StateEvent) {
	iter.events = append(iter.events, events...)
}

func (iter EventIter) Len() int {
	return len(iter.events)
}
