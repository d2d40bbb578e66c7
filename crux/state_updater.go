package crux

import (
	"fmt"
	"reflect"
)

const (
	RESULT_RESOLVED = iota + 1
	RESULT_GAMEOVER
)

// TurnResult represents the result of one resolved turn. Unlike events,
// TurnResult is a single struct with a tag, Kind, that determines the result.
type TurnResult struct {
	Kind   int
	Events []StateEvent
	// Only set for RESULT_GAMEOVER
	WinnerLabel string
}

// ProcessTurn resolves a single user action into the events that make up the
// turn. The state is only advanced through a clone here; the caller applies
// the returned events to the real state (the UI does it while rendering each
// event's messages, tests use ApplyEventsToState).
//
// A terminal state swallows every action and resolves to an empty result.
func ProcessTurn(gameState *GameState, action Action) TurnResult {
	if gameState.GameOver() {
		internalLogger.WithName("state_updater").V(1).Info("action after game over ignored", "winner_label", gameState.Winner)

		return TurnResult{Kind: RESULT_RESOLVED}
	}

	internalLogger.WithName("state_updater").Info(fmt.Sprintf("======== TURN %d =========", gameState.Turn))
	internalLogger.V(1).Info("Player Action", "player_index", action.GetCtx().PlayerIndex, "action_name", reflect.TypeOf(action).Name())

	events := action.UpdateState(*gameState)

	// play the turn out on a copy to find out how it ends
	clonedState := gameState.Clone()
	ApplyEventsToState(&clonedState, TurnResult{
		Kind:   RESULT_RESOLVED,
		Events: events,
	})

	gameState.Turn++

	if clonedState.GameOver() {
		return TurnResult{
			Kind:        RESULT_GAMEOVER,
			Events:      events,
			WinnerLabel: clonedState.Winner,
		}
	}

	return TurnResult{
		Kind:   RESULT_RESOLVED,
		Events: events,
	}
}

func ApplyEventsToState(gameState *GameState, result TurnResult) {
	eventIter := NewEventIter()
	eventIter.AddEvents(result.Events)

	for {
		_, next := eventIter.Next(gameState)
		if !next {
			break
		}
	}
}
