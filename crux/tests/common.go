// Package tests contains integration tests that drive whole games through the
// public crux API.
package tests

import (
	"math/rand/v2"

	"github.com/nathanieltooley/topout/crux"
)

func seededState(a, b uint64) crux.GameState {
	return crux.NewState(crux.DefaultConfig(), *rand.NewPCG(a, b))
}

// resolve runs one turn the way the UI does: process the action, then apply
// the resulting events to the real state.
func resolve(state *crux.GameState, action crux.Action) crux.TurnResult {
	result := crux.ProcessTurn(state, action)
	crux.ApplyEventsToState(state, result)

	return result
}
