package crux

import (
	"math/rand/v2"
	"testing"
)

// testState is a small hand-built roster so positions and labels are known
// without depending on shuffle order. Indices 0 and 1 are human slots.
func testState() GameState {
	return GameState{
		Players: []Player{
			{Pos: Position{Row: 9, Col: 0}, Label: "1", Avatar: "@"},
			{Pos: Position{Row: 9, Col: 1}, Label: "2", Avatar: "&"},
			{Pos: Position{Row: 9, Col: 2}, Label: "3", Avatar: "%"},
			{Pos: Position{Row: 9, Col: 3}, Label: "4", Avatar: "#"},
		},
		ActiveIndex: 0,
		PowerUps:    []Position{{Row: 5, Col: 0}, {Row: 5, Col: 7}},
		Config:      Config{GridSize: 10, TotalPlayers: 4, HumanPlayers: 2, PowerUpCount: 2},
		RngSource:   *rand.NewPCG(1, 2),
	}
}

func applyAction(state *GameState, action Action) {
	ApplyEventsToState(state, TurnResult{Kind: RESULT_RESOLVED, Events: action.UpdateState(*state)})
}

func TestClimbMovesActiveOnly(t *testing.T) {
	state := testState()
	state.Players[0].Pos.Row = 5

	applyAction(&state, NewMoveAction(&state, 2))

	if state.Players[0].Pos.Row != 3 {
		t.Fatalf("active climber at row %d, expected 3", state.Players[0].Pos.Row)
	}
	if state.Players[0].Pos.Col != 0 {
		t.Fatalf("active climber changed column to %d", state.Players[0].Pos.Col)
	}

	// the other human slot holds still
	if state.Players[1].Pos.Row != 9 {
		t.Fatalf("idle human climber moved to row %d", state.Players[1].Pos.Row)
	}

	// NPCs wander 1 or 2 rows up
	for i := 2; i < len(state.Players); i++ {
		step := 9 - state.Players[i].Pos.Row
		if step != 1 && step != 2 {
			t.Fatalf("npc %s stepped %d rows", state.Players[i].Label, step)
		}
	}
}

func TestClimbWinPrecedence(t *testing.T) {
	state := testState()
	state.Players[0].Pos.Row = 1
	// a power-up on the landing cell must not be picked up on a winning move
	state.PowerUps = append(state.PowerUps, Position{Row: 0, Col: 0})

	applyAction(&state, NewMoveAction(&state, 2))

	if state.Winner != "1" {
		t.Fatalf("winner is %q, expected climber 1", state.Winner)
	}
	if state.HasPowerUp {
		t.Fatal("winning move still picked up a power-up")
	}
	if len(state.PowerUps) != 3 {
		t.Fatalf("power-ups touched on the winning move: %+v", state.PowerUps)
	}

	// NPCs don't move on the winning turn
	for i := 2; i < len(state.Players); i++ {
		if state.Players[i].Pos.Row != 9 {
			t.Fatalf("npc %s moved on the winning turn", state.Players[i].Label)
		}
	}
}

func TestClimbExactlyOntoTopWins(t *testing.T) {
	state := testState()
	state.Players[0].Pos.Row = 1

	applyAction(&state, NewMoveAction(&state, 1))

	if state.Winner != "1" {
		t.Fatalf("landing on row 0 did not win: winner=%q", state.Winner)
	}
}

func TestPickupRemovesPowerUpOnce(t *testing.T) {
	state := testState()
	state.Players[0].Pos.Row = 7

	// 7 -> 5 lands on the power-up at {5, 0}
	applyAction(&state, NewMoveAction(&state, 2))

	if !state.HasPowerUp {
		t.Fatal("landing on a power-up did not arm the climber")
	}
	if len(state.PowerUps) != 1 {
		t.Fatalf("expected 1 power-up left, got %d", len(state.PowerUps))
	}
	if state.PowerUpAt(Position{Row: 5, Col: 0}) {
		t.Fatal("picked up power-up still on the wall")
	}

	// stepping off and back onto the cell finds nothing
	state.Players[0].Pos.Row = 7
	state.HasPowerUp = false
	applyAction(&state, NewMoveAction(&state, 2))

	if state.HasPowerUp {
		t.Fatal("power-up reappeared after pickup")
	}
}

func TestKnockOffRemovesTarget(t *testing.T) {
	state := testState()
	state.HasPowerUp = true

	applyAction(&state, NewShootAction(&state, "3"))

	if len(state.Players) != 3 {
		t.Fatalf("roster size %d after elimination, expected 3", len(state.Players))
	}
	if state.PlayerIndexByLabel("3") != -1 {
		t.Fatal("eliminated climber still on the roster")
	}
	if state.HasPowerUp {
		t.Fatal("power-up not spent by the shot")
	}
}

func TestKnockOffActiveIndexAdjustment(t *testing.T) {
	t.Run("target before active decrements", func(t *testing.T) {
		state := testState()
		state.ActiveIndex = 1
		state.HasPowerUp = true

		applyAction(&state, NewShootAction(&state, "1"))

		if state.ActiveIndex != 0 {
			t.Fatalf("active index %d, expected 0", state.ActiveIndex)
		}
		if state.ActivePlayer().Label != "2" {
			t.Fatalf("active climber is %s, expected 2", state.ActivePlayer().Label)
		}
	})

	t.Run("target after active leaves index alone", func(t *testing.T) {
		state := testState()
		state.HasPowerUp = true

		applyAction(&state, NewShootAction(&state, "3"))

		if state.ActiveIndex != 0 {
			t.Fatalf("active index %d, expected 0", state.ActiveIndex)
		}
	})

	t.Run("last roster element wraps to zero", func(t *testing.T) {
		state := testState()
		state.ActiveIndex = 1
		state.HasPowerUp = true

		applyAction(&state, NewShootAction(&state, "4"))

		if state.ActiveIndex != 0 {
			t.Fatalf("active index %d, expected wrap to 0", state.ActiveIndex)
		}
	})
}

func TestKnockOffIgnoresSelfAndUnknown(t *testing.T) {
	for _, target := range []string{"1", "99"} {
		state := testState()
		state.HasPowerUp = true

		applyAction(&state, NewShootAction(&state, target))

		if len(state.Players) != 4 {
			t.Fatalf("shooting %q changed the roster", target)
		}
		if !state.HasPowerUp {
			t.Fatalf("shooting %q spent the power-up", target)
		}
		if state.ActiveIndex != 0 {
			t.Fatalf("shooting %q moved the active index", target)
		}
	}
}

func TestTerminalStateSwallowsActions(t *testing.T) {
	state := testState()
	state.Winner = "2"
	before := state.Clone()

	moveResult := ProcessTurn(&state, NewMoveAction(&state, 2))
	shootResult := ProcessTurn(&state, NewShootAction(&state, "3"))

	if len(moveResult.Events) != 0 || len(shootResult.Events) != 0 {
		t.Fatal("terminal state produced events")
	}
	if state.Turn != before.Turn {
		t.Fatal("terminal state advanced the turn counter")
	}
	for i := range state.Players {
		if state.Players[i] != before.Players[i] {
			t.Fatalf("terminal state mutated climber %s", before.Players[i].Label)
		}
	}
}

func TestProcessTurnReportsGameOver(t *testing.T) {
	state := testState()
	state.Players[0].Pos.Row = 2

	result := ProcessTurn(&state, NewMoveAction(&state, 2))

	if result.Kind != RESULT_GAMEOVER {
		t.Fatalf("result kind %d, expected RESULT_GAMEOVER", result.Kind)
	}
	if result.WinnerLabel != "1" {
		t.Fatalf("winner label %q, expected 1", result.WinnerLabel)
	}

	// ProcessTurn only played the turn out on a clone
	if state.GameOver() {
		t.Fatal("ProcessTurn mutated the real state")
	}

	ApplyEventsToState(&state, result)
	if state.Winner != "1" {
		t.Fatalf("winner %q after applying events, expected 1", state.Winner)
	}
}
