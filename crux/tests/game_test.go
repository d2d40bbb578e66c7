package tests

import (
	"slices"
	"testing"

	"github.com/nathanieltooley/topout/crux"
)

func TestActivePlayerWinsByClimbing(t *testing.T) {
	state := seededState(3, 5)
	activeLabel := state.ActivePlayer().Label
	gridSize := state.Config.GridSize

	// one row per turn from the bottom row reaches the top in exactly
	// gridSize-1 moves
	for i := range gridSize - 1 {
		if state.GameOver() {
			t.Fatalf("game over after only %d moves", i)
		}

		result := resolve(&state, crux.NewMoveAction(&state, 1))

		if i < gridSize-2 && result.Kind != crux.RESULT_RESOLVED {
			t.Fatalf("move %d resolved with kind %d", i, result.Kind)
		}

		if i == gridSize-2 {
			if result.Kind != crux.RESULT_GAMEOVER {
				t.Fatalf("final move resolved with kind %d, expected game over", result.Kind)
			}
			if result.WinnerLabel != activeLabel {
				t.Fatalf("winner %q, expected active climber %q", result.WinnerLabel, activeLabel)
			}
		}
	}

	if state.Winner != activeLabel {
		t.Fatalf("state winner %q, expected %q", state.Winner, activeLabel)
	}

	// the wall is frozen now
	frozen := state.Clone()
	resolve(&state, crux.NewMoveAction(&state, 2))
	if !slices.Equal(state.Players, frozen.Players) {
		t.Fatal("roster changed after the game ended")
	}
}

func TestPickupThenShoot(t *testing.T) {
	state := seededState(11, 17)

	// drop a power-up straight above the active climber and walk onto it
	active := state.ActivePlayer()
	state.PowerUps[0] = crux.Position{Row: active.Pos.Row - 2, Col: active.Pos.Col}

	resolve(&state, crux.NewMoveAction(&state, 2))

	if !state.HasPowerUp {
		t.Fatal("active climber not armed after landing on the power-up")
	}

	// shoot an NPC off the wall
	target := state.Players[len(state.Players)-1].Label
	rosterBefore := len(state.Players)

	resolve(&state, crux.NewShootAction(&state, target))

	if len(state.Players) != rosterBefore-1 {
		t.Fatalf("roster size %d after the shot, expected %d", len(state.Players), rosterBefore-1)
	}
	if state.PlayerIndexByLabel(target) != -1 {
		t.Fatalf("climber %s survived the shot", target)
	}
	if state.HasPowerUp {
		t.Fatal("power-up survived the shot")
	}
}

func TestRowsOnlyDecrease(t *testing.T) {
	state := seededState(23, 29)

	for range 30 {
		rowsBefore := make([]int, len(state.Players))
		for i, player := range state.Players {
			rowsBefore[i] = player.Pos.Row
		}

		result := resolve(&state, crux.NewMoveAction(&state, 1))

		for i, player := range state.Players {
			if player.Pos.Row > rowsBefore[i] {
				t.Fatalf("climber %s moved down the wall: %d -> %d", player.Label, rowsBefore[i], player.Pos.Row)
			}
			if player.Pos.Row < 0 {
				t.Fatalf("climber %s climbed off the grid: %d", player.Label, player.Pos.Row)
			}
		}

		if result.Kind == crux.RESULT_GAMEOVER {
			return
		}
	}

	t.Fatal("active climber never topped out in 30 moves")
}

func TestSeededGamesReplayIdentically(t *testing.T) {
	a := seededState(41, 43)
	b := seededState(41, 43)

	for range 5 {
		resolve(&a, crux.NewMoveAction(&a, 2))
		resolve(&b, crux.NewMoveAction(&b, 2))
	}

	if !slices.Equal(a.Players, b.Players) {
		t.Fatalf("replay diverged:\n%+v\n%+v", a.Players, b.Players)
	}
	if a.HasPowerUp != b.HasPowerUp || !slices.Equal(a.PowerUps, b.PowerUps) {
		t.Fatal("replay diverged on power-up state")
	}
}
