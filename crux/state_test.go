package crux

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestNewStateInvariants(t *testing.T) {
	cfg := DefaultConfig()

	for seed := range uint64(20) {
		state := NewState(cfg, *rand.NewPCG(seed, seed+1))

		if len(state.Players) != cfg.TotalPlayers {
			t.Fatalf("expected %d climbers, got %d", cfg.TotalPlayers, len(state.Players))
		}

		seenCols := make(map[int]bool)
		seenLabels := make(map[string]bool)
		for _, player := range state.Players {
			if player.Pos.Row != cfg.GridSize-1 {
				t.Fatalf("climber %s not on the bottom row: %d", player.Label, player.Pos.Row)
			}

			if seenCols[player.Pos.Col] {
				t.Fatalf("duplicate starting column %d (seed %d)", player.Pos.Col, seed)
			}
			seenCols[player.Pos.Col] = true

			if seenLabels[player.Label] {
				t.Fatalf("duplicate label %s (seed %d)", player.Label, seed)
			}
			seenLabels[player.Label] = true

			if player.Avatar == "" {
				t.Fatalf("climber %s has no avatar", player.Label)
			}
		}

		if len(state.PowerUps) != cfg.PowerUpCount {
			t.Fatalf("expected %d power-ups, got %d", cfg.PowerUpCount, len(state.PowerUps))
		}

		powerUpCols := make(map[int]bool)
		for _, pos := range state.PowerUps {
			if pos.Row != cfg.PowerUpRow() {
				t.Fatalf("power-up off the middle row: %d", pos.Row)
			}

			if powerUpCols[pos.Col] {
				t.Fatalf("duplicate power-up column %d (seed %d)", pos.Col, seed)
			}
			powerUpCols[pos.Col] = true
		}

		if state.ActiveIndex < 0 || state.ActiveIndex >= cfg.HumanPlayers {
			t.Fatalf("active index %d outside human slots", state.ActiveIndex)
		}

		if state.GameOver() {
			t.Fatal("fresh game already has a winner")
		}
	}
}

func TestNewStateSeedDeterminism(t *testing.T) {
	cfg := DefaultConfig()

	a := NewState(cfg, *rand.NewPCG(7, 13))
	b := NewState(cfg, *rand.NewPCG(7, 13))

	if !slices.Equal(a.Players, b.Players) {
		t.Fatalf("same seed produced different rosters:\n%+v\n%+v", a.Players, b.Players)
	}

	if !slices.Equal(a.PowerUps, b.PowerUps) {
		t.Fatalf("same seed produced different power-ups: %+v vs %+v", a.PowerUps, b.PowerUps)
	}

	if a.ActiveIndex != b.ActiveIndex {
		t.Fatalf("same seed produced different active index: %d vs %d", a.ActiveIndex, b.ActiveIndex)
	}
}
