package crux

import (
	"math/rand/v2"
	"strconv"
)

// avatarTable is the pool of renderer handles assigned to climbers in roster
// order. Labels get shuffled, avatars don't, so the same roster slot always
// looks the same between runs
var avatarTable = []string{"@", "&", "%", "#", "$", "+", "=", "?", "!", "~"}

// NewState creates a fresh game. Every climber starts on the bottom row with a
// distinct column drawn without replacement, labels 1..N are shuffled
// independently of columns, and power-ups land on the middle row with distinct
// random columns. The active climber is picked uniformly among the human slots.
func NewState(cfg Config, seed rand.PCG) GameState {
	state := GameState{
		Players:   make([]Player, 0, cfg.TotalPlayers),
		PowerUps:  make([]Position, 0, cfg.PowerUpCount),
		Config:    cfg,
		RngSource: seed,
	}

	rng := state.CreateRng()

	columns := make([]int, cfg.GridSize)
	for i := range columns {
		columns[i] = i
	}
	rng.Shuffle(len(columns), func(i, j int) {
		columns[i], columns[j] = columns[j], columns[i]
	})

	labels := make([]string, cfg.TotalPlayers)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	rng.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})

	bottomRow := cfg.GridSize - 1
	for i := range cfg.TotalPlayers {
		state.Players = append(state.Players, Player{
			// mod in case someone configures more climbers than columns
			Pos:    Position{Row: bottomRow, Col: columns[i%len(columns)]},
			Label:  labels[i],
			Avatar: avatarTable[i%len(avatarTable)],
		})
	}

	// rejection sampling on duplicate columns
	powerUpRow := cfg.PowerUpRow()
	for len(state.PowerUps) < cfg.PowerUpCount {
		candidate := Position{Row: powerUpRow, Col: rng.IntN(cfg.GridSize)}
		if state.PowerUpAt(candidate) {
			continue
		}

		state.PowerUps = append(state.PowerUps, candidate)
	}

	state.ActiveIndex = rng.IntN(cfg.HumanPlayers)

	internalLogger.WithName("state").Info("new game",
		"total_players", cfg.TotalPlayers,
		"active_label", state.ActivePlayer().Label,
	)

	return state
}
