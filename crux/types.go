package crux

import (
	"math/rand/v2"
	"slices"
)

// Config holds the game rules that are fixed for the lifetime of a GameState.
// Roster indices below HumanPlayers are human-controlled slots, everything
// past them wanders on its own every turn.
type Config struct {
	GridSize     int
	TotalPlayers int
	HumanPlayers int
	PowerUpCount int
}

const (
	DEFAULT_GRID_SIZE     = 10
	DEFAULT_TOTAL_PLAYERS = 10
	DEFAULT_HUMAN_PLAYERS = 3
	DEFAULT_POWER_UPS     = 3
)

func DefaultConfig() Config {
	return Config{
		GridSize:     DEFAULT_GRID_SIZE,
		TotalPlayers: DEFAULT_TOTAL_PLAYERS,
		HumanPlayers: DEFAULT_HUMAN_PLAYERS,
		PowerUpCount: DEFAULT_POWER_UPS,
	}
}

// PowerUpRow is the single row power-ups spawn on
func (c Config) PowerUpRow() int {
	return c.GridSize / 2
}

func (c Config) IsNPC(rosterIndex int) bool {
	return rosterIndex >= c.HumanPlayers
}

type Position struct {
	Row int
	Col int
}

// Player is a climber on the wall. Label is unique within a roster; Avatar is
// an opaque handle the renderer turns into a glyph
type Player struct {
	Pos    Position
	Label  string
	Avatar string
}

type GameState struct {
	Players     []Player
	ActiveIndex int
	// Winner holds the label of the climber that topped out, empty while the
	// game is still going. Once set the state is terminal and ProcessTurn
	// swallows everything
	Winner     string
	PowerUps   []Position
	HasPowerUp bool
	Turn       int
	Config     Config
	// An RngSource is stored here directly instead of inside an instance of rand.Rand
	// so a state can be cloned, replayed and seeded in tests without carrying
	// pointers or interfaces around
	RngSource rand.PCG
}

func (g *GameState) GetPlayer(index int) *Player {
	return &g.Players[index]
}

func (g *GameState) ActivePlayer() *Player {
	return &g.Players[g.ActiveIndex]
}

// PlayerIndexByLabel returns the roster index for a label, or -1
func (g *GameState) PlayerIndexByLabel(label string) int {
	for i, player := range g.Players {
		if player.Label == label {
			return i
		}
	}

	return -1
}

func (g *GameState) PowerUpAt(pos Position) bool {
	return slices.Contains(g.PowerUps, pos)
}

// GameOver returns whether a climber has topped out
func (g *GameState) GameOver() bool {
	return g.Winner != ""
}

// Clone creates a copy of this state, handling new slice creation and allocation
func (g GameState) Clone() GameState {
	newState := g
	newState.Players = slices.Clone(g.Players)
	newState.PowerUps = slices.Clone(g.PowerUps)

	return newState
}

func (g *GameState) CreateRng() *rand.Rand {
	return rand.New(&g.RngSource)
}

func clampRow(row int) int {
	return max(0, row)
}

func clampCol(col int, gridSize int) int {
	return min(max(0, col), gridSize-1)
}
