package crux

type Action interface {
	UpdateState(GameState) []StateEvent

	GetCtx() ActionCtx
}

type ActionCtx struct {
	PlayerIndex int
}

func NewActionCtx(playerIndex int) ActionCtx {
	return ActionCtx{PlayerIndex: playerIndex}
}

// MoveAction advances the active climber 1 or 2 rows up the wall
type MoveAction struct {
	Ctx ActionCtx

	RowDelta int
}

func NewMoveAction(state *GameState, rowDelta int) MoveAction {
	return MoveAction{
		Ctx:      NewActionCtx(state.ActiveIndex),
		RowDelta: rowDelta,
	}
}

func (a MoveAction) UpdateState(state GameState) []StateEvent {
	return []StateEvent{ClimbEvent{PlayerIndex: a.Ctx.PlayerIndex, RowDelta: a.RowDelta}}
}

func (a MoveAction) GetCtx() ActionCtx {
	return a.Ctx
}

// ShootAction spends the active climber's power-up to knock another climber
// off the wall. The UI only offers it while HasPowerUp is set, the engine
// itself doesn't check
type ShootAction struct {
	Ctx ActionCtx

	TargetLabel string
}

func NewShootAction(state *GameState, targetLabel string) ShootAction {
	return ShootAction{
		Ctx:         NewActionCtx(state.ActiveIndex),
		TargetLabel: targetLabel,
	}
}

func (a ShootAction) UpdateState(state GameState) []StateEvent {
	return []StateEvent{KnockOffEvent{TargetLabel: a.TargetLabel}}
}

func (a ShootAction) GetCtx() ActionCtx {
	return a.Ctx
}
