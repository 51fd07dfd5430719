package game

import (
	"log/slog"

	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Snapshot is a read-only copy of the session state for presentation.
type Snapshot struct {
	SessionID string
	Segments  []types.GridPosition
	Apple     *types.GridPosition // nil while no apple is on the board
	Score     int
	Alive     bool
	Direction types.Direction
	Ticks     int
}

// Head returns the first segment.
func (s Snapshot) Head() types.GridPosition {
	return s.Segments[0]
}

// Event is emitted by Game.Tick.
type Event interface {
	event()
}

// TickCompleted closes every tick that did not end the game.
type TickCompleted struct {
	Snapshot Snapshot
}

// AppleEaten is emitted when the head reaches the apple.
type AppleEaten struct {
	Position types.GridPosition
	Score    int
	Length   int
}

// PlacementFailed reports that no apple could be placed; the board stays
// apple-less and placement is retried on following ticks.
type PlacementFailed struct {
	Err error
}

// GameOver is emitted once, on the tick the head would collide.
type GameOver struct {
	Cause     types.CollisionType
	Candidate types.GridPosition
	Summary   manager.SessionSummary
	Snapshot  Snapshot
}

func (TickCompleted) event()   {}
func (AppleEaten) event()      {}
func (PlacementFailed) event() {}
func (GameOver) event()        {}

// LogValue implements slog.LogValuer for structured logging.
func (g GameOver) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("session", g.Summary.SessionID),
		slog.String("cause", g.Cause.String()),
		slog.String("candidate", g.Candidate.String()),
		slog.Int("score", g.Summary.Score),
		slog.Int("length", g.Summary.Length),
		slog.Int("ticks", g.Summary.Ticks),
	)
}
