package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// State of a session.
type State int

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "game_over"
	}
	return "running"
}

// Options carry host-side collaborators that are not simulation parameters.
type Options struct {
	Seed   uint64 // 0 = time-based
	Logger *slog.Logger
}

// Game is the simulation core. It owns the snake, the apple and the score of the
// current session and is driven by a single caller; it is not safe for concurrent use.
type Game struct {
	settings     Settings
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *manager.CollisionManager
	sampler      *manager.AppleSampler
	logger       *slog.Logger

	sessionID string
	startTime time.Time
	snake     *entity.Snake
	apple     types.GridPosition
	hasApple  bool
	score     int
	state     State
	current   types.Direction
	pending   types.Direction
	turnTaken bool
	ticks     int

	placementWarned bool
}

// NewGame validates settings and starts the first session.
func NewGame(settings Settings, opts Options) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	grid := settings.Grid()
	rng := rand.New(rand.NewSource(seed))
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		settings:     settings,
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		sampler:      manager.NewAppleSampler(grid, collisionMgr, rng, settings.MinAppleDistance, settings.MaxPlacementAttempts),
		logger:       logger,
	}
	g.newSession()
	return g, nil
}

func (g *Game) newSession() {
	g.sessionID = uuid.New().String()
	g.startTime = time.Now()
	g.snake = entity.NewSnake(g.settings.StartPosition(), g.settings.InitialDirection, g.settings.InitialLength)
	g.hasApple = false
	g.score = 0
	g.state = Running
	g.current = g.settings.InitialDirection
	g.pending = g.settings.InitialDirection
	g.turnTaken = false
	g.ticks = 0
	g.placementWarned = false

	g.placeApple()

	g.logger.Info("session started",
		"session", g.sessionID,
		"grid", fmt.Sprintf("%dx%d", g.grid.Width, g.grid.Height),
		"head", g.snake.GetHead().String(),
		"length", g.snake.Len(),
	)
}

// placeApple samples a new apple and returns a PlacementFailed event when none fits.
// reserved cells are kept free in addition to the snake body.
func (g *Game) placeApple(reserved ...types.GridPosition) Event {
	p, err := g.sampler.Sample(g.snake, reserved...)
	if err != nil {
		g.hasApple = false
		if !g.placementWarned {
			g.logger.Warn("apple placement failed", "session", g.sessionID, "length", g.snake.Len(), "error", err)
			g.placementWarned = true
		}
		return PlacementFailed{Err: err}
	}
	g.apple = p
	g.hasApple = true
	g.placementWarned = false
	return nil
}

// SetDirection queues a heading for the next tick. Reversals, repeats of the
// current heading and any second turn within one tick are ignored.
func (g *Game) SetDirection(d types.Direction) bool {
	if g.state != Running || g.turnTaken || !d.Valid() {
		return false
	}
	if d == g.current || d.IsReverseOf(g.current) {
		return false
	}
	g.pending = d
	g.turnTaken = true
	return true
}

// Tick advances the session by one step.
func (g *Game) Tick() ([]Event, error) {
	if g.state != Running {
		return nil, fmt.Errorf("tick: %w", ErrInvalidTransition)
	}

	g.current = g.pending
	g.turnTaken = false
	g.ticks++

	candidate := g.snake.GetHead().Add(g.current)
	if cause := g.collisionMgr.CheckCollision(candidate, g.snake); cause != types.NoCollision {
		return []Event{g.endSession(cause, candidate)}, nil
	}

	var events []Event
	appleMissing := !g.hasApple
	if g.hasApple && candidate.Distance(g.apple) < g.settings.EatThreshold {
		eaten := g.apple
		g.hasApple = false
		g.snake.Grow(g.settings.GrowthPerApple)
		g.score++
		events = append(events, AppleEaten{Position: eaten, Score: g.score, Length: g.snake.Len()})
		// The body has not advanced yet, so candidate is not occupied.
		if ev := g.placeApple(candidate); ev != nil {
			events = append(events, ev)
		}
	}

	g.snake.Advance(candidate)

	if appleMissing {
		if ev := g.placeApple(); ev != nil {
			events = append(events, ev)
		}
	}

	return append(events, TickCompleted{Snapshot: g.Snapshot()}), nil
}

func (g *Game) endSession(cause types.CollisionType, candidate types.GridPosition) GameOver {
	g.state = Over
	ev := GameOver{
		Cause:     cause,
		Candidate: candidate,
		Summary:   g.summary(cause),
		Snapshot:  g.Snapshot(),
	}
	g.logger.Info("game over", "event", ev)
	return ev
}

func (g *Game) summary(cause types.CollisionType) manager.SessionSummary {
	return manager.SessionSummary{
		SessionID: g.sessionID,
		Score:     g.score,
		Length:    g.snake.Len(),
		Ticks:     g.ticks,
		Cause:     cause.String(),
		StartTime: g.startTime,
		EndTime:   time.Now(),
	}
}

// Reset starts a fresh session. It is valid after game over or before the first tick.
func (g *Game) Reset() (Snapshot, error) {
	if g.state == Running && g.ticks > 0 {
		return Snapshot{}, fmt.Errorf("reset: %w", ErrInvalidTransition)
	}
	g.newSession()
	return g.Snapshot(), nil
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		SessionID: g.sessionID,
		Segments:  g.snake.Segments(),
		Score:     g.score,
		Alive:     g.state == Running,
		Direction: g.current,
		Ticks:     g.ticks,
	}
	if g.hasApple {
		apple := g.apple
		s.Apple = &apple
	}
	return s
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) SessionID() string {
	return g.sessionID
}

func (g *Game) Settings() Settings {
	return g.settings
}

// Apple returns the apple cell and whether one is on the board.
func (g *Game) Apple() (types.GridPosition, bool) {
	return g.apple, g.hasApple
}

// IsNoPlacement reports whether err is the sampler's no-placement condition.
func IsNoPlacement(err error) bool {
	return errors.Is(err, manager.ErrNoValidPlacement)
}
