package game

import (
	"time"

	"gridsnake/game/types"
)

// Listener receives the events of a driven game. Implementations must not
// mutate the game from inside a callback.
type Listener interface {
	OnTick(Snapshot)
	OnAppleEaten(AppleEaten)
	OnPlacementFailed(PlacementFailed)
	OnGameOver(GameOver)
}

// Hooks adapts plain functions to Listener; nil fields are skipped.
type Hooks struct {
	Tick            func(Snapshot)
	AppleEaten      func(AppleEaten)
	PlacementFailed func(PlacementFailed)
	GameOver        func(GameOver)
}

func (h Hooks) OnTick(s Snapshot) {
	if h.Tick != nil {
		h.Tick(s)
	}
}

func (h Hooks) OnAppleEaten(e AppleEaten) {
	if h.AppleEaten != nil {
		h.AppleEaten(e)
	}
}

func (h Hooks) OnPlacementFailed(e PlacementFailed) {
	if h.PlacementFailed != nil {
		h.PlacementFailed(e)
	}
}

func (h Hooks) OnGameOver(e GameOver) {
	if h.GameOver != nil {
		h.GameOver(e)
	}
}

// Driver runs a Game on a fixed tick interval fed by frame deltas.
type Driver struct {
	game      *Game
	interval  time.Duration
	timer     time.Duration
	listeners []Listener
}

func NewDriver(g *Game, interval time.Duration, listeners ...Listener) *Driver {
	return &Driver{
		game:      g,
		interval:  interval,
		listeners: listeners,
	}
}

func (d *Driver) AddListener(l Listener) {
	d.listeners = append(d.listeners, l)
}

func (d *Driver) Game() *Game {
	return d.game
}

// Steer forwards a direction press to the game.
func (d *Driver) Steer(dir types.Direction) bool {
	return d.game.SetDirection(dir)
}

// Advance adds dt to the tick timer and ticks once the interval has elapsed.
// The timer restarts from zero after each tick. Nothing happens after game over.
func (d *Driver) Advance(dt time.Duration) error {
	if d.game.State() != Running {
		return nil
	}
	d.timer += dt
	if d.timer < d.interval {
		return nil
	}
	d.timer = 0
	return d.Step()
}

// Step ticks immediately and dispatches the resulting events.
func (d *Driver) Step() error {
	events, err := d.game.Tick()
	if err != nil {
		return err
	}
	d.dispatch(events)
	return nil
}

// Restart resets the game and announces the fresh session with OnTick.
func (d *Driver) Restart() error {
	snap, err := d.game.Reset()
	if err != nil {
		return err
	}
	d.timer = 0
	for _, l := range d.listeners {
		l.OnTick(snap)
	}
	return nil
}

func (d *Driver) dispatch(events []Event) {
	for _, ev := range events {
		for _, l := range d.listeners {
			switch e := ev.(type) {
			case TickCompleted:
				l.OnTick(e.Snapshot)
			case AppleEaten:
				l.OnAppleEaten(e)
			case PlacementFailed:
				l.OnPlacementFailed(e)
			case GameOver:
				l.OnGameOver(e)
			}
		}
	}
}
