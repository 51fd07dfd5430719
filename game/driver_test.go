package game

import (
	"testing"
	"time"

	"gridsnake/game/types"
)

type recorder struct {
	ticks    []Snapshot
	eaten    []AppleEaten
	failures []PlacementFailed
	overs    []GameOver
}

func (r *recorder) OnTick(s Snapshot)                   { r.ticks = append(r.ticks, s) }
func (r *recorder) OnAppleEaten(e AppleEaten)           { r.eaten = append(r.eaten, e) }
func (r *recorder) OnPlacementFailed(e PlacementFailed) { r.failures = append(r.failures, e) }
func (r *recorder) OnGameOver(e GameOver)               { r.overs = append(r.overs, e) }

func TestDriverAdvanceWaitsForInterval(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(newTestGame(t, DefaultSettings()), 200*time.Millisecond, rec)

	steps := []struct {
		dt        time.Duration
		wantTicks int
	}{
		{100 * time.Millisecond, 0},
		{90 * time.Millisecond, 0},
		{10 * time.Millisecond, 1},
		{150 * time.Millisecond, 1},
		{50 * time.Millisecond, 2},
		{time.Second, 3},
	}

	for i, st := range steps {
		if err := d.Advance(st.dt); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if len(rec.ticks) != st.wantTicks {
			t.Errorf("step %d: ticks = %d, want %d", i, len(rec.ticks), st.wantTicks)
		}
	}
}

func TestDriverDispatchesGameOverAndRestarts(t *testing.T) {
	s := DefaultSettings()
	s.StartX, s.StartZ = 10, 19
	rec := &recorder{}
	var hookOvers int
	d := NewDriver(newTestGame(t, s), time.Millisecond, rec)
	d.AddListener(Hooks{GameOver: func(GameOver) { hookOvers++ }})

	if err := d.Advance(time.Millisecond); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if len(rec.overs) != 1 || hookOvers != 1 {
		t.Fatalf("game over dispatched %d/%d times, want 1", len(rec.overs), hookOvers)
	}
	if len(rec.ticks) != 0 {
		t.Errorf("no TickCompleted expected on the fatal tick, got %d", len(rec.ticks))
	}

	// Further frames are ignored until restart.
	if err := d.Advance(time.Second); err != nil {
		t.Errorf("Advance after game over: %v", err)
	}
	if err := d.Step(); err == nil {
		t.Error("Step after game over should fail")
	}

	if err := d.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if len(rec.ticks) != 1 || !rec.ticks[0].Alive || rec.ticks[0].Score != 0 {
		t.Errorf("restart should announce a fresh session, got %+v", rec.ticks)
	}
	if d.Game().State() != Running {
		t.Error("game should be running after restart")
	}
}

func TestDriverDispatchesAppleEaten(t *testing.T) {
	g := newTestGame(t, DefaultSettings())
	var eaten []AppleEaten
	d := NewDriver(g, time.Millisecond, Hooks{AppleEaten: func(e AppleEaten) { eaten = append(eaten, e) }})

	if !d.Steer(types.East) {
		t.Fatal("Steer east rejected")
	}
	g.apple, g.hasApple = types.Pos(11, 10), true
	if err := d.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(eaten) != 1 || eaten[0].Length != 8 {
		t.Errorf("eaten = %+v, want one event with length 8", eaten)
	}
}

func TestHooksSkipNil(t *testing.T) {
	var h Hooks
	h.OnTick(Snapshot{})
	h.OnAppleEaten(AppleEaten{})
	h.OnPlacementFailed(PlacementFailed{})
	h.OnGameOver(GameOver{})
}
