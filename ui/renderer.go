package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 50
)

// Layout maps grid cells to screen pixels. North (+Z) points up the screen.
type Layout struct {
	CellSize int32
	OffsetX  int32
	OffsetY  int32
	Grid     types.Grid
}

// NewLayout fits the grid into the screen below the HUD strip.
func NewLayout(grid types.Grid, screenWidth, screenHeight, maxCell int32) Layout {
	availableWidth := screenWidth - borderPadding*2
	availableHeight := screenHeight - borderPadding*3 - hudHeight

	cell := min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height))
	if maxCell > 0 {
		cell = min(cell, maxCell)
	}
	cell = max(cell, 1)

	return Layout{
		CellSize: cell,
		OffsetX:  (screenWidth - cell*int32(grid.Width)) / 2,
		OffsetY:  borderPadding*2 + hudHeight,
		Grid:     grid,
	}
}

// CellOrigin returns the top-left pixel of a cell.
func (l Layout) CellOrigin(p types.GridPosition) (int32, int32) {
	x := l.OffsetX + int32(p.X)*l.CellSize
	y := l.OffsetY + int32(l.Grid.Height-1-p.Z)*l.CellSize
	return x, y
}

func (l Layout) Width() int32 {
	return l.CellSize * int32(l.Grid.Width)
}

func (l Layout) Height() int32 {
	return l.CellSize * int32(l.Grid.Height)
}

// Renderer is the presentation collaborator. It keeps the latest snapshot it was
// handed and draws it every frame.
type Renderer struct {
	layout       Layout
	screenWidth  int32
	screenHeight int32
	maxCell      int32
	scoreboard   *manager.Scoreboard

	snapshot game.Snapshot
	gameOver bool
	cause    types.CollisionType
}

func NewRenderer(grid types.Grid, maxCell int32, scoreboard *manager.Scoreboard, initial game.Snapshot) *Renderer {
	r := &Renderer{
		maxCell:    maxCell,
		scoreboard: scoreboard,
		snapshot:   initial,
		layout:     Layout{Grid: grid},
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.layout = NewLayout(r.layout.Grid, r.screenWidth, r.screenHeight, r.maxCell)
}

func (r *Renderer) OnTick(s game.Snapshot) {
	r.snapshot = s
	r.gameOver = !s.Alive
}

func (r *Renderer) OnAppleEaten(game.AppleEaten) {}

func (r *Renderer) OnPlacementFailed(game.PlacementFailed) {}

func (r *Renderer) OnGameOver(e game.GameOver) {
	r.snapshot = e.Snapshot
	r.gameOver = true
	r.cause = e.Cause
}

// Draw renders one frame and reports whether the restart button was pressed.
func (r *Renderer) Draw() bool {
	if rl.IsWindowResized() {
		r.UpdateDimensions()
	}

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	l := r.layout
	rl.DrawRectangle(l.OffsetX-1, l.OffsetY-1, l.Width()+2, l.Height()+2, rl.DarkGray)
	rl.DrawRectangle(l.OffsetX, l.OffsetY, l.Width(), l.Height(), rl.Color{R: 20, G: 20, B: 20, A: 255})

	if apple := r.snapshot.Apple; apple != nil {
		x, y := l.CellOrigin(*apple)
		rl.DrawRectangle(x, y, l.CellSize, l.CellSize, rl.Red)
	}

	// Tail first so the head is drawn on top of stacked growth segments.
	for i := len(r.snapshot.Segments) - 1; i >= 0; i-- {
		color := rl.Green
		if i == 0 {
			color = rl.Lime
			if r.gameOver {
				color = rl.Maroon
			}
		}
		x, y := l.CellOrigin(r.snapshot.Segments[i])
		rl.DrawRectangle(x+1, y+1, l.CellSize-2, l.CellSize-2, color)
	}

	r.drawHUD()

	if r.gameOver {
		return r.drawGameOver()
	}
	return false
}

func (r *Renderer) drawHUD() {
	fontSize := int32(20)
	x := int32(borderPadding)
	y := int32(borderPadding)

	rl.DrawText(fmt.Sprintf("Count: %d", r.snapshot.Score), x, y, fontSize, rl.White)
	if r.scoreboard != nil {
		stats := fmt.Sprintf("Best: %d  Games: %d  Avg: %.1f  Median: %.0f",
			r.scoreboard.HighScore(), r.scoreboard.GamesPlayed(),
			r.scoreboard.MeanScore(), r.scoreboard.MedianScore())
		rl.DrawText(stats, x, y+fontSize+4, fontSize-4, rl.LightGray)
	}
	if r.snapshot.Apple == nil && !r.gameOver {
		rl.DrawText("no room for an apple", r.screenWidth-200, y, fontSize-4, rl.Orange)
	}
}

func (r *Renderer) drawGameOver() bool {
	const text = "GAME OVER!"
	fontSize := int32(48)
	textWidth := rl.MeasureText(text, fontSize)
	centreX := r.layout.OffsetX + r.layout.Width()/2
	centreY := r.layout.OffsetY + r.layout.Height()/2

	rl.DrawText(text, centreX-textWidth/2, centreY-fontSize, fontSize, rl.Red)
	cause := fmt.Sprintf("hit %s", r.cause)
	rl.DrawText(cause, centreX-rl.MeasureText(cause, 20)/2, centreY+4, 20, rl.LightGray)

	bounds := rl.Rectangle{X: float32(centreX - 60), Y: float32(centreY + 36), Width: 120, Height: 30}
	return gui.Button(bounds, "Restart")
}
