package ui

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
)

// Audio plays the bite and death cues. Missing files leave that cue silent.
type Audio struct {
	device bool
	bite   *rl.Sound
	death  *rl.Sound
}

// NewAudio opens the audio device and loads the cues. With enabled false it returns a silent player.
func NewAudio(enabled bool, bitePath, deathPath string) *Audio {
	a := &Audio{}
	if !enabled {
		return a
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		slog.Warn("audio device unavailable, sound disabled")
		return a
	}
	a.device = true
	a.bite = loadSound(bitePath)
	a.death = loadSound(deathPath)
	return a
}

func loadSound(path string) *rl.Sound {
	if path == "" {
		return nil
	}
	if !rl.FileExists(path) {
		slog.Warn("sound file not found", "path", path)
		return nil
	}
	s := rl.LoadSound(path)
	return &s
}

// Listener wires the cues to game events.
func (a *Audio) Listener() game.Listener {
	return game.Hooks{
		AppleEaten: func(game.AppleEaten) { a.play(a.bite) },
		GameOver:   func(game.GameOver) { a.play(a.death) },
	}
}

func (a *Audio) play(s *rl.Sound) {
	if s != nil {
		rl.PlaySound(*s)
	}
}

// Close unloads the cues and releases the device.
func (a *Audio) Close() {
	if !a.device {
		return
	}
	for _, s := range []*rl.Sound{a.bite, a.death} {
		if s != nil {
			rl.UnloadSound(*s)
		}
	}
	rl.CloseAudioDevice()
}
