package manager

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// SessionSummary describes one finished game session.
type SessionSummary struct {
	SessionID string
	Score     int
	Length    int
	Ticks     int
	Cause     string
	StartTime time.Time
	EndTime   time.Time
}

// Duration is the wall-clock length of the session.
func (s SessionSummary) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Scoreboard keeps in-memory statistics across the sessions of one process.
type Scoreboard struct {
	highScore int
	scores    []float64
	durations []float64
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		scores:    make([]float64, 0),
		durations: make([]float64, 0),
	}
}

// Record adds a finished session.
func (sb *Scoreboard) Record(s SessionSummary) {
	if s.Score > sb.highScore {
		sb.highScore = s.Score
	}
	sb.scores = append(sb.scores, float64(s.Score))
	sb.durations = append(sb.durations, s.Duration().Seconds())
}

func (sb *Scoreboard) HighScore() int {
	return sb.highScore
}

func (sb *Scoreboard) GamesPlayed() int {
	return len(sb.scores)
}

// MeanScore returns 0 before any session is recorded.
func (sb *Scoreboard) MeanScore() float64 {
	if len(sb.scores) == 0 {
		return 0
	}
	return stat.Mean(sb.scores, nil)
}

// MedianScore is the lower median of session scores, 0 before any session is recorded.
func (sb *Scoreboard) MedianScore() float64 {
	if len(sb.scores) == 0 {
		return 0
	}
	sorted := make([]float64, len(sb.scores))
	copy(sorted, sb.scores)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// MeanDuration is the average session length in seconds.
func (sb *Scoreboard) MeanDuration() float64 {
	if len(sb.durations) == 0 {
		return 0
	}
	return stat.Mean(sb.durations, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (sb *Scoreboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("games", sb.GamesPlayed()),
		slog.Int("high_score", sb.HighScore()),
		slog.Float64("mean_score", sb.MeanScore()),
		slog.Float64("median_score", sb.MedianScore()),
		slog.Float64("mean_duration", sb.MeanDuration()),
	)
}
