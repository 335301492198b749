// Package stats records the outcome of finished games and keeps win/loss
// tallies per variant.
package stats

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Result is the outcome of one finished game.
type Result struct {
	GameID  uuid.UUID `json:"gameId"`
	Variant string    `json:"variant"`
	Seed    uint64    `json:"seed"`
	Won     bool      `json:"won"`
	Moves   int       `json:"moves"`
	Score   int       `json:"score"`
}

// Tally aggregates results.
type Tally struct {
	Games int `json:"games"`
	Wins  int `json:"wins"`
	Moves int `json:"moves"`
}

// Add folds r into the tally.
func (t *Tally) Add(r Result) {
	t.Games++
	if r.Won {
		t.Wins++
	}
	t.Moves += r.Moves
}

// WinRate returns the fraction of games won, 0 for an empty tally.
func (t Tally) WinRate() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Games)
}

// AvgMoves returns the mean number of moves per game.
func (t Tally) AvgMoves() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.Moves) / float64(t.Games)
}

// Recorder stores results. Implementations are safe for concurrent use.
type Recorder interface {
	Record(ctx context.Context, r Result) error
	Tally(ctx context.Context, variant string) (Tally, error)
}

// MemoryRecorder keeps tallies in process.
type MemoryRecorder struct {
	mu      sync.Mutex
	tallies map[string]Tally
	results []Result
}

// NewMemoryRecorder returns an empty MemoryRecorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{tallies: make(map[string]Tally)}
}

func (m *MemoryRecorder) Record(_ context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.tallies[r.Variant]
	t.Add(r)
	m.tallies[r.Variant] = t
	m.results = append(m.results, r)
	return nil
}

func (m *MemoryRecorder) Tally(_ context.Context, variant string) (Tally, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tallies[variant], nil
}

// Results returns a copy of every recorded result in recording order.
func (m *MemoryRecorder) Results() []Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Result(nil), m.results...)
}
