// Package sim plays batches of games with the automated player and records
// their outcomes.
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jason-s-yu/solitaire/engine"
	"github.com/jason-s-yu/solitaire/engine/agent"
	"github.com/jason-s-yu/solitaire/service/internal/game"
	"github.com/jason-s-yu/solitaire/service/internal/stats"
)

// PolicyFunc creates the player for one game.
type PolicyFunc func() agent.Policy

// Runner plays Games deals of Variant. Game i is shuffled with Seed+i, so a
// batch is reproducible regardless of Workers.
type Runner struct {
	Variant  engine.Variant
	Games    int
	Seed     uint64
	Workers  int // games played at once; <1 means one
	MaxMoves int // per game; <1 means no limit

	Recorder  stats.Recorder // optional
	NewPolicy PolicyFunc     // nil uses the greedy player
	Log       *logrus.Entry
}

// Run plays the batch and returns the tally of this run. It stops at the
// first failing game or when ctx is cancelled; games already finished stay
// recorded.
func (r *Runner) Run(ctx context.Context) (stats.Tally, error) {
	log := r.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("variant", r.Variant.Name)
	if err := r.Variant.Validate(); err != nil {
		return stats.Tally{}, err
	}

	var (
		mu    sync.Mutex
		tally stats.Tally
	)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))
	for i := 0; i < r.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		seed := r.Seed + uint64(i)
		g.Go(func() error {
			res, err := r.playOne(gctx, seed, log)
			if err != nil {
				return err
			}
			if r.Recorder != nil {
				if err := r.Recorder.Record(gctx, res); err != nil {
					return err
				}
			}
			mu.Lock()
			tally.Add(res)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	mu.Lock()
	defer mu.Unlock()
	log.WithFields(logrus.Fields{
		"games":    tally.Games,
		"wins":     tally.Wins,
		"win_rate": fmt.Sprintf("%.3f", tally.WinRate()),
		"elapsed":  time.Since(start).Round(time.Millisecond),
	}).Info("simulation finished")
	if err == nil {
		err = ctx.Err()
	}
	return tally, err
}

// playOne drives one session to its end.
func (r *Runner) playOne(ctx context.Context, seed uint64, log *logrus.Entry) (stats.Result, error) {
	s, err := game.NewSolitaireGame(r.Variant, seed, log)
	if err != nil {
		return stats.Result{}, err
	}
	res := stats.Result{Variant: r.Variant.Name, Seed: seed}
	s.OnGameEnd = func(id uuid.UUID, won bool, moves int) {
		res.GameID = id
		res.Won = won
		res.Moves = moves
		res.Score = s.Engine.Score()
	}

	policy := agent.Policy(agent.NewGreedy())
	if r.NewPolicy != nil {
		policy = r.NewPolicy()
	}

	for !s.GameOver {
		if err := ctx.Err(); err != nil {
			s.Stop()
			return stats.Result{}, err
		}
		if r.MaxMoves > 0 && s.Moves() >= r.MaxMoves {
			s.Stop()
			break
		}
		s.Mu.Lock()
		acts, ok := policy.Next(s.Engine)
		s.Mu.Unlock()
		if !ok {
			s.Stop()
			break
		}
		for _, a := range acts {
			if s.GameOver {
				break
			}
			applied, err := s.Apply(a)
			if err != nil {
				return stats.Result{}, fmt.Errorf("game %d: %s: %w", seed, a, err)
			}
			if !applied {
				return stats.Result{}, fmt.Errorf("game %d: %s was refused", seed, a)
			}
		}
	}
	return res, nil
}
