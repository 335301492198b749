// Command solitaire-sim plays a batch of solitaire deals with the greedy
// player and reports the win rate.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/solitaire/service/internal/config"
	"github.com/jason-s-yu/solitaire/service/internal/sim"
	"github.com/jason-s-yu/solitaire/service/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger := cfg.NewLogger()
	log := logrus.NewEntry(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rec stats.Recorder = stats.NewMemoryRecorder()
	if cfg.RedisURL != "" {
		client, err := stats.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("connecting to redis")
		}
		defer client.Close()
		rec = stats.NewRedisRecorder(client, "solitaire")
		log.Info("recording results in redis")
	}

	r := &sim.Runner{
		Variant:  cfg.Variant,
		Games:    cfg.Games,
		Seed:     cfg.Seed,
		Workers:  cfg.Workers,
		MaxMoves: cfg.MaxMoves,
		Recorder: rec,
		Log:      log,
	}
	run, err := r.Run(ctx)
	if err != nil {
		log.WithError(err).Error("simulation stopped early")
	}

	total, terr := rec.Tally(context.Background(), cfg.Variant.Name)
	if terr != nil {
		log.WithError(terr).Warn("reading stored tally")
	}
	log.WithFields(logrus.Fields{
		"variant":     cfg.Variant.Name,
		"games":       run.Games,
		"wins":        run.Wins,
		"win_rate":    run.WinRate(),
		"avg_moves":   run.AvgMoves(),
		"total_games": total.Games,
		"total_wins":  total.Wins,
	}).Info("results")

	if err != nil {
		stop()
		os.Exit(1)
	}
}
