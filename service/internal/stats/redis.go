package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	fieldGames = "games"
	fieldWins  = "wins"
	fieldMoves = "moves"

	// DefaultHistory is how many recent results are kept per variant.
	DefaultHistory = 1000
)

// RedisRecorder keeps tallies in a Redis hash per variant and the most recent
// results in a capped list.
type RedisRecorder struct {
	client  redis.UniversalClient
	prefix  string
	history int64
}

// NewRedisRecorder uses client with keys under prefix, e.g. "solitaire".
func NewRedisRecorder(client redis.UniversalClient, prefix string) *RedisRecorder {
	return &RedisRecorder{client: client, prefix: prefix, history: DefaultHistory}
}

// DialRedis connects to the server at url ("redis://host:6379/0") and checks
// it answers.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (r *RedisRecorder) tallyKey(variant string) string {
	return fmt.Sprintf("%s:stats:%s", r.prefix, variant)
}

func (r *RedisRecorder) resultsKey(variant string) string {
	return fmt.Sprintf("%s:results:%s", r.prefix, variant)
}

// Record updates the tally and appends res to the history in one transaction.
func (r *RedisRecorder) Record(ctx context.Context, res Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	won := int64(0)
	if res.Won {
		won = 1
	}
	tk, rk := r.tallyKey(res.Variant), r.resultsKey(res.Variant)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, tk, fieldGames, 1)
		pipe.HIncrBy(ctx, tk, fieldWins, won)
		pipe.HIncrBy(ctx, tk, fieldMoves, int64(res.Moves))
		pipe.RPush(ctx, rk, payload)
		pipe.LTrim(ctx, rk, -r.history, -1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record result for %s: %w", res.Variant, err)
	}
	return nil
}

func (r *RedisRecorder) Tally(ctx context.Context, variant string) (Tally, error) {
	fields, err := r.client.HGetAll(ctx, r.tallyKey(variant)).Result()
	if err != nil {
		return Tally{}, fmt.Errorf("read tally for %s: %w", variant, err)
	}
	return parseTally(fields)
}

// Recent returns up to n of the latest results for variant, oldest first.
func (r *RedisRecorder) Recent(ctx context.Context, variant string, n int64) ([]Result, error) {
	raw, err := r.client.LRange(ctx, r.resultsKey(variant), -n, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read results for %s: %w", variant, err)
	}
	out := make([]Result, 0, len(raw))
	for _, s := range raw {
		var res Result
		if err := json.Unmarshal([]byte(s), &res); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		out = append(out, res)
	}
	return out, nil
}

// parseTally reads a tally hash. Missing fields count as zero.
func parseTally(fields map[string]string) (Tally, error) {
	var t Tally
	for name, dst := range map[string]*int{fieldGames: &t.Games, fieldWins: &t.Wins, fieldMoves: &t.Moves} {
		s, ok := fields[name]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Tally{}, fmt.Errorf("tally field %s: %w", name, err)
		}
		*dst = n
	}
	return t, nil
}
