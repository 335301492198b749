package stats

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	var tally Tally
	assert.Zero(t, tally.WinRate())
	assert.Zero(t, tally.AvgMoves())

	tally.Add(Result{Won: true, Moves: 100})
	tally.Add(Result{Won: false, Moves: 20})
	tally.Add(Result{Won: false, Moves: 30})
	tally.Add(Result{Won: true, Moves: 50})

	assert.Equal(t, Tally{Games: 4, Wins: 2, Moves: 200}, tally)
	assert.InDelta(t, 0.5, tally.WinRate(), 1e-9)
	assert.InDelta(t, 50.0, tally.AvgMoves(), 1e-9)
}

func TestMemoryRecorderPerVariant(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRecorder()

	require.NoError(t, m.Record(ctx, Result{GameID: uuid.New(), Variant: "klondike", Won: true, Moves: 90}))
	require.NoError(t, m.Record(ctx, Result{GameID: uuid.New(), Variant: "klondike", Moves: 40}))
	require.NoError(t, m.Record(ctx, Result{GameID: uuid.New(), Variant: "labellelucie", Moves: 12}))

	k, err := m.Tally(ctx, "klondike")
	require.NoError(t, err)
	assert.Equal(t, Tally{Games: 2, Wins: 1, Moves: 130}, k)

	l, err := m.Tally(ctx, "labellelucie")
	require.NoError(t, err)
	assert.Equal(t, Tally{Games: 1, Moves: 12}, l)

	none, err := m.Tally(ctx, "spider")
	require.NoError(t, err)
	assert.Zero(t, none)

	res := m.Results()
	require.Len(t, res, 3)
	assert.Equal(t, "labellelucie", res[2].Variant)
}

func TestMemoryRecorderConcurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				assert.NoError(t, m.Record(ctx, Result{Variant: "klondike", Won: j%5 == 0, Moves: 1}))
			}
		}(i)
	}
	wg.Wait()

	tally, err := m.Tally(ctx, "klondike")
	require.NoError(t, err)
	assert.Equal(t, Tally{Games: 200, Wins: 40, Moves: 200}, tally)
}

func TestRedisKeys(t *testing.T) {
	r := NewRedisRecorder(nil, "solitaire")
	assert.Equal(t, "solitaire:stats:klondike", r.tallyKey("klondike"))
	assert.Equal(t, "solitaire:results:klondike", r.resultsKey("klondike"))
}

func TestParseTally(t *testing.T) {
	tally, err := parseTally(map[string]string{"games": "12", "wins": "3", "moves": "1400"})
	require.NoError(t, err)
	assert.Equal(t, Tally{Games: 12, Wins: 3, Moves: 1400}, tally)

	tally, err = parseTally(map[string]string{})
	require.NoError(t, err)
	assert.Zero(t, tally)

	_, err = parseTally(map[string]string{"wins": "many"})
	assert.Error(t, err)
}

func TestDialRedisRejectsBadURL(t *testing.T) {
	_, err := DialRedis(context.Background(), "not a url")
	assert.Error(t, err)
}
