package recall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gomemory/game"
)

func TestPerfectMemoryClearsBoard(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1234} {
		model, err := game.NewModel(4, 4, 8, game.WithSeed(seed))
		require.NoError(t, err)

		director := &Director{Capacity: model.NumCells()}
		result := game.Autoplay(model, director, 0)

		assert.True(t, result.Cleared, "seed %d", seed)
		assert.False(t, result.Dead, "seed %d", seed)
		assert.LessOrEqual(t, result.Misses, model.NumPairs(), "seed %d", seed)
		assert.Equal(t, 0, director.Remembered(), "seed %d", seed)
	}
}

func TestCompletesRememberedPair(t *testing.T) {
	snapshot := &game.BoardSnapshot{
		Seed:            5,
		Tries:           3,
		RemainingTries:  3,
		SerializedBoard: "1 2\n2 1",
	}
	model, err := snapshot.CreateModel()
	require.NoError(t, err)

	director := &Director{Capacity: 4}
	director.Init(model)
	director.Observe(game.Selection{Value: 1, Coord: game.Coord{Column: 0, Row: 0}}, game.FirstCardSelected)
	director.Observe(game.Selection{Value: 2, Coord: game.Coord{Column: 1, Row: 0}}, game.MatchNotFound)
	director.Observe(game.Selection{Value: 1, Coord: game.Coord{Column: 1, Row: 1}}, game.FirstCardSelected)
	director.Observe(game.Selection{Value: 2, Coord: game.Coord{Column: 0, Row: 1}}, game.MatchNotFound)
	require.Equal(t, 4, director.Remembered())

	first := director.Act()
	require.Equal(t, game.FirstCardSelected, model.SelectCard(first.Column, first.Row))

	second := director.Act()
	assert.Equal(t, game.MatchFound, model.SelectCard(second.Column, second.Row))
}

func TestForgetsOldestBeyondCapacity(t *testing.T) {
	model, err := game.NewModel(4, 2, 3, game.WithSeed(9))
	require.NoError(t, err)

	director := &Director{Capacity: 2}
	director.Init(model)

	for x := 0; x < 4; x++ {
		director.Observe(game.Selection{Value: x + 1, Coord: game.Coord{Column: x, Row: 0}}, game.MatchNotFound)
	}

	assert.Equal(t, 2, director.Remembered())
	_, ok := director.recalled(game.Coord{Column: 0, Row: 0})
	assert.False(t, ok)
	_, ok = director.recalled(game.Coord{Column: 3, Row: 0})
	assert.True(t, ok)
}

func TestDefaultCapacity(t *testing.T) {
	model, err := game.NewModel(2, 2, 1, game.WithSeed(3))
	require.NoError(t, err)

	director := &Director{}
	director.Init(model)
	assert.Equal(t, DefaultCapacity, director.Capacity)
}
