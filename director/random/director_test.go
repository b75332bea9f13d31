package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gomemory/game"
)

func TestDirectorOnlySelectsCardsInPlay(t *testing.T) {
	model, err := game.NewModel(4, 3, 100, game.WithSeed(7))
	require.NoError(t, err)

	director := &Director{}
	director.Init(model)

	for i := 0; i < 200 && !model.IsCleared() && !model.IsDead(); i++ {
		coord := director.Act()
		result := model.SelectCard(coord.Column, coord.Row)
		assert.NotEqual(t, game.Error, result)
		assert.NotEqual(t, game.Unselectable, result)
		assert.NotEqual(t, game.FirstCardDeselected, result)
	}
}

func TestAutoplayEndsGame(t *testing.T) {
	model, err := game.NewModel(4, 4, 2, game.WithSeed(11))
	require.NoError(t, err)

	result := game.Autoplay(model, &Director{}, 0)

	assert.True(t, result.Dead || result.Cleared)
	assert.Equal(t, model.NumMatches(), result.Matches)
	assert.Equal(t, model.NumMissedTries(), result.Misses)
}

func TestSelectableExcludesMatchedAndPending(t *testing.T) {
	snapshot := &game.BoardSnapshot{Seed: 4, Tries: 2, RemainingTries: 2, Matches: 1, SerializedBoard: ". 2 1\n2 . 1"}
	model, err := snapshot.CreateModel()
	require.NoError(t, err)

	director := &Director{}
	director.Init(model)
	assert.Equal(t, []game.Coord{{Column: 1, Row: 0}, {Column: 2, Row: 0}, {Column: 0, Row: 1}, {Column: 2, Row: 1}}, director.selectable())

	require.Equal(t, game.FirstCardSelected, model.SelectCard(2, 0))
	assert.Equal(t, []game.Coord{{Column: 1, Row: 0}, {Column: 0, Row: 1}, {Column: 2, Row: 1}}, director.selectable())
}
