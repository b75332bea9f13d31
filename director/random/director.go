package random

import (
	"math/rand"

	"github.com/they4kman/gomemory/game"
	"github.com/they4kman/gomemory/util/collections"
)

// Director selects uniformly among the cells still in play, never
// deselecting its own first card
type Director struct {
	model *game.Model
	rand  *rand.Rand
	cells []game.Coord
}

func (director *Director) Init(model *game.Model) {
	director.model = model
	director.rand = rand.New(rand.NewSource(model.Seed()))
	director.cells = model.Coords()
}

func (director *Director) Act() game.Coord {
	candidates := director.selectable()
	if len(candidates) == 0 {
		return game.Coord{}
	}
	return candidates[director.rand.Intn(len(candidates))]
}

func (director *Director) selectable() []game.Coord {
	cardMap := director.model.CardMap()
	pending, hasPending := director.model.Pending()

	inPlay := collections.NewSet(director.cells...)
	for coord := range inPlay {
		if cardMap[coord.Row][coord.Column] == game.Matched {
			inPlay.Remove(coord)
		}
	}
	if hasPending {
		inPlay.Remove(pending)
	}

	return inPlay.Filter(director.cells)
}
