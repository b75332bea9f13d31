package recall

import (
	"math/rand"

	"github.com/gammazero/deque"
	"github.com/they4kman/gomemory/game"
	"github.com/they4kman/gomemory/util/collections"
)

const DefaultCapacity = 8

// Director plays like a person with a limited memory: it remembers the faces
// its selections revealed, forgetting the oldest once Capacity is exceeded,
// and completes a pair whenever it remembers both halves.
//
// It only reads which cells are matched from the model; face values are
// learned through Observe.
type Director struct {
	// Number of revealed cells remembered; non-positive means DefaultCapacity
	Capacity int

	model *game.Model
	rand  *rand.Rand
	cells []game.Coord

	// Selections, oldest first
	memory deque.Deque
}

func (director *Director) Init(model *game.Model) {
	director.model = model
	director.rand = rand.New(rand.NewSource(model.Seed()))
	director.cells = model.Coords()
	director.memory = deque.Deque{}

	if director.Capacity <= 0 {
		director.Capacity = DefaultCapacity
	}
}

func (director *Director) Observe(selection game.Selection, result game.SelectionResult) {
	switch result {
	case game.FirstCardSelected, game.MatchNotFound, game.FirstCardDeselected:
		director.remember(selection)
	case game.MatchFound:
		if pending, ok := director.partnerOf(selection); ok {
			director.forget(pending.Coord)
		}
		director.forget(selection.Coord)
	}
}

func (director *Director) Act() game.Coord {
	pending, hasPending := director.model.Pending()

	if !hasPending {
		if first, ok := director.knownPair(); ok {
			return first
		}
		return director.explore(nil)
	}

	if first, ok := director.recalled(pending); ok {
		if partner, ok := director.partnerOf(first); ok {
			return partner.Coord
		}
	}
	return director.explore(&pending)
}

// Remembered returns the number of cells currently remembered
func (director *Director) Remembered() int {
	return director.memory.Len()
}

func (director *Director) remember(selection game.Selection) {
	director.forget(selection.Coord)
	director.memory.PushBack(selection)

	for director.memory.Len() > director.Capacity {
		director.memory.PopFront()
	}
}

func (director *Director) forget(coord game.Coord) {
	for i := director.memory.Len(); i > 0; i-- {
		selection := director.memory.PopFront().(game.Selection)
		if selection.Coord != coord {
			director.memory.PushBack(selection)
		}
	}
}

func (director *Director) recalled(coord game.Coord) (game.Selection, bool) {
	for i := 0; i < director.memory.Len(); i++ {
		selection := director.memory.At(i).(game.Selection)
		if selection.Coord == coord {
			return selection, true
		}
	}
	return game.Selection{}, false
}

// partnerOf finds a remembered, different cell with the same face
func (director *Director) partnerOf(selection game.Selection) (game.Selection, bool) {
	for i := 0; i < director.memory.Len(); i++ {
		other := director.memory.At(i).(game.Selection)
		if other.Value == selection.Value && other.Coord != selection.Coord {
			return other, true
		}
	}
	return game.Selection{}, false
}

func (director *Director) knownPair() (game.Coord, bool) {
	for i := 0; i < director.memory.Len(); i++ {
		selection := director.memory.At(i).(game.Selection)
		if _, ok := director.partnerOf(selection); ok {
			return selection.Coord, true
		}
	}
	return game.Coord{}, false
}

// explore picks a random cell in play, preferring ones not remembered
func (director *Director) explore(exclude *game.Coord) game.Coord {
	cardMap := director.model.CardMap()

	inPlay := collections.NewSet[game.Coord]()
	remembered := collections.NewSet[game.Coord]()
	for _, coord := range director.cells {
		if cardMap[coord.Row][coord.Column] != game.Matched && (exclude == nil || coord != *exclude) {
			inPlay.Add(coord)
		}
	}
	for i := 0; i < director.memory.Len(); i++ {
		remembered.Add(director.memory.At(i).(game.Selection).Coord)
	}

	candidates := inPlay.Difference(remembered).Filter(director.cells)
	if len(candidates) == 0 {
		candidates = inPlay.Filter(director.cells)
	}
	if len(candidates) == 0 {
		return game.Coord{}
	}
	return candidates[director.rand.Intn(len(candidates))]
}
