package game

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Model holds the state of a single memory game: the card grid, the pending
// selection and the try and match counters.
//
// A Model is not safe for concurrent use.
type Model struct {
	board

	initialTries   int
	triesRemaining int
	matches        int

	// nil while no first card is pending
	pending *Selection

	shuffle ShuffleMode
	seed    int64
	rand    *rand.Rand

	debug bool
	log   logrus.FieldLogger
}

// NewModel builds a shuffled width x height game allowing initialTries
// mismatches. width*height must be even.
func NewModel(width, height, initialTries int, opts ...Option) (*Model, error) {
	config := NewGameConfig()
	config.Width = width
	config.Height = height
	config.Tries = initialTries
	for _, opt := range opts {
		opt(&config)
	}
	return config.NewModel()
}

// newModel allocates the model without filling the board
func (config GameConfig) newModel() *Model {
	seed := config.seed()
	return &Model{
		board:          newBoard(config.Width, config.Height),
		initialTries:   config.Tries,
		triesRemaining: config.Tries,
		shuffle:        config.Shuffle,
		seed:           seed,
		rand:           rand.New(rand.NewSource(seed)),
		debug:          config.Debug,
		log:            config.logger(),
	}
}

// Reset restores the counters, clears the pending selection and deals a new
// arrangement of the cards
func (model *Model) Reset() {
	model.triesRemaining = model.initialTries
	model.matches = 0
	model.pending = nil

	model.fill()
	model.board.shuffle(model.rand, model.shuffle)

	if model.debug {
		model.log.WithFields(logrus.Fields{
			"seed":    model.seed,
			"shuffle": model.shuffle.String(),
		}).Debugf("new card arrangement\n%s", model.valuesString())
	}
}

// SelectCard reveals the card at (column, row). The first call of a turn
// holds the card as pending; the second resolves the turn against it.
func (model *Model) SelectCard(column, row int) SelectionResult {
	result := model.selectCard(Coord{Column: column, Row: row})

	if model.debug {
		model.log.WithFields(logrus.Fields{
			"column": column,
			"row":    row,
			"result": result.String(),
			"tries":  model.triesRemaining,
		}).Debug("card selected")
	}

	return result
}

func (model *Model) selectCard(coord Coord) SelectionResult {
	if !model.contains(coord.Column, coord.Row) {
		return Error
	}

	value := model.cells[coord.Row][coord.Column]
	if value == Matched {
		return Unselectable
	}

	if model.pending == nil {
		model.pending = &Selection{Value: value, Coord: coord}
		return FirstCardSelected
	}

	first := *model.pending
	model.pending = nil

	switch {
	case first.Coord == coord:
		return FirstCardDeselected
	case first.Value == value:
		model.matches++
		model.cells[coord.Row][coord.Column] = Matched
		model.cells[first.Coord.Row][first.Coord.Column] = Matched
		return MatchFound
	default:
		model.triesRemaining--
		return MatchNotFound
	}
}

// IsDead reports whether the player has run out of tries. Reaching zero
// remaining tries is not fatal; only the mismatch after that is.
func (model *Model) IsDead() bool {
	return model.triesRemaining < 0
}

// IsCleared reports whether every pair has been matched
func (model *Model) IsCleared() bool {
	return model.matches == model.NumPairs()
}

func (model *Model) NumMatches() int {
	return model.matches
}

func (model *Model) RemainingTries() int {
	return model.triesRemaining
}

func (model *Model) InitialTries() int {
	return model.initialTries
}

func (model *Model) NumMissedTries() int {
	return model.initialTries - model.triesRemaining
}

// Pending returns the coordinate of the first card of the current turn, if any
func (model *Model) Pending() (Coord, bool) {
	if model.pending == nil {
		return Coord{}, false
	}
	return model.pending.Coord, true
}

// Seed returns the seed the model's shuffles were drawn from
func (model *Model) Seed() int64 {
	return model.seed
}

// CardMap returns a copy of the grid, indexed [row][column]. Matched cells
// hold Matched.
func (model *Model) CardMap() [][]int {
	return model.copyCells()
}

// PrintCardValues writes the raw grid to w, for debugging
func (model *Model) PrintCardValues(w io.Writer) error {
	return model.writeValues(w)
}
