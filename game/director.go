package game

type Director interface {
	/**
	 * Initialize the director for a (freshly reset) model
	 */
	Init(*Model)

	/**
	 * Choose the next cell to select
	 */
	Act() Coord
}

// Observer is implemented by directors that want to learn what their
// selections revealed
type Observer interface {
	Observe(selection Selection, result SelectionResult)
}

type AutoplayResult struct {
	Steps   int
	Matches int
	Misses  int
	Dead    bool
	Cleared bool

	// The director stopped resolving turns
	Stalled bool
}

// Autoplay lets the director play model until the game is lost, the board is
// cleared, or maxSteps selections have been made. A non-positive maxSteps
// means no limit.
//
// Play also stops, with Stalled set, once the director has made twice as many
// selections as there are cells without a match or mismatch in between (for
// instance by picking matched or out-of-range cells, or deselecting its own
// first card over and over).
func Autoplay(model *Model, director Director, maxSteps int) AutoplayResult {
	director.Init(model)
	observer, observes := director.(Observer)
	stallLimit := 2 * model.NumCells()

	result := AutoplayResult{}
	idle := 0
	for !model.IsDead() && !model.IsCleared() {
		if maxSteps > 0 && result.Steps >= maxSteps {
			break
		}

		coord := director.Act()
		var value int
		if model.contains(coord.Column, coord.Row) {
			value = model.cells[coord.Row][coord.Column]
		}

		selectionResult := model.SelectCard(coord.Column, coord.Row)
		result.Steps++
		if selectionResult == MatchNotFound {
			result.Misses++
		}

		if observes {
			observer.Observe(Selection{Value: value, Coord: coord}, selectionResult)
		}

		if selectionResult == MatchFound || selectionResult == MatchNotFound {
			idle = 0
			continue
		}
		idle++
		if idle >= stallLimit {
			result.Stalled = true
			break
		}
	}

	result.Matches = model.NumMatches()
	result.Dead = model.IsDead()
	result.Cleared = model.IsCleared()
	return result
}
