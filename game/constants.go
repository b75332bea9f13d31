package game

import "fmt"

type SelectionResult int
type ShuffleMode int

const (
	FirstCardSelected SelectionResult = iota
	MatchFound
	MatchNotFound
	FirstCardDeselected
	Unselectable
	Error
)

var SelectionResults = []SelectionResult{
	FirstCardSelected,
	MatchFound,
	MatchNotFound,
	FirstCardDeselected,
	Unselectable,
	Error,
}

var selectionResultNames = map[SelectionResult]string{
	FirstCardSelected:   "first card selected",
	MatchFound:          "match found",
	MatchNotFound:       "match not found",
	FirstCardDeselected: "first card deselected",
	Unselectable:        "unselectable",
	Error:               "error",
}

func (result SelectionResult) String() string {
	if name, ok := selectionResultNames[result]; ok {
		return name
	}
	return fmt.Sprintf("SelectionResult(%d)", int(result))
}

// EndsTurn reports whether the result consumed a pending selection
func (result SelectionResult) EndsTurn() bool {
	return result == MatchFound || result == MatchNotFound || result == FirstCardDeselected
}

const (
	// ShuffleUniform is a Fisher-Yates shuffle over every cell
	ShuffleUniform ShuffleMode = iota
	// ShuffleLegacy swaps each cell with a target drawn from all but the last
	// row and column; its arrangements are not uniformly distributed
	ShuffleLegacy
)

var shuffleModeNames = map[ShuffleMode]string{
	ShuffleUniform: "uniform",
	ShuffleLegacy:  "legacy",
}

func (mode ShuffleMode) String() string {
	if name, ok := shuffleModeNames[mode]; ok {
		return name
	}
	return fmt.Sprintf("ShuffleMode(%d)", int(mode))
}

// ParseShuffleMode returns the mode with the given name
func ParseShuffleMode(name string) (ShuffleMode, bool) {
	for mode, modeName := range shuffleModeNames {
		if modeName == name {
			return mode, true
		}
	}
	return ShuffleUniform, false
}

const (
	// Matched marks a cell whose pair has been found
	Matched = -1
)
