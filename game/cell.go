package game

import "fmt"

// Coord addresses a cell by column (x) and row (y)
type Coord struct {
	Column, Row int
}

func (coord Coord) String() string {
	return fmt.Sprintf("Cell(%v, %v)", coord.Column, coord.Row)
}

// Selection is a revealed card: its face value and where it sits
type Selection struct {
	Value int
	Coord Coord
}

func (selection Selection) String() string {
	return fmt.Sprintf("%v=%d", selection.Coord, selection.Value)
}
