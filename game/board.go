package game

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
)

type board struct {
	width, height int // in number of cells
	cells         [][]int
}

func newBoard(width, height int) board {
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	return board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func (board *board) Width() int {
	return board.width
}

func (board *board) Height() int {
	return board.height
}

func (board *board) NumCells() int {
	return board.width * board.height
}

func (board *board) NumPairs() int {
	return board.NumCells() / 2
}

func (board *board) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < board.width && y < board.height
}

// Coords returns every cell coordinate in row-major order
func (board *board) Coords() []Coord {
	coords := make([]Coord, 0, board.NumCells())
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			coords = append(coords, Coord{Column: x, Row: y})
		}
	}
	return coords
}

// fill lays out 1,1,2,2,3,3,... in row-major order
func (board *board) fill() {
	counter := 2
	for y := range board.cells {
		for x := range board.cells[y] {
			board.cells[y][x] = counter / 2
			counter++
		}
	}
}

func (board *board) swap(a, b Coord) {
	board.cells[a.Row][a.Column], board.cells[b.Row][b.Column] =
		board.cells[b.Row][b.Column], board.cells[a.Row][a.Column]
}

func (board *board) shuffle(rng *rand.Rand, mode ShuffleMode) {
	switch mode {
	case ShuffleLegacy:
		board.shuffleLegacy(rng)
	default:
		board.shuffleUniform(rng)
	}
}

func (board *board) shuffleUniform(rng *rand.Rand) {
	width := board.width
	rng.Shuffle(board.NumCells(), func(i, j int) {
		board.swap(
			Coord{Column: i % width, Row: i / width},
			Coord{Column: j % width, Row: j / width},
		)
	})
}

// shuffleLegacy never picks the last row or column as a swap target, so the
// resulting arrangements are not uniformly distributed
func (board *board) shuffleLegacy(rng *rand.Rand) {
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			target := Coord{
				Column: legacyIntn(rng, board.width-1),
				Row:    legacyIntn(rng, board.height-1),
			}
			board.swap(Coord{Column: x, Row: y}, target)
		}
	}
}

// legacyIntn draws from [0, n), yielding 0 when the range is empty
func legacyIntn(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}

func (board *board) copyCells() [][]int {
	cells := make([][]int, len(board.cells))
	for y, row := range board.cells {
		cells[y] = make([]int, len(row))
		copy(cells[y], row)
	}
	return cells
}

func (board *board) writeValues(w io.Writer) error {
	for _, row := range board.cells {
		for _, value := range row {
			if _, err := fmt.Fprintf(w, "%3d,", value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func (board *board) valuesString() string {
	var out strings.Builder
	_ = board.writeValues(&out)
	return out.String()
}
