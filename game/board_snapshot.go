package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

const matchedToken = "."

// BoardSnapshot captures a model's arrangement and counters. Rows of the
// board are newline-separated, cells space-separated, with "." for matched
// cells.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Shuffle         string `yaml:"shuffle,omitempty"`
	Tries           int    `yaml:"tries"`
	RemainingTries  int    `yaml:"remaining"`
	Matches         int    `yaml:"matches"`
	SerializedBoard string `yaml:"board,flow"`
}

func (model *Model) Snapshot() *BoardSnapshot {
	rows := make([]string, len(model.cells))
	for y, row := range model.cells {
		tokens := make([]string, len(row))
		for x, value := range row {
			if value == Matched {
				tokens[x] = matchedToken
			} else {
				tokens[x] = strconv.Itoa(value)
			}
		}
		rows[y] = strings.Join(tokens, " ")
	}

	return &BoardSnapshot{
		Seed:            model.seed,
		Shuffle:         model.shuffle.String(),
		Tries:           model.initialTries,
		RemainingTries:  model.triesRemaining,
		Matches:         model.matches,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (snapshot *BoardSnapshot) parseBoard() ([][]int, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")

	cells := make([][]int, len(rows))
	for y, row := range rows {
		tokens := strings.Fields(row)
		if len(tokens) == 0 {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d is empty", y)
		}
		if y > 0 && len(tokens) != len(cells[0]) {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d has %d cells, expected %d", y, len(tokens), len(cells[0]))
		}

		cells[y] = make([]int, len(tokens))
		for x, token := range tokens {
			if token == matchedToken {
				cells[y][x] = Matched
				continue
			}

			value, err := strconv.Atoi(token)
			if err != nil || value < 1 {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "cell (%d, %d): bad value %q", x, y, token)
			}
			cells[y][x] = value
		}
	}

	return cells, nil
}

// validatePairs checks that every face value on the board lies in
// 1..numPairs and appears exactly twice, and that the matched cells agree
// with the match counter
func (snapshot *BoardSnapshot) validatePairs(cells [][]int) error {
	numPairs := len(cells) * len(cells[0]) / 2
	counts := make(map[int]int)
	numMatched := 0
	for _, row := range cells {
		for _, value := range row {
			if value == Matched {
				numMatched++
			} else {
				counts[value]++
			}
		}
	}

	for value, count := range counts {
		if value > numPairs {
			return errors.Wrapf(ErrInvalidSnapshot, "value %d exceeds %d pairs", value, numPairs)
		}
		if count != 2 {
			return errors.Wrapf(ErrInvalidSnapshot, "value %d appears %d times", value, count)
		}
	}
	if numMatched != snapshot.Matches*2 {
		return errors.Wrapf(ErrInvalidSnapshot, "%d matched cells for %d matches", numMatched, snapshot.Matches)
	}
	if snapshot.RemainingTries > snapshot.Tries {
		return errors.Wrapf(ErrInvalidSnapshot, "%d remaining tries exceeds %d", snapshot.RemainingTries, snapshot.Tries)
	}
	return nil
}

// CreateModel rebuilds a model holding exactly the snapshot's arrangement and
// counters. Later resets shuffle from the snapshot's seed.
func (snapshot *BoardSnapshot) CreateModel(opts ...Option) (*Model, error) {
	cells, err := snapshot.parseBoard()
	if err != nil {
		return nil, err
	}

	config := NewGameConfig()
	config.Height = len(cells)
	config.Width = len(cells[0])
	config.Tries = snapshot.Tries
	config.Seed = snapshot.Seed
	if mode, ok := ParseShuffleMode(snapshot.Shuffle); ok {
		config.Shuffle = mode
	}
	for _, opt := range opts {
		opt(&config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := snapshot.validatePairs(cells); err != nil {
		return nil, err
	}

	model := config.newModel()
	model.cells = cells
	model.triesRemaining = snapshot.RemainingTries
	model.matches = snapshot.Matches
	return model, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "decoding board snapshot")
	}
	return &snapshot, nil
}
