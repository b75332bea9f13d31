package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/they4kman/gomemory/game"
)

// play runs an interactive game, reading "column row" moves from in
func play(in io.Reader, out io.Writer, model *game.Model) {
	scanner := bufio.NewScanner(in)

	printBoard(out, model, nil)
	printPrompt(out, model)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			printPrompt(out, model)
			continue
		case "q", "quit":
			return
		case "r", "reset":
			model.Reset()
			fmt.Fprintln(out, "new game")
			printBoard(out, model, nil)
			printPrompt(out, model)
			continue
		}

		column, row, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(out, err)
			printPrompt(out, model)
			continue
		}

		revealed := revealedCards(model, game.Coord{Column: column, Row: row})
		result := model.SelectCard(column, row)

		printBoard(out, model, revealed)
		fmt.Fprintf(out, "%s | matches: %d/%d | tries left: %d\n",
			result, model.NumMatches(), model.NumPairs(), model.RemainingTries())

		switch {
		case model.IsCleared():
			fmt.Fprintf(out, "WIN! %d missed tries\n", model.NumMissedTries())
			return
		case model.IsDead():
			fmt.Fprintln(out, "LOSE :(")
			return
		}

		printPrompt(out, model)
	}
}

func parseMove(line string) (int, int, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("enter a move as \"column row\"")
	}

	column, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad column %q", fields[0])
	}
	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad row %q", fields[1])
	}
	return column, row, nil
}

// revealedCards returns the cards face up while coord is being selected: the
// pending first card and coord itself
func revealedCards(model *game.Model, coord game.Coord) map[game.Coord]int {
	cardMap := model.CardMap()
	revealed := make(map[game.Coord]int)

	if pending, ok := model.Pending(); ok {
		revealed[pending] = cardMap[pending.Row][pending.Column]
	}
	if coord.Row >= 0 && coord.Row < len(cardMap) && coord.Column >= 0 && coord.Column < len(cardMap[coord.Row]) {
		revealed[coord] = cardMap[coord.Row][coord.Column]
	}
	return revealed
}

// printBoard draws the board with every card face down except revealed ones.
// Matched cards are drawn as "." and face-down cards as "#".
func printBoard(out io.Writer, model *game.Model, revealed map[game.Coord]int) {
	cardMap := model.CardMap()

	var board strings.Builder
	board.WriteString("   ")
	for x := 0; x < model.Width(); x++ {
		fmt.Fprintf(&board, "%3d", x)
	}
	board.WriteString("\n")

	for y, row := range cardMap {
		fmt.Fprintf(&board, "%3d", y)
		for x, value := range row {
			coord := game.Coord{Column: x, Row: y}
			face, isRevealed := revealed[coord]

			switch {
			case value == game.Matched && !isRevealed:
				board.WriteString("  .")
			case isRevealed:
				fmt.Fprintf(&board, "%3d", face)
			default:
				board.WriteString("  #")
			}
		}
		board.WriteString("\n")
	}

	fmt.Fprint(out, board.String())
}

func printPrompt(out io.Writer, model *game.Model) {
	if pending, ok := model.Pending(); ok {
		fmt.Fprintf(out, "second card (first is %d %d)> ", pending.Column, pending.Row)
		return
	}
	fmt.Fprint(out, "first card> ")
}

func printAutoplayResult(out io.Writer, result game.AutoplayResult) {
	var outcome string
	switch {
	case result.Cleared:
		outcome = "WIN!"
	case result.Dead:
		outcome = "LOSE :("
	case result.Stalled:
		outcome = "stalled"
	default:
		outcome = "stopped"
	}

	fmt.Fprintf(out, "%s after %d selections: %d matches, %d misses\n",
		outcome, result.Steps, result.Matches, result.Misses)
}
