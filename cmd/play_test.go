package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gomemory/game"
)

const fixture = `
seed: 1
tries: 1
remaining: 1
matches: 0
board: |
  1 2
  2 1
`

func fixtureModel(t *testing.T) *game.Model {
	snapshot, err := game.LoadSnapshot(fixture)
	require.NoError(t, err)
	model, err := snapshot.CreateModel()
	require.NoError(t, err)
	return model
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		line        string
		column, row int
		wantErr     bool
	}{
		{"1 0", 1, 0, false},
		{"3,2", 3, 2, false},
		{" 0 ,  1 ", 0, 1, false},
		{"-1 4", -1, 4, false},
		{"1", 0, 0, true},
		{"a 1", 0, 0, true},
		{"1 b", 0, 0, true},
		{"1 2 3", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			column, row, err := parseMove(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.column, column)
			assert.Equal(t, tt.row, row)
		})
	}
}

func TestPlayWin(t *testing.T) {
	model := fixtureModel(t)
	var out bytes.Buffer

	play(strings.NewReader("0 0\n1 0\n0 0\n1 1\n1 0\n0 1\n"), &out, model)

	assert.True(t, model.IsCleared())
	assert.Contains(t, out.String(), "match not found | matches: 0/2 | tries left: 0")
	assert.Contains(t, out.String(), "match found | matches: 2/2 | tries left: 0")
	assert.Contains(t, out.String(), "WIN! 1 missed tries")
}

func TestPlayLose(t *testing.T) {
	model := fixtureModel(t)
	var out bytes.Buffer

	play(strings.NewReader("0 0\n1 0\n0 0\n1 0\n0 0\n"), &out, model)

	assert.True(t, model.IsDead())
	assert.True(t, strings.HasSuffix(out.String(), "LOSE :(\n"))
}

func TestPlayCommands(t *testing.T) {
	model := fixtureModel(t)
	var out bytes.Buffer

	play(strings.NewReader("nonsense\n\n5 5\n0 0\nr\nq\n0 0\n"), &out, model)

	output := out.String()
	assert.Contains(t, output, "enter a move as \"column row\"")
	assert.Contains(t, output, "error | matches: 0/2")
	assert.Contains(t, output, "second card (first is 0 0)> ")
	assert.Contains(t, output, "new game")
	_, pending := model.Pending()
	assert.False(t, pending)
}

func TestPrintBoard(t *testing.T) {
	model := fixtureModel(t)
	model.SelectCard(0, 0)
	model.SelectCard(1, 1)

	var out bytes.Buffer
	printBoard(&out, model, map[game.Coord]int{{Column: 1, Row: 0}: 2})

	assert.Equal(t, "     0  1\n  0  .  2\n  1  #  .\n", out.String())
}

// runRoot executes the root command and restores every flag to its default
// afterwards
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.Flags().VisitAll(func(flag *pflag.Flag) {
			_ = flag.Value.Set(flag.DefValue)
			flag.Changed = false
		})
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFixture(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0644))
	return path
}

func TestRootCommandDirector(t *testing.T) {
	output, _, err := runRoot(t, "--snapshot", writeFixture(t), "--director", "recall", "--memory", "4", "--dump")
	require.NoError(t, err)

	assert.Contains(t, output, "after")
	assert.Contains(t, output, "board:")
	assert.Contains(t, output, "seed: 1")
}

func TestRootCommandSnapshotKeepsSeedAndShuffle(t *testing.T) {
	output, _, err := runRoot(t, "--snapshot", writeFixture(t), "--director", "recall", "--seed", "9", "--shuffle", "legacy", "--dump")
	require.NoError(t, err)

	assert.Contains(t, output, "seed: 9")
	assert.Contains(t, output, "shuffle: legacy")
}

func TestRootCommandSnapshotRejectsBoardFlags(t *testing.T) {
	path := writeFixture(t)

	for _, flag := range []string{"--width", "--height", "--tries"} {
		t.Run(flag, func(t *testing.T) {
			_, errOutput, err := runRoot(t, "--snapshot", path, "--director", "random", flag, "6")
			require.Error(t, err)
			assert.Contains(t, err.Error(), flag+" cannot be combined with --snapshot")
			// Execute reports the error once, cobra stays quiet
			assert.Empty(t, errOutput)
		})
	}
}

func TestNewDirector(t *testing.T) {
	_, err := newDirector("random")
	assert.NoError(t, err)
	_, err = newDirector("recall")
	assert.NoError(t, err)
	_, err = newDirector("psychic")
	assert.Error(t, err)
}
