package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomemory/director/random"
	"github.com/they4kman/gomemory/director/recall"
	"github.com/they4kman/gomemory/game"
)

var gameConfig = game.NewGameConfig()

var (
	directorName   string
	recallCapacity int
	maxSteps       int
	snapshotPath   string
	dumpSnapshot   bool
)

var rootCmd = &cobra.Command{
	Use:   "gomemory",
	Short: "Play a game of memory in the terminal",
	Long: `gomemory is a tile-matching memory game: find every pair of
cards before running out of tries.

Run with no arguments to play manually, entering "column row" to turn a card
	gomemory

Use the director flag to make the computer play for you
	gomemory --director recall --memory 6
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(gameConfig.Debug)
		gameConfig.Logger = log

		model, err := createModel(cmd)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"width":  model.Width(),
			"height": model.Height(),
			"tries":  model.InitialTries(),
			"seed":   model.Seed(),
		}).Info("starting game")

		out := cmd.OutOrStdout()
		if directorName != "" {
			director, err := newDirector(directorName)
			if err != nil {
				return err
			}
			result := game.Autoplay(model, director, maxSteps)
			printBoard(out, model, nil)
			printAutoplayResult(out, result)
		} else {
			play(cmd.InOrStdin(), out, model)
		}

		if dumpSnapshot {
			fmt.Fprint(out, model.Snapshot().Serialize())
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// createModel shuffles a new board, or loads one from --snapshot. A snapshot
// fixes the board size and tries, but --seed and --shuffle still apply to
// later resets.
func createModel(cmd *cobra.Command) (*game.Model, error) {
	if snapshotPath == "" {
		return gameConfig.NewModel()
	}

	for _, name := range []string{"width", "height", "tries"} {
		if cmd.Flags().Changed(name) {
			return nil, errors.Errorf("--%s cannot be combined with --snapshot", name)
		}
	}

	opts := []game.Option{game.WithLogger(gameConfig.Logger), game.WithDebug(gameConfig.Debug)}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, game.WithSeed(gameConfig.Seed))
	}
	if cmd.Flags().Changed("shuffle") {
		opts = append(opts, game.WithShuffle(gameConfig.Shuffle))
	}

	in, err := os.ReadFile(snapshotPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return nil, err
	}
	return snapshot.CreateModel(opts...)
}

func newDirector(name string) (game.Director, error) {
	switch name {
	case "random":
		return &random.Director{}, nil
	case "recall":
		return &recall.Director{Capacity: recallCapacity}, nil
	default:
		return nil, errors.Errorf("unknown director %q", name)
	}
}

type shuffleModeValue game.ShuffleMode

func newShuffleModeValue(val game.ShuffleMode, p *game.ShuffleMode) *shuffleModeValue {
	*p = val
	return (*shuffleModeValue)(p)
}

func (modeVal *shuffleModeValue) String() string {
	return game.ShuffleMode(*modeVal).String()
}

func (modeVal *shuffleModeValue) Set(value string) error {
	if mode, isValid := game.ParseShuffleMode(value); isValid {
		*modeVal = shuffleModeValue(mode)
		return nil
	}
	return fmt.Errorf("invalid shuffle mode")
}

func (modeVal *shuffleModeValue) Type() string {
	return "game.ShuffleMode"
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", 4, "Width of game board, in cards")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", 4, "Height of game board, in cards")
	rootCmd.Flags().IntVarP(&gameConfig.Tries, "tries", "t", 8, "Number of mismatches allowed before the game is lost")
	rootCmd.Flags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for card placement (0 picks one from the clock)")
	rootCmd.Flags().Var(newShuffleModeValue(game.ShuffleUniform, &gameConfig.Shuffle), "shuffle", `Card shuffle, controlling the distribution of arrangements.
uniform: every arrangement is equally likely
legacy: the last row and column are never swap targets (biased, for compatibility)`)
	rootCmd.Flags().BoolVarP(&gameConfig.Debug, "debug", "d", false, "Log card arrangements and selections")
	rootCmd.Flags().StringVar(&directorName, "director", "", "Make the computer play (random, recall)")
	rootCmd.Flags().IntVar(&recallCapacity, "memory", recall.DefaultCapacity, "Number of cards the recall director remembers")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Stop the director after this many selections (0 for no limit)")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Load the board from a YAML snapshot instead of shuffling")
	rootCmd.Flags().BoolVar(&dumpSnapshot, "dump", false, "Print a YAML snapshot of the board when the game ends")
}
