package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/tetris-stack/pkg/console"
	"github.com/huynhanx03/tetris-stack/pkg/exchange"
	"github.com/huynhanx03/tetris-stack/pkg/logger"
	"github.com/huynhanx03/tetris-stack/pkg/piece"
	"github.com/huynhanx03/tetris-stack/pkg/settings"
)

var (
	configPath string
	level      string
	seed       uint64
	verbose    bool
	noPause    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "tetrisstack",
	Short: "Interactive next-pieces queue and reserve stack",
	Long: `tetrisstack runs the piece supply of a falling-block puzzle game:
a queue of upcoming pieces and a small reserve stack, with commands to play,
reserve, use reserved pieces and swap pieces between the two.

Levels:
  - novice:     play, insert
  - adventurer: play, reserve, use
  - master:     play, reserve, use, swap one, swap three`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&level, "level", "l", "", "menu level: novice, adventurer or master")
	flags.Uint64Var(&seed, "seed", 0, "random seed for piece kinds (0 = clock)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVar(&noPause, "no-pause", false, "do not wait for ENTER after each command")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("level", cfg.Game.Level),
		zap.Int("queue_capacity", cfg.Game.QueueCapacity),
		zap.Int("stack_capacity", cfg.Game.StackCapacity),
	)

	engine := exchange.New(cfg.Game, piece.NewRandomSource(cfg.Game.Seed))
	return console.New(engine, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run()
}

// loadConfig reads the config file, if any, and applies explicitly set flags
// on top.
func loadConfig(cmd *cobra.Command) (settings.Config, error) {
	cfg := settings.Default()
	if configPath != "" {
		var err error
		if cfg, err = settings.Load(configPath); err != nil {
			return settings.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		cfg.Game.Level = level
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = seed
	}
	if verbose {
		cfg.Logger.LogLevel = "debug"
	}
	if noPause {
		cfg.Console.Pause = false
	}
	if noColor {
		cfg.Console.Color = false
	}
	return cfg, cfg.Validate()
}
