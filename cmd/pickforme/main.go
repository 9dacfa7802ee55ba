package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/robby/pickforme/internal/config"
	"github.com/robby/pickforme/internal/logging"
	"github.com/robby/pickforme/internal/store"
	"github.com/robby/pickforme/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pickforme [option...]",
		Short: "If you can't, I'll pick for you",
		Long: `pickforme is a terminal picker for everyday dilemmas.

Type your options as cards, hit pick, and after a moment of thinking
it chooses one of them at random.

Options given as arguments (or listed under "options" in the config file)
are added as cards on start.

Configuration:
  ` + config.Path() + `
  Environment variables with the PICKFORME_ prefix (PICKFORME_DELAY=1s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	// Define CLI flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file path (default "+config.Path()+")")
	flags.Duration("delay", config.DefaultDelay, "How long to think before revealing a pick")
	flags.Uint64("seed", 0, "Random seed for reproducible picks (0 = random)")
	flags.String("log-file", "", "Write structured logs to this file")
	flags.String("search-url", config.DefaultSearchURL, "URL used to look up a pick; %s is replaced by the option")

	rootCmd.AddCommand(newRollCmd())
	return rootCmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	s := newStore(cfg, logger, args)
	logger.Info("starting", "options", s.Len(), "delay", cfg.Delay)

	app := tui.NewAppModel(s, cfg, logger)

	// Run Bubble Tea program
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

// setup loads configuration and opens the logger shared by all commands.
func setup(cmd *cobra.Command) (config.Config, *log.Logger, func() error, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.LogFile)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, logger, closeLog, nil
}

// newStore builds a store seeded from cfg and pre-loaded with the
// configured options followed by args.
func newStore(cfg config.Config, logger *log.Logger, args []string) *store.Store {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	s := store.New(rng, store.WithObserver(logging.StoreEvents(logger)))
	for _, text := range cfg.Options {
		s.Add(text)
	}
	for _, text := range args {
		s.Add(text)
	}
	return s
}
