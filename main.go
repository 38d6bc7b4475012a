package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gamesmith/agent"
	"gamesmith/display"
	"gamesmith/engine"
	"gamesmith/experiments"
	"gamesmith/games"
	"gamesmith/searcher"
)

var rootCmd = &cobra.Command{
	Use:           "gamesmith",
	Short:         "Play turn-based games between MCTS, random and human agents",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var playFlags struct {
	game    string
	agents  []string
	budget  time.Duration
	games   int
	seed    uint64
	render  bool
	verbose bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run games between two agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(playFlags.verbose)

		factory, err := games.Lookup(playFlags.game)
		if err != nil {
			return err
		}
		if len(playFlags.agents) != len(factory.Players) {
			return fmt.Errorf("game %s needs %d agents, got %d",
				factory.Name, len(factory.Players), len(playFlags.agents))
		}

		agents := make(map[string]agent.Agent, len(factory.Players))
		for i, player := range factory.Players {
			a, err := buildAgent(playFlags.agents[i], player, playFlags.seed+uint64(i))
			if err != nil {
				return err
			}
			agents[player] = a
		}

		options := []engine.Option{}
		if playFlags.render {
			options = append(options, engine.WithDisplay(display.NewConsole(os.Stdout)))
		}
		e := engine.New(agents, playFlags.budget, options...)

		result, err := e.RunMatch(factory.New, playFlags.games)
		if err != nil {
			return err
		}
		for _, player := range factory.Players {
			fmt.Printf("%s (%s): %d wins\n", player, agents[player].Name(), result.Wins[player])
		}
		fmt.Printf("draws: %d\n", result.Draws)
		return nil
	},
}

var experimentFlags struct {
	config  string
	verbose bool
}

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run configured agent matchups and write CSV records",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(experimentFlags.verbose)

		cfg, err := experiments.LoadConfig(experimentFlags.config)
		if err != nil {
			return err
		}
		return experiments.Run(cfg)
	},
}

func buildAgent(kind, player string, seed uint64) (agent.Agent, error) {
	name := fmt.Sprintf("%s-%s", kind, strings.ToLower(player))
	switch kind {
	case "mcts":
		options := []searcher.Option{searcher.WithMetrics()}
		if playFlags.seed != 0 {
			options = append(options, searcher.WithSeed(seed))
		}
		return agent.NewMCTSAgent(name, options...), nil
	case "random":
		return agent.NewRandomAgent(name, seed), nil
	case "human":
		return agent.NewHumanAgent(name, os.Stdin, os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}

func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func init() {
	playCmd.Flags().StringVar(&playFlags.game, "game", "ttt", "game to play (ttt, nested or havannah)")
	playCmd.Flags().StringSliceVar(&playFlags.agents, "agents", []string{"mcts", "random"}, "agent kinds in player order (mcts, random, human)")
	playCmd.Flags().DurationVar(&playFlags.budget, "budget", time.Second, "time budget per move")
	playCmd.Flags().IntVar(&playFlags.games, "games", 1, "number of games to play")
	playCmd.Flags().Uint64Var(&playFlags.seed, "seed", 0, "random seed (0 for time-based)")
	playCmd.Flags().BoolVar(&playFlags.render, "display", false, "render boards to the terminal")
	playCmd.Flags().BoolVar(&playFlags.verbose, "verbose", false, "enable debug logging")

	experimentCmd.Flags().StringVar(&experimentFlags.config, "config", "experiment.yaml", "experiment config file")
	experimentCmd.Flags().BoolVar(&experimentFlags.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(playCmd, experimentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
