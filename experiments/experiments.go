// Package experiments plays configured agent matchups over many games and
// records the outcomes and search diagnostics as CSV files.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gamesmith/agent"
	"gamesmith/engine"
	"gamesmith/games"
	"gamesmith/searcher"
)

// Run executes every matchup in the config and writes the collected records.
func Run(cfg Config) error {
	factory, err := games.Lookup(cfg.Game)
	if err != nil {
		return err
	}

	writer, err := NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return err
	}
	log.Info().Str("experiment", cfg.Name).Str("dir", writer.Dir()).Msg("starting experiment")

	var gameRecords []GameRecord
	var moveRecords []MoveRecord
	count := 0
	for _, matchup := range cfg.Matchups {
		agents := make(map[string]agent.Agent, len(matchup))
		for i, id := range matchup {
			config, err := cfg.agentByID(id)
			if err != nil {
				return err
			}
			player := factory.Players[i]
			agents[player] = buildAgent(config, player)
		}

		e := engine.New(agents, time.Duration(cfg.Budget))
		log.Info().Ints("matchup", matchup[:]).Int("games", cfg.Games).Msg("starting matchup")

		for i := 0; i < cfg.Games; i++ {
			count++
			start := time.Now()
			winner, records, err := e.Run(factory.New())
			if err != nil {
				return fmt.Errorf("matchup %v game %d: %w", matchup, i+1, err)
			}

			moves := 0
			for _, record := range records {
				moveRecords = append(moveRecords, MoveRecord{Game: count, MoveRecord: record})
				if record.Step > moves {
					moves = record.Step
				}
			}
			gameRecords = append(gameRecords, GameRecord{
				Game:     count,
				Agent1:   matchup[0],
				Agent2:   matchup[1],
				Winner:   winner,
				Moves:    moves,
				Duration: time.Since(start),
			})
		}
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Int("games", len(gameRecords)).Int("moves", len(moveRecords)).Msg("experiment complete")
	return nil
}

func buildAgent(config AgentConfig, player string) agent.Agent {
	name := fmt.Sprintf("%s-%d", config.Kind, config.ID)
	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(name, config.Seed)
	default:
		cSquared := config.CSquared
		if cSquared <= 0 {
			cSquared = searcher.CSquared
		}
		options := []searcher.Option{
			searcher.WithTreePolicy(searcher.UCT(cSquared)),
			searcher.WithMetrics(),
		}
		if config.Seed != 0 {
			options = append(options, searcher.WithSeed(config.Seed))
		}
		return agent.NewMCTSAgent(name, options...)
	}
}
