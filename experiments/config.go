package experiments

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses from YAML as a time.ParseDuration string, e.g. "250ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// AgentConfig describes one agent under test.
type AgentConfig struct {
	ID       int     `yaml:"id"`
	Kind     string  `yaml:"kind"` // "mcts" or "random"
	CSquared float64 `yaml:"c_squared,omitempty"`
	Seed     uint64  `yaml:"seed,omitempty"`
}

// Config describes one experiment: a set of agent configurations and the
// matchups to play between them.
type Config struct {
	Name     string        `yaml:"name"`
	Game     string        `yaml:"game"`
	Games    int           `yaml:"games"`  // per matchup
	Budget   Duration      `yaml:"budget"` // per move
	OutDir   string        `yaml:"out_dir"`
	Agents   []AgentConfig `yaml:"agents"`
	Matchups [][2]int      `yaml:"matchups"` // pairs of agent config IDs
}

// LoadConfig reads and validates an experiment config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive")
	}
	if c.Budget <= 0 {
		return fmt.Errorf("budget must be positive")
	}
	if len(c.Matchups) == 0 {
		return fmt.Errorf("at least one matchup is required")
	}
	for _, a := range c.Agents {
		if a.Kind != "mcts" && a.Kind != "random" {
			return fmt.Errorf("agent %d has unknown kind %q", a.ID, a.Kind)
		}
	}
	for _, matchup := range c.Matchups {
		for _, id := range matchup {
			if _, err := c.agentByID(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c Config) agentByID(id int) (AgentConfig, error) {
	for _, a := range c.Agents {
		if a.ID == id {
			return a, nil
		}
	}
	return AgentConfig{}, fmt.Errorf("no agent config with id %d", id)
}
