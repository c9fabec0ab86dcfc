package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxPlayers is the number of spawn slots a stage can define.
const MaxPlayers = 4

// ErrInvalidConfig is returned when a GameConfig fails validation.
var ErrInvalidConfig = errors.New("invalid game config")

// PowerWeights is the relative chance of each power-up kind when the stage
// builder hides one under a soft block.
type PowerWeights struct {
	Bombs int `yaml:"bomb" json:"bomb"`
	Blast int `yaml:"power" json:"power"`
	Speed int `yaml:"speed" json:"speed"`
}

// GameConfig holds every tunable of a match. Countdowns are in ticks except
// BombTTL, which drains by elapsed milliseconds / 10.
type GameConfig struct {
	GridSize int `yaml:"grid_size" json:"grid_size"`
	Width    int `yaml:"width" json:"width"`   // drawing surface, pixels
	Height   int `yaml:"height" json:"height"` // drawing surface, pixels
	Players  int `yaml:"players" json:"players"`

	BombTTL      int `yaml:"bomb_ttl" json:"bomb_ttl"`
	BombChainTTL int `yaml:"bomb_chain_ttl" json:"bomb_chain_ttl"` // cap applied when fire reaches a bomb
	FireTTL      int `yaml:"fire_ttl" json:"fire_ttl"`
	SoftBlockTTL int `yaml:"soft_block_ttl" json:"soft_block_ttl"`
	PowerUpTTL   int `yaml:"power_up_ttl" json:"power_up_ttl"`
	DeathTTL     int `yaml:"death_ttl" json:"death_ttl"`

	InitialBombs int `yaml:"initial_bombs" json:"initial_bombs"`
	MaxBombs     int `yaml:"max_bombs" json:"max_bombs"`
	InitialPower int `yaml:"initial_power" json:"initial_power"`
	MaxPower     int `yaml:"max_power" json:"max_power"`
	InitialSpeed int `yaml:"initial_speed" json:"initial_speed"`
	MaxSpeed     int `yaml:"max_speed" json:"max_speed"`

	SoftBlockRate  float64      `yaml:"soft_block_rate" json:"soft_block_rate"` // 0.0 to 1.0
	PowerUpRate    float64      `yaml:"power_up_rate" json:"power_up_rate"`     // 0.0 to 1.0
	PowerUpWeights PowerWeights `yaml:"power_up_weights" json:"power_up_weights"`

	Seed  int64    `yaml:"seed" json:"seed"` // 0 seeds from the clock
	Stage []string `yaml:"stage" json:"stage"`
}

// DefaultStage is the classic 15x13 arena: a perimeter wall, a checkerboard of
// pillars and the four corner spawns with their escape cells kept clear.
var DefaultStage = []string{
	"###############",
	"#1 ......... 3#",
	"# #.#.#.#.#.# #",
	"#.............#",
	"#.#.#.#.#.#.#.#",
	"#.............#",
	"#.#.#.#.#.#.#.#",
	"#.............#",
	"#.#.#.#.#.#.#.#",
	"#.............#",
	"# #.#.#.#.#.# #",
	"#4 ......... 2#",
	"###############",
}

// DefaultConfig returns the standard four player match on a 900x780 surface.
func DefaultConfig() GameConfig {
	return GameConfig{
		GridSize: 60,
		Width:    900,
		Height:   780,
		Players:  MaxPlayers,

		BombTTL:      300,
		BombChainTTL: 5,
		FireTTL:      20,
		SoftBlockTTL: 30,
		PowerUpTTL:   15,
		DeathTTL:     300,

		InitialBombs: 1,
		MaxBombs:     8,
		InitialPower: 2,
		MaxPower:     8,
		InitialSpeed: 2,
		MaxSpeed:     5,

		SoftBlockRate:  0.7,
		PowerUpRate:    0.3,
		PowerUpWeights: PowerWeights{Bombs: 2, Blast: 2, Speed: 1},

		Stage: append([]string(nil), DefaultStage...),
	}
}

// LoadConfig reads a YAML file layered over DefaultConfig. Keys missing from
// the file keep their default value.
func LoadConfig(path string) (GameConfig, error) {
	config := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate checks the config for values the simulation cannot run with.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.GridSize > 0, "grid_size must be positive, got %d", c.GridSize)
	check(c.Width > 0 && c.Height > 0, "surface must be positive, got %dx%d", c.Width, c.Height)
	check(c.Players >= 1 && c.Players <= MaxPlayers, "players must be 1-%d, got %d", MaxPlayers, c.Players)
	check(c.BombTTL > 0, "bomb_ttl must be positive, got %d", c.BombTTL)
	check(c.BombChainTTL > 0, "bomb_chain_ttl must be positive, got %d", c.BombChainTTL)
	check(c.FireTTL > 0, "fire_ttl must be positive, got %d", c.FireTTL)
	check(c.SoftBlockTTL > c.FireTTL, "soft_block_ttl (%d) must exceed fire_ttl (%d)", c.SoftBlockTTL, c.FireTTL)
	check(c.PowerUpTTL > 0, "power_up_ttl must be positive, got %d", c.PowerUpTTL)
	check(c.DeathTTL >= 0, "death_ttl must not be negative, got %d", c.DeathTTL)
	check(c.InitialBombs >= 1 && c.MaxBombs >= c.InitialBombs, "bombs: initial %d, max %d", c.InitialBombs, c.MaxBombs)
	check(c.InitialPower >= 1 && c.MaxPower >= c.InitialPower, "power: initial %d, max %d", c.InitialPower, c.MaxPower)
	check(c.InitialSpeed >= 1 && c.MaxSpeed >= c.InitialSpeed, "speed: initial %d, max %d", c.InitialSpeed, c.MaxSpeed)
	check(c.SoftBlockRate >= 0 && c.SoftBlockRate <= 1, "soft_block_rate must be within [0,1], got %v", c.SoftBlockRate)
	check(c.PowerUpRate >= 0 && c.PowerUpRate <= 1, "power_up_rate must be within [0,1], got %v", c.PowerUpRate)

	w := c.PowerUpWeights
	check(w.Bombs >= 0 && w.Blast >= 0 && w.Speed >= 0, "power_up_weights must not be negative")
	check(c.PowerUpRate == 0 || w.Bombs+w.Blast+w.Speed > 0, "power_up_weights are all zero")

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
