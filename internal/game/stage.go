package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/amalg/go-bomberhuman/internal/geometry"
)

// ErrInvalidStage is returned for a malformed stage template.
var ErrInvalidStage = errors.New("invalid stage")

// Stage template runes.
const (
	cellHard  = '#' // indestructible wall
	cellOpen  = '.' // may receive a soft block and a hidden power-up
	cellClear = ' ' // always left empty
)

// Stage is the initial arena produced from a template.
type Stage struct {
	Blocks   []Block
	PowerUps []PowerUp
	Players  []Player
}

// BuildStage lays out the arena described by config.Stage.
//
// Layout rules:
//   - '#' is a hard block
//   - '.' becomes a soft block with probability SoftBlockRate; a soft block
//     hides a power-up with probability PowerUpRate, kind drawn by weight
//   - ' ' stays empty
//   - '1'-'4' is the spawn cell of that player slot and stays empty
//
// Only the first config.Players slots are spawned.
func BuildStage(config *GameConfig, rng *rand.Rand) (Stage, error) {
	grid := geometry.Grid{Size: config.GridSize}
	rows := config.Stage
	if len(rows) == 0 {
		return Stage{}, fmt.Errorf("%w: empty template", ErrInvalidStage)
	}

	var stage Stage
	spawns := make(map[int]geometry.Point)
	width := len([]rune(rows[0]))

	for cy, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return Stage{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidStage, cy, len(cells), width)
		}
		for cx, c := range cells {
			pos := grid.Cell(cx, cy)
			switch {
			case c == cellHard:
				stage.Blocks = append(stage.Blocks, newHardBlock(pos))
			case c == cellOpen:
				if rng.Float64() >= config.SoftBlockRate {
					continue
				}
				stage.Blocks = append(stage.Blocks, newSoftBlock(pos, config.SoftBlockTTL))
				if rng.Float64() < config.PowerUpRate {
					stage.PowerUps = append(stage.PowerUps, newPowerUp(pos, pickPower(config.PowerUpWeights, rng), config.PowerUpTTL))
				}
			case c == cellClear:
			case c >= '1' && c < '1'+MaxPlayers:
				id := int(c - '1')
				if _, dup := spawns[id]; dup {
					return Stage{}, fmt.Errorf("%w: spawn %c defined twice", ErrInvalidStage, c)
				}
				spawns[id] = pos
			default:
				return Stage{}, fmt.Errorf("%w: unknown cell %q at (%d,%d)", ErrInvalidStage, c, cx, cy)
			}
		}
	}

	for id := 0; id < config.Players; id++ {
		pos, ok := spawns[id]
		if !ok {
			return Stage{}, fmt.Errorf("%w: no spawn for player %d", ErrInvalidStage, id+1)
		}
		stage.Players = append(stage.Players, newPlayer(id, pos, config))
	}
	return stage, nil
}

// pickPower draws a power-up kind proportionally to its weight.
func pickPower(w PowerWeights, rng *rand.Rand) PowerKind {
	total := w.Bombs + w.Blast + w.Speed
	if total <= 0 {
		return PowerBombs
	}
	n := rng.Intn(total)
	switch {
	case n < w.Bombs:
		return PowerBombs
	case n < w.Bombs+w.Blast:
		return PowerBlast
	default:
		return PowerSpeed
	}
}
