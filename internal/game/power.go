package game

import (
	"github.com/amalg/go-bomberhuman/internal/geometry"
)

// PowerUp is an item hidden under a soft block. Its countdown only latches
// consumption: once it drops to zero the item is removed at cleanup.
type PowerUp struct {
	Pos    geometry.Point
	Effect PowerKind
	TTL    int
	action int
}

func newPowerUp(pos geometry.Point, effect PowerKind, ttl int) PowerUp {
	return PowerUp{Pos: pos, Effect: effect, TTL: ttl}
}

// Alive reports whether the item is still on the floor.
func (p *PowerUp) Alive() bool {
	return p.TTL > 0
}

// Kind is the sprite tag matching the effect.
func (p *PowerUp) Kind() ActorKind {
	return p.Effect.actor()
}

// Action counts up from 0 once the item has been consumed.
func (p *PowerUp) Action() int {
	return p.action
}

// update returns the index of the player collecting the item, or -1. An
// item caught in fire with no block left standing over it is destroyed.
func (p *PowerUp) update(players []Player, blocks []Block, fires []Fire, grid geometry.Grid, config *GameConfig) int {
	picker := -1
	if p.Alive() {
		for i := range players {
			if players[i].Alive() && grid.Align(players[i].Pos) == p.Pos {
				picker = i
				p.TTL = 0
				break
			}
		}
	}

	if p.Alive() && fireAt(fires, p.Pos) {
		if _, covered := blockAt(blocks, p.Pos); !covered {
			p.TTL = 0
		}
	}

	p.action = max(config.PowerUpTTL-p.TTL, 0)
	return picker
}
