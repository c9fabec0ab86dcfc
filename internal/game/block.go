package game

import (
	"github.com/amalg/go-bomberhuman/internal/geometry"
)

// Block is a piece of static terrain. Hard blocks never burn; a soft block
// starts burning the first tick fire covers it and keeps burning until its
// countdown reaches zero.
type Block struct {
	Pos     geometry.Point
	Soft    bool
	TTL     int
	Burning bool
	action  int
}

func newHardBlock(pos geometry.Point) Block {
	return Block{Pos: pos}
}

func newSoftBlock(pos geometry.Point, ttl int) Block {
	return Block{Pos: pos, Soft: true, TTL: ttl}
}

// Alive reports whether the block still stands. Hard blocks always do.
func (b *Block) Alive() bool {
	return !b.Soft || b.TTL > 0
}

// Kind is the sprite tag of the block.
func (b *Block) Kind() ActorKind {
	if b.Soft {
		return KindSoftBlock
	}
	return KindHardBlock
}

// Action is the visual-state index: 0 while intact, 1-3 as it burns down.
func (b *Block) Action() int {
	return b.action
}

func (b *Block) update(fires []Fire, config *GameConfig) {
	if !b.Soft {
		return
	}
	if !b.Burning && fireAt(fires, b.Pos) {
		b.Burning = true
	}
	if !b.Burning {
		return
	}
	if b.TTL > 0 {
		b.TTL--
	}
	b.action = 1 + (config.SoftBlockTTL-b.TTL)*3/config.SoftBlockTTL
	if b.action > 3 {
		b.action = 3
	}
}

// blockAt returns the block standing exactly on pos, if any.
func blockAt(blocks []Block, pos geometry.Point) (*Block, bool) {
	for i := range blocks {
		if blocks[i].Pos == pos {
			return &blocks[i], true
		}
	}
	return nil, false
}
