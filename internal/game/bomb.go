package game

import (
	"log"

	"github.com/amalg/go-bomberhuman/internal/geometry"
)

// Bomb is a placed bomb waiting to explode.
type Bomb struct {
	OwnerID int
	Pos     geometry.Point
	Power   int // blast radius in cells
	TTL     int
	action  int
}

func newBomb(owner int, pos geometry.Point, power, ttl int) Bomb {
	return Bomb{OwnerID: owner, Pos: pos, Power: power, TTL: ttl}
}

// Alive reports whether the fuse is still burning.
func (b *Bomb) Alive() bool {
	return b.TTL > 0
}

// Action is the fuse animation frame, 0 (just placed) to 15.
func (b *Bomb) Action() int {
	return b.action
}

// update burns the fuse by delta/10 and never below zero. A bomb caught in
// fire has its fuse cut to BombChainTTL so that blasts chain.
func (b *Bomb) update(delta int, fires []Fire, config *GameConfig) {
	if step := delta / 10; step > 0 {
		b.TTL = max(b.TTL-step, 0)
	}
	if fireAt(fires, b.Pos) && b.TTL > config.BombChainTTL {
		b.TTL = config.BombChainTTL
	}
	b.action = (config.BombTTL - b.TTL) * 15 / config.BombTTL
}

// ownedBombs counts the bombs of player id that have not gone off yet.
func ownedBombs(bombs []Bomb, id int) int {
	n := 0
	for i := range bombs {
		if bombs[i].OwnerID == id && bombs[i].Alive() {
			n++
		}
	}
	return n
}

func bombAt(bombs []Bomb, pos geometry.Point) bool {
	for i := range bombs {
		if bombs[i].Pos == pos {
			return true
		}
	}
	return false
}

// explode emits fire from an expired bomb along the four axes. Each ray
// walks outward cell by cell for Power cells; the first block it meets ends
// the ray, leaving one fire on that cell when the block is soft. The origin
// is emitted once.
func (s *GameState) explode(b Bomb) {
	grid := s.grid
	start := grid.Align(b.Pos)
	emitted := 0

	if b.Power > 0 {
		if block, ok := blockAt(s.blocks, start); !ok || block.Soft {
			s.fires = append(s.fires, newFire(start, s.config.FireTTL))
			emitted++
		}
	}

	for _, dir := range []geometry.Direction{geometry.North, geometry.South, geometry.West, geometry.East} {
		step := dir.Unit(grid.Size)
		pos := start
		for dist := 1; dist <= b.Power; dist++ {
			pos = pos.Add(step)
			if block, ok := blockAt(s.blocks, pos); ok {
				if block.Soft {
					s.fires = append(s.fires, newFire(pos, s.config.FireTTL))
					emitted++
				}
				break
			}
			s.fires = append(s.fires, newFire(pos, s.config.FireTTL))
			emitted++
		}
	}

	log.Printf("bomb of player %d exploded at %v: power %d, %d fires", b.OwnerID, start, b.Power, emitted)
}
