package game

import (
	"log"

	"github.com/amalg/go-bomberhuman/internal/geometry"
)

// Player animation codes. Each walking direction owns four frames starting
// at its base; ActionDead is shown while the player waits to respawn.
const (
	ActionSouth = 0
	ActionWest  = 4
	ActionEast  = 8
	ActionNorth = 12
	ActionDead  = 16

	walkFrames = 4
	frameSpan  = 15 // pixels walked per animation frame
)

// Player is one arena fighter. Its countdown is positive while alive; death
// sets it far below zero and it climbs back one per tick until the player
// respawns in place.
type Player struct {
	ID     int
	Pos    geometry.Point
	TTL    int
	Bombs  int // simultaneous bombs allowed
	Power  int // blast radius of placed bombs
	Speed  int
	Deaths int

	action int
	walked int
}

func newPlayer(id int, pos geometry.Point, config *GameConfig) Player {
	return Player{
		ID:    id,
		Pos:   pos,
		TTL:   1,
		Bombs: config.InitialBombs,
		Power: config.InitialPower,
		Speed: config.InitialSpeed,
	}
}

// Alive is false while the player waits to respawn.
func (p *Player) Alive() bool {
	return p.TTL > 0
}

// Kind is the sprite tag of the player slot.
func (p *Player) Kind() ActorKind {
	return PlayerKind(p.ID)
}

// Action is the animation code: a walking frame or ActionDead.
func (p *Player) Action() int {
	return p.action
}

// update runs one tick of movement for the player. It returns the bomb the
// player placed this tick, if any; the caller owns adding it to the arena.
func (p *Player) update(delta int, keys KeyState, a *arena) *Bomb {
	if !p.Alive() {
		p.TTL++
		if p.Alive() {
			p.action = ActionSouth
			p.walked = 0
			log.Printf("player %d respawned at %v", p.ID, p.Pos)
		}
		return nil
	}

	grid := a.grid
	step := p.Speed * delta / 6
	var v geometry.Vector
	if keys.Left {
		v.X -= step
	}
	if keys.Right {
		v.X += step
	}
	if keys.Up {
		v.Y -= step
	}
	if keys.Down {
		v.Y += step
	}

	var placed *Bomb
	if keys.PlaceBomb && ownedBombs(a.bombs, p.ID) < p.Bombs {
		at := grid.Align(p.Pos)
		if !bombAt(a.bombs, at) {
			b := newBomb(p.ID, at, p.Power, a.config.BombTTL)
			placed = &b
		}
	}

	v = grid.AdjustVector(p.Pos, v)
	next := p.Pos.Add(v)
	if !p.blocked(next, placed, a) {
		p.Pos = next
		p.animate(v)
	}

	for i := range a.fires {
		if grid.Collides(a.fires[i].Pos, p.Pos) {
			p.kill(a.config)
			break
		}
	}
	return placed
}

// blocked reports whether moving to next is vetoed. Blocks always stop the
// player; a bomb stops the player unless it already overlaps the current
// position, so a player can step off the bomb it is standing on.
func (p *Player) blocked(next geometry.Point, placed *Bomb, a *arena) bool {
	grid := a.grid
	for i := range a.blocks {
		if grid.Collides(grid.Align(a.blocks[i].Pos), next) {
			return true
		}
	}
	stops := func(b *Bomb) bool {
		return grid.Collides(b.Pos, next) && !grid.Collides(b.Pos, p.Pos)
	}
	for i := range a.bombs {
		if stops(&a.bombs[i]) {
			return true
		}
	}
	return placed != nil && stops(placed)
}

func (p *Player) animate(v geometry.Vector) {
	base := p.action / walkFrames * walkFrames
	switch v.Cardinal() {
	case geometry.South:
		base = ActionSouth
	case geometry.West:
		base = ActionWest
	case geometry.East:
		base = ActionEast
	case geometry.North:
		base = ActionNorth
	case geometry.None:
		p.walked = 0
		p.action = base
		return
	}
	p.walked += v.Length()
	p.action = base + p.walked/frameSpan%walkFrames
}

func (p *Player) kill(config *GameConfig) {
	p.TTL = -config.DeathTTL
	p.action = ActionDead
	p.Deaths++
	log.Printf("player %d killed at %v", p.ID, p.Pos)
}

// pickUp applies the power-up effect, each stat capped by its maximum.
func (p *Player) pickUp(effect PowerKind, config *GameConfig) {
	switch effect {
	case PowerBombs:
		p.Bombs = min(p.Bombs+1, config.MaxBombs)
	case PowerBlast:
		p.Power = min(p.Power+1, config.MaxPower)
	case PowerSpeed:
		p.Speed = min(p.Speed+1, config.MaxSpeed)
	}
	log.Printf("player %d picked up %s: bombs %d, power %d, speed %d", p.ID, effect, p.Bombs, p.Power, p.Speed)
}
