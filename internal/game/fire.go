package game

import (
	"github.com/amalg/go-bomberhuman/internal/geometry"
)

// Fire is one cell of an explosion. It burns for a fixed number of ticks.
type Fire struct {
	Pos    geometry.Point
	TTL    int
	action int
}

func newFire(pos geometry.Point, ttl int) Fire {
	return Fire{Pos: pos, TTL: ttl}
}

// Alive reports whether the fire still burns.
func (f *Fire) Alive() bool {
	return f.TTL > 0
}

// Action is the visual-state index, 0 (fresh) to 3 (dying out).
func (f *Fire) Action() int {
	return f.action
}

func (f *Fire) update(config *GameConfig) {
	if f.TTL > 0 {
		f.TTL--
	}
	f.action = min((config.FireTTL-f.TTL)*4/config.FireTTL, 3)
}

// fireAt reports whether a fire sits exactly on the aligned position pos.
func fireAt(fires []Fire, pos geometry.Point) bool {
	for i := range fires {
		if fires[i].Pos == pos {
			return true
		}
	}
	return false
}
