package game

import (
	"github.com/amalg/go-bomberhuman/internal/geometry"
)

// ActorKind tags what a sprite is so the renderer can pick its artwork.
type ActorKind int

const (
	KindPlayer1 ActorKind = iota
	KindPlayer2
	KindPlayer3
	KindPlayer4
	KindBomb
	KindHardBlock
	KindSoftBlock
	KindFire
	KindBombUp  // extra bomb capacity
	KindPowerUp // extra blast radius
	KindSpeedUp // extra movement speed
)

var kindNames = [...]string{
	KindPlayer1:   "player1",
	KindPlayer2:   "player2",
	KindPlayer3:   "player3",
	KindPlayer4:   "player4",
	KindBomb:      "bomb",
	KindHardBlock: "hard-block",
	KindSoftBlock: "soft-block",
	KindFire:      "fire",
	KindBombUp:    "bomb-up",
	KindPowerUp:   "power-up",
	KindSpeedUp:   "speed-up",
}

func (k ActorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// PlayerKind returns the sprite tag for player id (0-3).
func PlayerKind(id int) ActorKind {
	return KindPlayer1 + ActorKind(id%MaxPlayers)
}

// Renderer draws one frame. The game never reads anything back from it.
type Renderer interface {
	// Clear wipes the drawing surface of the given pixel size.
	Clear(width, height int)
	// PutSprite draws one actor at pos with the visual-state index action.
	PutSprite(pos geometry.Point, kind ActorKind, action int)
}

// Key is one of the buttons a player slot can hold.
type Key int

const (
	KeyPlaceBomb Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyPlaceBomb:
		return "bomb"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "unknown"
	}
}

// KeyState is the set of buttons held by one player slot, sampled at the
// start of a tick.
type KeyState struct {
	PlaceBomb bool
	Left      bool
	Right     bool
	Up        bool
	Down      bool
}

// set flips one button; unknown keys are ignored.
func (ks *KeyState) set(k Key, pressed bool) {
	switch k {
	case KeyPlaceBomb:
		ks.PlaceBomb = pressed
	case KeyLeft:
		ks.Left = pressed
	case KeyRight:
		ks.Right = pressed
	case KeyUp:
		ks.Up = pressed
	case KeyDown:
		ks.Down = pressed
	}
}

// PowerKind is the effect a power-up grants.
type PowerKind int

const (
	PowerBombs PowerKind = iota // +1 simultaneous bomb
	PowerBlast                  // +1 blast radius
	PowerSpeed                  // +1 movement speed
)

func (k PowerKind) String() string {
	switch k {
	case PowerBombs:
		return "bomb"
	case PowerBlast:
		return "power"
	case PowerSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

func (k PowerKind) actor() ActorKind {
	switch k {
	case PowerBlast:
		return KindPowerUp
	case PowerSpeed:
		return KindSpeedUp
	default:
		return KindBombUp
	}
}
