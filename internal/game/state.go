package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/amalg/go-bomberhuman/internal/geometry"
)

// GameState owns every actor of a match and advances them one tick at a
// time. It is not safe for concurrent use; the caller drives Update, Draw
// and ToggleKey from a single goroutine.
type GameState struct {
	config   GameConfig
	grid     geometry.Grid
	renderer Renderer
	keys     []KeyState
	tick     int

	players  []Player
	bombs    []Bomb
	blocks   []Block
	fires    []Fire
	powerUps []PowerUp
}

// arena is the read-only view of the sibling collections an actor consults
// during its own update.
type arena struct {
	grid   geometry.Grid
	config *GameConfig
	blocks []Block
	bombs  []Bomb
	fires  []Fire
}

// New builds the stage described by config and spawns its players. The
// renderer receives every Draw call.
func New(config GameConfig, renderer Renderer) (*GameState, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	stage, err := BuildStage(&config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("build stage: %w", err)
	}

	log.Printf("stage built: %d blocks, %d power-ups, %d players (seed %d)",
		len(stage.Blocks), len(stage.PowerUps), len(stage.Players), seed)

	return &GameState{
		config:   config,
		grid:     geometry.Grid{Size: config.GridSize},
		renderer: renderer,
		keys:     make([]KeyState, len(stage.Players)),
		players:  stage.Players,
		bombs:    make([]Bomb, 0),
		blocks:   stage.Blocks,
		fires:    make([]Fire, 0),
		powerUps: stage.PowerUps,
	}, nil
}

// Config returns the configuration the match was built with.
func (s *GameState) Config() GameConfig {
	return s.config
}

// Tick is the number of completed updates.
func (s *GameState) Tick() int {
	return s.tick
}

// Update advances the match by elapsed milliseconds. Negative values are
// treated as zero.
//
// Phases run in a fixed order and later phases observe what earlier ones
// did this tick: players (may place bombs), bombs, blocks (fire ignites
// soft blocks), fires, power-ups (pickups), then cleanup, which removes
// expired actors and turns every expired bomb into fire.
func (s *GameState) Update(elapsed int) {
	elapsed = max(elapsed, 0)
	for i := range s.players {
		a := s.view()
		if b := s.players[i].update(elapsed, s.keys[i], &a); b != nil {
			s.bombs = append(s.bombs, *b)
		}
	}
	for i := range s.bombs {
		s.bombs[i].update(elapsed, s.fires, &s.config)
	}
	for i := range s.blocks {
		s.blocks[i].update(s.fires, &s.config)
	}
	for i := range s.fires {
		s.fires[i].update(&s.config)
	}
	for i := range s.powerUps {
		pw := &s.powerUps[i]
		if picker := pw.update(s.players, s.blocks, s.fires, s.grid, &s.config); picker >= 0 {
			s.players[picker].pickUp(pw.Effect, &s.config)
		}
	}
	s.cleanup()
	s.tick++
}

func (s *GameState) view() arena {
	return arena{
		grid:   s.grid,
		config: &s.config,
		blocks: s.blocks,
		bombs:  s.bombs,
		fires:  s.fires,
	}
}

// cleanup drops every expired actor. Removal swaps the last element into
// the freed slot, so collection order is not stable. Bombs go first: their
// fire must see the blocks that were still standing this tick.
func (s *GameState) cleanup() {
	for i := 0; i < len(s.bombs); {
		if s.bombs[i].Alive() {
			i++
			continue
		}
		b := s.bombs[i]
		s.bombs = swapRemove(s.bombs, i)
		s.explode(b)
	}
	s.fires = sweep(s.fires, (*Fire).Alive)
	s.blocks = sweep(s.blocks, (*Block).Alive)
	s.powerUps = sweep(s.powerUps, (*PowerUp).Alive)
}

func swapRemove[T any](items []T, i int) []T {
	last := len(items) - 1
	items[i] = items[last]
	var zero T
	items[last] = zero
	return items[:last]
}

func sweep[T any](items []T, alive func(*T) bool) []T {
	for i := 0; i < len(items); {
		if alive(&items[i]) {
			i++
			continue
		}
		items = swapRemove(items, i)
	}
	return items
}

// Draw renders one frame: the surface is cleared, then actors are drawn
// layer by layer (power-ups, players, bombs, blocks, fires) so that blocks
// hide the power-ups beneath them and fire covers everything.
func (s *GameState) Draw() {
	r := s.renderer
	if r == nil {
		return
	}
	r.Clear(s.config.Width, s.config.Height)
	for i := range s.powerUps {
		p := &s.powerUps[i]
		r.PutSprite(p.Pos, p.Kind(), p.Action())
	}
	for i := range s.players {
		p := &s.players[i]
		r.PutSprite(p.Pos, p.Kind(), p.Action())
	}
	for i := range s.bombs {
		b := &s.bombs[i]
		r.PutSprite(b.Pos, KindBomb, b.Action())
	}
	for i := range s.blocks {
		b := &s.blocks[i]
		r.PutSprite(b.Pos, b.Kind(), b.Action())
	}
	for i := range s.fires {
		f := &s.fires[i]
		r.PutSprite(f.Pos, KindFire, f.Action())
	}
}

// ToggleKey records that key was pressed or released for a player slot; it
// takes effect on the next Update. An unknown slot is a caller bug and
// panics.
func (s *GameState) ToggleKey(slot int, key Key, pressed bool) {
	if slot < 0 || slot >= len(s.keys) {
		panic(fmt.Sprintf("game: player slot %d out of range [0,%d)", slot, len(s.keys)))
	}
	s.keys[slot].set(key, pressed)
}

// Players returns a copy of every player, dead or alive.
func (s *GameState) Players() []Player {
	return append([]Player(nil), s.players...)
}

// Bombs returns a copy of the bombs still on their fuse.
func (s *GameState) Bombs() []Bomb {
	return append([]Bomb(nil), s.bombs...)
}

// Blocks returns a copy of the standing blocks.
func (s *GameState) Blocks() []Block {
	return append([]Block(nil), s.blocks...)
}

// Fires returns a copy of the burning fires.
func (s *GameState) Fires() []Fire {
	return append([]Fire(nil), s.fires...)
}

// PowerUps returns a copy of the uncollected power-ups.
func (s *GameState) PowerUps() []PowerUp {
	return append([]PowerUp(nil), s.powerUps...)
}
