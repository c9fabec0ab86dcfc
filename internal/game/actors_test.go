package game

import (
	"testing"

	"github.com/amalg/go-bomberhuman/internal/geometry"
)

func TestHardBlockImmortal(t *testing.T) {
	config := DefaultConfig()
	b := newHardBlock(geometry.Pt(0, 0))
	fires := []Fire{newFire(b.Pos, config.FireTTL)}
	for i := 0; i < 100; i++ {
		b.update(fires, &config)
	}
	if !b.Alive() || b.Burning {
		t.Errorf("hard block should never burn: %+v", b)
	}
}

func TestSoftBlockIgnitesOnce(t *testing.T) {
	config := DefaultConfig()
	b := newSoftBlock(geometry.Pt(60, 0), config.SoftBlockTTL)

	b.update(nil, &config)
	if b.Burning || b.TTL != config.SoftBlockTTL {
		t.Fatalf("block without fire should not burn: %+v", b)
	}

	b.update([]Fire{newFire(geometry.Pt(0, 0), 1)}, &config)
	if b.Burning {
		t.Fatalf("fire on a neighbouring cell must not ignite the block")
	}

	b.update([]Fire{newFire(b.Pos, 1)}, &config)
	for i := 1; i < config.SoftBlockTTL; i++ {
		if !b.Alive() {
			t.Fatalf("block died early after %d ticks", i)
		}
		b.update(nil, &config)
	}
	if b.Alive() {
		t.Errorf("block should be burnt out, ttl %d", b.TTL)
	}
}

func TestFireDecays(t *testing.T) {
	config := DefaultConfig()
	f := newFire(geometry.Pt(0, 0), config.FireTTL)
	prev := f.Action()
	for i := 0; i < config.FireTTL; i++ {
		if !f.Alive() {
			t.Fatalf("fire died after %d ticks", i)
		}
		f.update(&config)
		if f.Action() < prev || f.Action() > 3 {
			t.Fatalf("bad action %d after %d", f.Action(), prev)
		}
		prev = f.Action()
	}
	if f.Alive() {
		t.Errorf("fire should be out after %d ticks", config.FireTTL)
	}
}

func TestBombFuse(t *testing.T) {
	config := DefaultConfig()
	b := newBomb(0, geometry.Pt(0, 0), 2, config.BombTTL)

	b.update(9, nil, &config)
	if b.TTL != config.BombTTL {
		t.Errorf("under 10ms must not burn the fuse, ttl %d", b.TTL)
	}
	b.update(1500, nil, &config)
	if b.TTL != config.BombTTL-150 || b.Action() != 7 {
		t.Errorf("ttl %d action %d", b.TTL, b.Action())
	}
	b.update(100000, nil, &config)
	if b.TTL != 0 || b.Alive() {
		t.Errorf("fuse must floor at zero, got %d", b.TTL)
	}
	if b.Action() != 15 {
		t.Errorf("expired bomb action = %d, want 15", b.Action())
	}
}

func TestBombFuseCutByFire(t *testing.T) {
	config := DefaultConfig()
	b := newBomb(0, geometry.Pt(0, 0), 2, 3)
	b.update(0, []Fire{newFire(b.Pos, 1)}, &config)
	if b.TTL != 3 {
		t.Errorf("a shorter fuse must not be lengthened, got %d", b.TTL)
	}
}

func TestOwnedBombs(t *testing.T) {
	bombs := []Bomb{
		newBomb(0, geometry.Pt(0, 0), 1, 10),
		newBomb(1, geometry.Pt(60, 0), 1, 10),
		newBomb(0, geometry.Pt(120, 0), 1, 0),
	}
	if got := ownedBombs(bombs, 0); got != 1 {
		t.Errorf("ownedBombs = %d, want 1", got)
	}
}

func TestPowerUpIgnoresDeadPlayers(t *testing.T) {
	config := DefaultConfig()
	pw := newPowerUp(geometry.Pt(60, 60), PowerBlast, config.PowerUpTTL)
	players := []Player{newPlayer(0, geometry.Pt(60, 60), &config)}
	players[0].TTL = -10

	if picker := pw.update(players, nil, nil, geometry.Default(), &config); picker != -1 {
		t.Errorf("dead player should not collect items")
	}
	if !pw.Alive() {
		t.Errorf("power-up should remain")
	}

	players[0].TTL = 1
	players[0].Pos = geometry.Pt(75, 50) // aligns to (60,60)
	if picker := pw.update(players, nil, nil, geometry.Default(), &config); picker != 0 {
		t.Errorf("picker = %d, want 0", picker)
	}
	if pw.Alive() || pw.Action() != config.PowerUpTTL {
		t.Errorf("power-up should be consumed: %+v", pw)
	}
}

func TestActorKindString(t *testing.T) {
	if KindSoftBlock.String() != "soft-block" || ActorKind(99).String() != "unknown" {
		t.Errorf("unexpected names %q %q", KindSoftBlock, ActorKind(99))
	}
	if PlayerKind(2) != KindPlayer3 {
		t.Errorf("PlayerKind(2) = %v", PlayerKind(2))
	}
}
