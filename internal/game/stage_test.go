package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/amalg/go-bomberhuman/internal/geometry"
)

func TestBuildDefaultStage(t *testing.T) {
	config := DefaultConfig()
	config.SoftBlockRate = 1
	config.PowerUpRate = 0

	stage, err := BuildStage(&config, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BuildStage: %v", err)
	}

	hard, soft := 0, 0
	for _, b := range stage.Blocks {
		if b.Soft {
			soft++
		} else {
			hard++
		}
	}
	if hard != 82 || soft != 101 {
		t.Errorf("expected 82 hard and 101 soft blocks, got %d and %d", hard, soft)
	}
	if len(stage.PowerUps) != 0 {
		t.Errorf("expected no power-ups, got %d", len(stage.PowerUps))
	}

	g := geometry.Default()
	want := []geometry.Point{g.Cell(1, 1), g.Cell(13, 11), g.Cell(13, 1), g.Cell(1, 11)}
	if len(stage.Players) != len(want) {
		t.Fatalf("expected %d players, got %d", len(want), len(stage.Players))
	}
	for i, p := range stage.Players {
		if p.ID != i || p.Pos != want[i] {
			t.Errorf("player %d at %v, want id %d at %v", p.ID, p.Pos, i, want[i])
		}
		if _, blocked := blockAt(stage.Blocks, p.Pos); blocked {
			t.Errorf("spawn of player %d is covered by a block", i)
		}
	}

	// The escape cells next to each spawn stay open.
	for _, cell := range [][2]int{{2, 1}, {1, 2}, {12, 1}, {13, 2}, {1, 10}, {2, 11}, {13, 10}, {12, 11}} {
		if _, blocked := blockAt(stage.Blocks, g.Cell(cell[0], cell[1])); blocked {
			t.Errorf("cell %v should be clear", cell)
		}
	}
}

func TestBuildStagePerimeterAndPillars(t *testing.T) {
	config := DefaultConfig()
	config.SoftBlockRate = 0

	stage, err := BuildStage(&config, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("BuildStage: %v", err)
	}
	g := geometry.Default()
	for cy := 0; cy < 13; cy++ {
		for cx := 0; cx < 15; cx++ {
			wall := cx == 0 || cy == 0 || cx == 14 || cy == 12 || (cx%2 == 0 && cy%2 == 0)
			b, ok := blockAt(stage.Blocks, g.Cell(cx, cy))
			if ok != wall || (ok && b.Soft) {
				t.Errorf("cell (%d,%d): wall=%v, got block=%v", cx, cy, wall, ok)
			}
		}
	}
}

func TestBuildStagePowerUpsUnderSoftBlocks(t *testing.T) {
	config := DefaultConfig()
	config.SoftBlockRate = 1
	config.PowerUpRate = 1
	config.PowerUpWeights = PowerWeights{Speed: 1}

	stage, err := BuildStage(&config, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("BuildStage: %v", err)
	}
	if len(stage.PowerUps) != 101 {
		t.Fatalf("expected a power-up under every soft block, got %d", len(stage.PowerUps))
	}
	for _, pw := range stage.PowerUps {
		b, ok := blockAt(stage.Blocks, pw.Pos)
		if !ok || !b.Soft {
			t.Errorf("power-up at %v is not under a soft block", pw.Pos)
		}
		if pw.Effect != PowerSpeed {
			t.Errorf("expected only speed power-ups, got %v", pw.Effect)
		}
	}
}

func TestBuildStageDeterministic(t *testing.T) {
	config := DefaultConfig()
	a, _ := BuildStage(&config, rand.New(rand.NewSource(42)))
	b, _ := BuildStage(&config, rand.New(rand.NewSource(42)))
	if len(a.Blocks) != len(b.Blocks) || len(a.PowerUps) != len(b.PowerUps) {
		t.Fatalf("same seed produced different stages")
	}
	for i := range a.Blocks {
		if a.Blocks[i] != b.Blocks[i] {
			t.Fatalf("block %d differs", i)
		}
	}
}

func TestBuildStageErrors(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		players int
	}{
		{"empty", nil, 1},
		{"ragged", []string{"#1#", "##"}, 1},
		{"unknown rune", []string{"#1x"}, 1},
		{"duplicate spawn", []string{"11"}, 1},
		{"missing spawn", []string{"#1#"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Stage = tt.rows
			config.Players = tt.players
			_, err := BuildStage(&config, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrInvalidStage) {
				t.Errorf("expected ErrInvalidStage, got %v", err)
			}
		})
	}
}

func TestPickPowerWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	seen := make(map[PowerKind]int)
	for i := 0; i < 1000; i++ {
		seen[pickPower(PowerWeights{Bombs: 1, Blast: 1}, rng)]++
	}
	if seen[PowerSpeed] != 0 {
		t.Errorf("zero-weight kind was picked %d times", seen[PowerSpeed])
	}
	if seen[PowerBombs] == 0 || seen[PowerBlast] == 0 {
		t.Errorf("expected both weighted kinds, got %v", seen)
	}
	if got := pickPower(PowerWeights{}, rng); got != PowerBombs {
		t.Errorf("all-zero weights should fall back to bombs, got %v", got)
	}
}
