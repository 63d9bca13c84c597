package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"lostoppai/pkg/engine/input"
	"lostoppai/pkg/engine/world"
	"lostoppai/pkg/game/bitmask"
	"lostoppai/pkg/game/generator"
	"lostoppai/pkg/game/terrain"
)

func dryWorld() *generator.World {
	tiles := terrain.NewTileMap(world.NewGrid(4),
		terrain.ClassifierFunc(func(world.Vec) bool { return false }),
		bitmask.NewSeededResolver(1))
	return &generator.World{Tiles: tiles}
}

func TestExplorer_Apply(t *testing.T) {
	e := NewExplorer(New(), dryWorld(), 7, 9)

	if !e.Apply(input.ActionPanEast) || e.Camera() != world.V(4, 0) {
		t.Errorf("after PanEast camera = %v, want (4,0)", e.Camera())
	}
	e.Apply(input.ActionPanNorth)
	if e.Camera() != world.V(4, 4) {
		t.Errorf("after PanNorth camera = %v, want (4,4)", e.Camera())
	}
	e.Apply(input.ActionCenter)
	if e.Camera() != world.V(0, 0) {
		t.Errorf("after Center camera = %v, want (0,0)", e.Camera())
	}
	if e.Apply(input.ActionQuit) {
		t.Error("Apply(Quit) = true, want false")
	}
}

func TestExplorer_Prefetch(t *testing.T) {
	w := dryWorld()
	e := NewExplorer(New(), w, 7, 9)
	if got := e.Prefetch(); got != 9*16 {
		t.Errorf("Prefetch() = %d tiles, want %d", got, 9*16)
	}
	if w.Tiles.Grid().GetCell(world.V(-4, -4)).Type != world.Grass {
		t.Error("prefetch did not classify the neighbouring chunk")
	}
}

func TestExplorer_Run(t *testing.T) {
	color.Disable()
	defer func() { color.Enable = true }()

	e := NewExplorer(New(), dryWorld(), 3, 5)
	var out bytes.Buffer
	if err := e.Run(strings.NewReader("\x1b[C?q"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.Camera() != world.V(4, 0) {
		t.Errorf("camera = %v, want (4,0)", e.Camera())
	}
	if got := strings.Count(out.String(), clearScreen); got != 3 {
		t.Errorf("drew %d frames, want 3", got)
	}
	if !strings.Contains(out.String(), "Quit: ctrl_c/escape/q") {
		t.Error("help text not shown after ?")
	}
	if strings.Contains(strings.ReplaceAll(out.String(), "\r\n", ""), "\n") {
		t.Error("bare line feed written in raw mode")
	}
}

func TestExplorer_RunEndOfInput(t *testing.T) {
	e := NewExplorer(New(), dryWorld(), 3, 5)
	if err := e.Run(strings.NewReader(""), &bytes.Buffer{}); err != nil {
		t.Errorf("Run on empty input: %v", err)
	}
}
