// Package tui renders a generated world as colored text in the terminal.
package tui

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"lostoppai/pkg/engine/terminal"
	"lostoppai/pkg/engine/world"
	"lostoppai/pkg/game/bitmask"
	"lostoppai/pkg/game/generator"
	"lostoppai/pkg/game/terrain"
)

// Icon constants for the preview
const (
	IconWater   = "≈"
	IconShore   = "~" // water with a land corner
	IconGrass   = "·"
	IconFlower  = "✿"
	IconPath    = "▒"
	IconVerge   = "░" // grass tile touching a path
	IconHotspot = "◆"
	IconVoid    = " "
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows   = 7
	ViewportMinCols   = 15
	ViewportTopMargin = 4 // header, blank, legend, prompt
)

// TUIRenderer draws world previews
type TUIRenderer struct {
	colorWater   color.Style
	colorShore   color.Style
	colorGrass   color.Style
	colorFlower  color.Style
	colorPath    color.Style
	colorVerge   color.Style
	colorHotspot color.Style
	colorSubtle  color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	t := &TUIRenderer{}
	t.Init()
	return t
}

// Init initializes the renderer colors
func (t *TUIRenderer) Init() {
	t.colorWater = color.Style{color.FgBlue, color.OpBold}
	t.colorShore = color.Style{color.FgCyan}
	t.colorGrass = color.Style{color.FgGreen}
	t.colorFlower = color.Style{color.FgMagenta, color.OpBold}
	t.colorPath = color.Style{color.FgYellow}
	t.colorVerge = color.Style{color.FgGreen, color.OpBold}
	t.colorHotspot = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	// Keep both odd so the centre tile is centred
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}

	return rows, cols
}

// Viewport returns the tile rectangle of the given size centred on c
func Viewport(c world.Vec, rows, cols int) world.Rect {
	origin := world.Vec{X: c.X - cols/2, Y: c.Y - rows/2}
	return world.Rect{Min: origin, Max: world.Vec{X: origin.X + cols, Y: origin.Y + rows}}
}

// Glyph returns the styled icon for a resolved tile
func (t *TUIRenderer) Glyph(tile terrain.Tile) string {
	switch {
	case tile.Type == world.Water && tile.Shape == bitmask.ShapeNone:
		return t.colorWater.Sprint(IconWater)
	case tile.Type == world.Water:
		return t.colorShore.Sprint(IconShore)
	case tile.Type == world.Path:
		return t.colorPath.Sprint(IconPath)
	case tile.Family == bitmask.FamilyPath:
		return t.colorVerge.Sprint(IconVerge)
	case tile.Type == world.Grass && tile.Overlay != bitmask.NoOverlay && tile.Overlay != bitmask.InvalidIndex:
		return t.colorFlower.Sprint(IconFlower)
	case tile.Type == world.Grass:
		return t.colorGrass.Sprint(IconGrass)
	default:
		return IconVoid
	}
}

// Render writes the tiles of r to out, top row first, with hotspots drawn
// over the terrain
func (t *TUIRenderer) Render(out io.Writer, w *generator.World, r world.Rect) {
	hotspots := make(map[world.Vec]bool, len(w.Hotspots))
	for _, h := range w.HotspotTiles() {
		hotspots[h] = true
	}

	fmt.Fprintln(out, t.colorSubtle.Sprint(gotext.Get("Seed %d, %d hotspots, %d paths", w.Seed, len(w.Hotspots), len(w.Edges))))
	fmt.Fprintln(out)
	for y := r.Max.Y - 1; y >= r.Min.Y; y-- {
		for x := r.Min.X; x < r.Max.X; x++ {
			v := world.V(x, y)
			if hotspots[v] {
				fmt.Fprint(out, t.colorHotspot.Sprint(IconHotspot))
				continue
			}
			fmt.Fprint(out, t.Glyph(w.Query(v)))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, t.legend())
}

func (t *TUIRenderer) legend() string {
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		t.colorWater.Sprint(IconWater), gotext.Get("water"),
		t.colorGrass.Sprint(IconGrass), gotext.Get("grass"),
		t.colorPath.Sprint(IconPath), gotext.Get("path"),
		t.colorFlower.Sprint(IconFlower), gotext.Get("flowers"),
		t.colorHotspot.Sprint(IconHotspot), gotext.Get("hotspot"))
}

// Preview renders the area around the origin sized to the terminal
func (t *TUIRenderer) Preview(out io.Writer, w *generator.World) {
	rows, cols := t.GetViewportSize()
	t.Render(out, w, Viewport(world.V(0, 0), rows, cols))
}
