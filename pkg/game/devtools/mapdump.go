// Package devtools provides developer tools for inspecting generated worlds.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"lostoppai/pkg/engine/world"
	"lostoppai/pkg/game/bitmask"
	"lostoppai/pkg/game/generator"
	"lostoppai/pkg/game/terrain"
)

// DefaultDumpFilename is used when no path is given
const DefaultDumpFilename = "map.txt"

// Map symbols
const (
	SymbolEmpty   = ' '
	SymbolWater   = '~'
	SymbolGrass   = '.'
	SymbolPath    = '#'
	SymbolFlower  = '*'
	SymbolHotspot = 'H'
)

// tileSymbol returns the single-character symbol for a resolved tile
func tileSymbol(t terrain.Tile) rune {
	switch t.Type {
	case world.Water:
		return SymbolWater
	case world.Path:
		return SymbolPath
	case world.Grass:
		if t.Overlay != bitmask.NoOverlay && t.Overlay != bitmask.InvalidIndex {
			return SymbolFlower
		}
		return SymbolGrass
	default:
		return SymbolEmpty
	}
}

// Stats summarises the tiles inside a dumped region
type Stats struct {
	Counts   map[world.TileType]int
	Sprites  map[bitmask.Family]int // distinct sprite indices per family
	Shapes   map[bitmask.Shape]int
	Flowers  int
	Hotspots int
}

// Collect resolves every tile in bounds and gathers statistics
func Collect(w *generator.World, bounds world.Rect) Stats {
	st := Stats{
		Counts:  make(map[world.TileType]int),
		Sprites: make(map[bitmask.Family]int),
		Shapes:  make(map[bitmask.Shape]int),
	}
	sprites := make(map[bitmask.Family]mapset.Set[int])
	for _, t := range w.Tiles.ResolveRect(bounds) {
		st.Counts[t.Type]++
		st.Shapes[t.Shape]++
		if t.Overlay != bitmask.NoOverlay && t.Overlay != bitmask.InvalidIndex {
			st.Flowers++
		}
		if t.Index == bitmask.InvalidIndex {
			continue
		}
		set, ok := sprites[t.Family]
		if !ok {
			set = mapset.New[int]()
			sprites[t.Family] = set
		}
		set.Put(t.Index)
	}
	for family, set := range sprites {
		st.Sprites[family] = set.Size()
	}
	for _, h := range w.HotspotTiles() {
		if bounds.Contains(h) {
			st.Hotspots++
		}
	}
	return st
}

// WriteMap writes the ASCII map of bounds, top row first. Hotspots are drawn
// over the terrain.
func WriteMap(out io.Writer, w *generator.World, bounds world.Rect) {
	hotspots := mapset.New[world.Vec]()
	for _, h := range w.HotspotTiles() {
		hotspots.Put(h)
	}
	row := make([]rune, 0, bounds.Width())
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		row = row[:0]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := world.V(x, y)
			if hotspots.Has(v) {
				row = append(row, SymbolHotspot)
				continue
			}
			row = append(row, tileSymbol(w.Query(v)))
		}
		fmt.Fprintln(out, string(row))
	}
}

// WriteDump writes a full debug dump of w: metadata, legend, map of bounds,
// statistics, hotspots and edges.
func WriteDump(out io.Writer, w *generator.World, bounds world.Rect) error {
	if w == nil || w.Tiles == nil {
		return fmt.Errorf("no world")
	}

	fmt.Fprintln(out, "=== "+gotext.Get("WORLD DUMP")+" ===")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "--- "+gotext.Get("Metadata")+" ---")
	fmt.Fprintf(out, "seed: %d\n", w.Seed)
	fmt.Fprintf(out, "chunk_size: %d\n", w.Tiles.Grid().ChunkSize())
	fmt.Fprintf(out, "bounds: %v..%v\n", bounds.Min, bounds.Max)
	fmt.Fprintf(out, "coordinate_system: x,y (y up, origin at the central hotspot)\n")
	fmt.Fprintf(out, "hotspots: %d\n", len(w.Hotspots))
	fmt.Fprintf(out, "edges: %d\n", len(w.Edges))
	fmt.Fprintf(out, "cells_stamped: %d\n", w.Stamped)
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- "+gotext.Get("Legend")+" ---")
	fmt.Fprintf(out, "%c = %s  %c = %s  %c = %s  %c = %s  %c = %s\n",
		SymbolWater, gotext.Get("water"),
		SymbolGrass, gotext.Get("grass"),
		SymbolPath, gotext.Get("path"),
		SymbolFlower, gotext.Get("flowers"),
		SymbolHotspot, gotext.Get("hotspot"))
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- "+gotext.Get("Map")+" ---")
	WriteMap(out, w, bounds)
	fmt.Fprintln(out, "")

	st := Collect(w, bounds)
	fmt.Fprintln(out, "--- "+gotext.Get("Statistics")+" ---")
	for _, t := range []world.TileType{world.Water, world.Grass, world.Path} {
		fmt.Fprintf(out, "tiles_%s: %d\n", strings.ToLower(t.String()), st.Counts[t])
	}
	fmt.Fprintf(out, "tiles_flowers: %d\n", st.Flowers)
	for _, f := range []bitmask.Family{bitmask.FamilyGrass, bitmask.FamilyPath} {
		fmt.Fprintf(out, "sprites_%s: %d\n", f, st.Sprites[f])
	}
	shapes := make([]bitmask.Shape, 0, len(st.Shapes))
	for s := range st.Shapes {
		shapes = append(shapes, s)
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i] < shapes[j] })
	for _, s := range shapes {
		fmt.Fprintf(out, "collision_%s: %d\n", s, st.Shapes[s])
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- "+gotext.Get("Hotspots")+" ---")
	for i, h := range w.HotspotTiles() {
		fmt.Fprintf(out, "  %d: %v (%.2f, %.2f)\n", i, h, w.Hotspots[i].X(), w.Hotspots[i].Y())
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- "+gotext.Get("Edges")+" ---")
	for _, e := range w.Edges {
		fmt.Fprintf(out, "  %d-%d length %.1f\n", e.A, e.B, w.Hotspots[e.A].Sub(w.Hotspots[e.B]).Len())
	}
	return nil
}

// DumpWorldToFile writes WriteDump output to path (DefaultDumpFilename when
// empty) and returns the absolute path written.
func DumpWorldToFile(w *generator.World, path string, bounds world.Rect) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create dump: %w", err)
	}
	defer f.Close()

	if err := WriteDump(f, w, bounds); err != nil {
		return "", err
	}
	return absPath, nil
}
