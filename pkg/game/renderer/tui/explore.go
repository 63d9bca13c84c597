package tui

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"

	"lostoppai/pkg/engine/input"
	"lostoppai/pkg/engine/world"
	"lostoppai/pkg/game/generator"
	"lostoppai/pkg/game/terrain"
)

const clearScreen = "\033[H\033[2J"

// crlfWriter turns line feeds into CR LF for terminals in raw mode
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Explorer pans a viewport over a world one chunk per key press
type Explorer struct {
	renderer   *TUIRenderer
	world      *generator.World
	camera     world.Vec
	rows, cols int
}

// NewExplorer creates an explorer with the camera at the origin
func NewExplorer(r *TUIRenderer, w *generator.World, rows, cols int) *Explorer {
	return &Explorer{renderer: r, world: w, rows: rows, cols: cols}
}

// Camera returns the tile the viewport is centred on
func (e *Explorer) Camera() world.Vec {
	return e.camera
}

// Apply performs a camera action and reports whether exploring continues
func (e *Explorer) Apply(a input.Action) bool {
	switch a {
	case input.ActionQuit:
		return false
	case input.ActionCenter:
		e.camera = world.V(0, 0)
	default:
		dx, dy := input.Direction(a)
		size := e.world.Tiles.Grid().ChunkSize()
		e.camera = e.camera.Add(world.V(dx*size, dy*size))
	}
	return true
}

// Prefetch resolves the chunks within one chunk of the camera so panning
// never meets an unclassified tile
func (e *Explorer) Prefetch() int {
	size := e.world.Tiles.Grid().ChunkSize()
	n := 0
	for _, chunk := range terrain.ChunksAround(terrain.ChunkOf(e.camera, size), 1) {
		n += len(e.world.Tiles.ResolveChunk(chunk))
	}
	return n
}

func (e *Explorer) help() string {
	bindings := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(bindings))
	for a := range bindings {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, fmt.Sprintf("%s: %s", gotext.Get(input.ActionName(a)), strings.Join(bindings[a], "/")))
	}
	return e.renderer.colorSubtle.Sprint(strings.Join(parts, "  "))
}

// Run draws the viewport and handles keys from in until quit or end of input
func (e *Explorer) Run(in io.Reader, out io.Writer) error {
	out = crlfWriter{w: out}
	showHelp := false
	for {
		e.Prefetch()
		fmt.Fprint(out, clearScreen)
		e.renderer.Render(out, e.world, Viewport(e.camera, e.rows, e.cols))
		if showHelp {
			fmt.Fprintln(out, e.help())
		}
		fmt.Fprintf(out, "%s %v\n", gotext.Get("camera"), e.camera)

		key, err := input.ReadKey(in)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		action := input.ActionFor(key)
		showHelp = action == input.ActionHelp
		if !e.Apply(action) {
			return nil
		}
	}
}
