package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"lostoppai/pkg/engine/input"
	"lostoppai/pkg/engine/terminal"
	"lostoppai/pkg/engine/world"
	"lostoppai/pkg/game/config"
	"lostoppai/pkg/game/devtools"
	"lostoppai/pkg/game/generator"
	"lostoppai/pkg/game/renderer/tui"
)

func initGettext(dir, lang string) {
	if dir == "" {
		return
	}
	gotext.Configure(dir, lang, "default")
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(path string, seed int64, seedSet bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if seedSet {
		cfg.World.Seed = seed
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "world config file (.yaml, .yml or .json)")
	seed := flag.Int64("seed", 0, "world seed, overrides the config file")
	dumpPath := flag.String("dump", "", "write a map dump to this file")
	preview := flag.Bool("preview", false, "print a colored preview around the origin")
	explore := flag.Bool("explore", false, "pan around the world with the arrow keys")
	radius := flag.Int("radius", 80, "half size in tiles of the dumped region")
	localeDir := flag.String("locale", "", "directory holding translation files")
	lang := flag.String("lang", "en_GB", "language of the labels")
	flag.Parse()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	logger := log.New(os.Stderr, "lostoppai ", log.LstdFlags)
	initGettext(*localeDir, *lang)

	cfg, err := loadConfig(*configPath, *seed, seedSet)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	w, err := generator.Generate(cfg, generator.WithLogger(logger))
	if err != nil {
		logger.Fatalf("%v", err)
	}
	fmt.Println(gotext.Get("Generated world %d with %d hotspots and %d paths", w.Seed, len(w.Hotspots), len(w.Edges)))

	if *dumpPath != "" {
		path, err := devtools.DumpWorldToFile(w, *dumpPath, world.Around(world.V(0, 0), *radius))
		if err != nil {
			logger.Fatalf("dump map: %v", err)
		}
		fmt.Println(gotext.Get("Map written to %s", path))
	}

	if *preview {
		if !terminal.IsTerminal() {
			color.Disable()
		}
		tui.New().Preview(os.Stdout, w)
	}

	if *explore {
		if err := runExplorer(w); err != nil {
			logger.Fatalf("explore: %v", err)
		}
	}
}

// runExplorer hands the terminal to an Explorer until the user quits
func runExplorer(w *generator.World) error {
	if !terminal.IsTerminal() {
		return fmt.Errorf("stdout is not a terminal")
	}
	r := tui.New()
	rows, cols := r.GetViewportSize()

	restore, err := input.MakeRaw(os.Stdin)
	if err != nil {
		return err
	}
	defer restore()
	return tui.NewExplorer(r, w, rows, cols).Run(os.Stdin, os.Stdout)
}
