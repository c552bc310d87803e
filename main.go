package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"tangle/game"
	"tangle/sound"
	"tangle/terminal"
	"tangle/validation"
)

func main() {
	var (
		mute = flag.Bool("mute", false, "Disable audio feedback")
		seed = flag.Int64("seed", 0, "Board shuffle seed (0 = time-based)")
		// Terminal cells are far coarser than pixels, so the default
		// spacing here is tighter than the engine default.
		spacing = flag.Float64("spacing", 2, "Minimum distance between recorded stroke points")
		window  = flag.Int("window", validation.DefaultWindow, "Trailing stroke points exempt from the self-crossing check")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Connect each pair of matching boxes with a freehand stroke.\n")
		fmt.Fprintf(os.Stderr, "A stroke may not leave the canvas, cross a box of another color,\n")
		fmt.Fprintf(os.Stderr, "cross another stroke, or cross itself.\n\n")
		fmt.Fprintf(os.Stderr, "Controls: drag with the mouse; r restarts, Esc cancels a stroke, q quits.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := game.DefaultConfig()
	cfg.MinSpacing = *spacing
	cfg.Window = *window

	player := sound.NewPlayer(*mute)
	defer player.Close()

	shell := terminal.NewShell(cfg, *seed, player)
	if err := shell.Run(); err != nil {
		log.Fatalf("tangle: %v", err)
	}
}
