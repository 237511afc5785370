// Command hexdemo renders a generated hex map with the hexdraw library,
// either to PNG frames or to a live terminal preview.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/ofs"

	"github.com/gogpu/hexdraw"
	"github.com/gogpu/hexdraw/arena"
	"github.com/gogpu/hexdraw/asset"
)

const (
	textureSize = 16
	markerSize  = 32
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		cols     = flag.Int("cols", 48, "map columns")
		rows     = flag.Int("rows", 32, "map rows")
		zoom     = flag.Float64("zoom", 32, "pixels per world unit")
		seed     = flag.Uint64("seed", 1, "map seed")
		output   = flag.String("output", "hexdemo.png", "output file")
		frames   = flag.Int("frames", 1, "number of frames, panning east")
		textures = flag.String("textures", "", "directory with <biome>.png textures")
		labels   = flag.Bool("labels", false, "draw tile coordinates")
		snap     = flag.Bool("snap", false, "blit unscaled sprites at whole pixels")
		term     = flag.Bool("term", false, "interactive terminal preview")
		memMB    = flag.Int("mem", 16, "arena size in MiB")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	hexdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := &scene{
		world:    newWorld(*cols, *rows, *seed),
		marker:   makeMarker(markerSize, hexdraw.RGB(0.95, 0.2, 0.2)),
		labels:   *labels,
		cmdBytes: 1 << 20,
		opts:     []hexdraw.Option{hexdraw.WithSpritePixelsPerUnit(markerSize)},
	}
	if *snap {
		s.opts = append(s.opts, hexdraw.WithPixelSnap())
	}
	for b := biome(0); b < numBiomes; b++ {
		s.textures[b] = makeTexture(b, textureSize, *seed)
	}
	if *textures != "" {
		var ovl ofs.Overlay
		if err := ovl.Add(false, *textures); err != nil {
			log.Fatalf("Failed to open textures: %v", err)
		}
		if err := s.loadTextures(asset.NewManager(&ovl)); err != nil {
			log.Printf("Some textures not loaded: %v", err)
		}
	}

	mem := arena.New(*memMB << 20)
	center := hexdraw.Offset{Col: *cols / 2, Row: *rows / 2}.Hex().Center()
	cam := &hexdraw.Camera{Position: center, Zoom: float32(*zoom)}
	s.cursor = hexdraw.HexAt(cam.Position)

	if *term {
		if err := runPreview(s, mem.Sub(mem.Remaining()), cam); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
		return
	}

	// The output image lives for the whole run; frames use the rest.
	out := hexdraw.NewBitmapInArena(mem, *width, *height)
	transient := mem.Sub(mem.Remaining())
	for i := 0; i < *frames; i++ {
		name := frameName(*output, i, *frames)
		records, dropped := s.render(transient, cam, out)
		if err := out.SavePNG(name); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Frame saved to %s (%dx%d, %d records, %d dropped, peak %d bytes)\n",
			name, *width, *height, records, dropped, transient.Peak())

		cam.Position = cam.Position.Add(hexdraw.V2(0.5, 0))
		s.cursor = hexdraw.HexAt(cam.Position)
	}
}

// frameName numbers output files when more than one frame is rendered:
// "map.png" becomes "map-007.png".
func frameName(output string, i, n int) string {
	if n <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(output, ext), i, ext)
}
