// Package hexdraw is a software renderer for pointy-top hexagonal tile maps.
//
// # Overview
//
// hexdraw draws a frame in two phases. During the build phase callers push
// draw records (clear, rectangle, tile, sprite, label) into a Renderer whose
// storage lives in a caller-owned arena. Flush then rasterizes the records
// in push order into a Bitmap of packed 32-bit pixels, so later records
// layer on top of earlier ones.
//
// # Quick Start
//
//	mem := arena.New(1 << 20)
//	cam := &hexdraw.Camera{Zoom: 32}
//	out := hexdraw.NewBitmap(640, 480)
//
//	frame := mem.Begin()
//	r := hexdraw.NewRenderer(mem, 64<<10, cam)
//	r.Clear(hexdraw.Black)
//	for _, h := range hexdraw.HexRange(hexdraw.Hex{}, 3) {
//	    r.PushHex(h.Center(), hexdraw.Vec2{}, hexdraw.Green, nil)
//	}
//	r.Flush(out)
//	frame.End()
//	mem.AssertClean()
//
// # Coordinate Systems
//
// Tiles are addressed in cube coordinates (Hex) or odd-row offset
// coordinates (Offset). The world plane measures one unit per tile outer
// radius with Y pointing up. Screen coordinates are pixels with the origin
// at the top-left and Y pointing down. The Camera converts between world
// and screen.
//
// # Pixels
//
// Pixels are 0xAARRGGBB words stored little-endian with premultiplied
// colour channels. Compositing is source-over.
package hexdraw
