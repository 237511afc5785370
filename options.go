package hexdraw

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Defaults: 150 sprite pixels per world unit, textures repeat every
//	// two world units, basicfont labels.
//	r := hexdraw.NewRenderer(a, 1<<16, cam)
//
//	// Pixel-exact sprites at zoom 64.
//	r := hexdraw.NewRenderer(a, 1<<16, cam,
//	    hexdraw.WithSpritePixelsPerUnit(64), hexdraw.WithPixelSnap())
type Option func(*options)

type options struct {
	spritePPU float32
	texScale  float32
	pixelSnap bool
	face      font.Face
}

func defaultOptions() options {
	return options{
		spritePPU: 150,
		texScale:  0.5,
		face:      basicfont.Face7x13,
	}
}

// WithSpritePixelsPerUnit sets how many sprite pixels span one world unit.
// A sprite is drawn at zoom/ppu screen pixels per sprite pixel.
// Non-positive values are ignored.
func WithSpritePixelsPerUnit(ppu float32) Option {
	return func(o *options) {
		if ppu > 0 {
			o.spritePPU = ppu
		}
	}
}

// WithTextureWorldSize sets the world-space length over which a tile
// texture repeats once in each direction. Non-positive values are ignored.
func WithTextureWorldSize(size float32) Option {
	return func(o *options) {
		if size > 0 {
			o.texScale = 1 / size
		}
	}
}

// WithPixelSnap draws sprites with the axis-aligned blit whenever they map
// one sprite pixel to exactly one screen pixel. The origin is rounded to
// whole pixels.
func WithPixelSnap() Option {
	return func(o *options) {
		o.pixelSnap = true
	}
}

// WithFace sets the font face used for labels. A nil face is ignored.
func WithFace(f font.Face) Option {
	return func(o *options) {
		if f != nil {
			o.face = f
		}
	}
}
