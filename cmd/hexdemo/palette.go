package main

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/hexdraw"
)

// Base biome colours in HCL so lightness steps are perceptually even.
var biomeHCL = [numBiomes][3]float64{
	biomeOcean:  {250, 0.45, 0.42},
	biomeSand:   {85, 0.35, 0.82},
	biomeGrass:  {130, 0.55, 0.62},
	biomeForest: {140, 0.45, 0.40},
	biomeRock:   {60, 0.08, 0.50},
	biomeSnow:   {240, 0.03, 0.95},
}

func biomeColor(b biome) colorful.Color {
	c := biomeHCL[b]
	return colorful.Hcl(c[0], c[1], c[2]).Clamped()
}

// tileColor shades the biome colour by height: higher tiles are lighter.
func tileColor(t tile) hexdraw.Color {
	base := biomeColor(t.biome)
	lo := base.BlendLab(colorful.Color{}, 0.25)
	hi := base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.25)
	return hexdraw.FromColorful(lo.BlendLab(hi, float64(t.height)))
}

// makeTexture returns a size x size opaque texture of b with per-texel
// lightness jitter.
func makeTexture(b biome, size int, seed uint64) *hexdraw.Bitmap {
	rng := rand.New(rand.NewPCG(seed, uint64(b)))
	h, c, l := biomeColor(b).Hcl()

	tex := hexdraw.NewBitmap(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			jitter := (rng.Float64() - 0.5) * 0.12
			r, g, bl := colorful.Hcl(h, c, l+jitter).Clamped().RGB255()
			tex.SetPixel(x, y, 0xFF000000|uint32(r)<<16|uint32(g)<<8|uint32(bl))
		}
	}
	return tex
}

// makeMarker draws a filled ring sprite, transparent outside.
func makeMarker(size int, c hexdraw.Color) *hexdraw.Bitmap {
	b := hexdraw.NewBitmap(size, size)
	p := c.Premultiply().Pack()
	r := float32(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := hexdraw.V2(float32(x)+0.5-r, float32(y)+0.5-r).Length()
			if d <= r-1 && d >= r*0.55 {
				b.SetPixel(x, y, p)
			}
		}
	}
	return b
}
