package main

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/hexdraw"
)

type biome uint8

const (
	biomeOcean biome = iota
	biomeSand
	biomeGrass
	biomeForest
	biomeRock
	biomeSnow
	numBiomes
)

var biomeNames = [numBiomes]string{"ocean", "sand", "grass", "forest", "rock", "snow"}

func (b biome) String() string {
	if b < numBiomes {
		return biomeNames[b]
	}
	return "unknown"
}

// Height thresholds between consecutive biomes.
var biomeLevels = [numBiomes - 1]float32{0.35, 0.42, 0.6, 0.75, 0.88}

func biomeAt(height float32) biome {
	for i, l := range biomeLevels {
		if height < l {
			return biome(i)
		}
	}
	return biomeSnow
}

type tile struct {
	biome  biome
	height float32
}

// newWorld generates a cols x rows map. The same seed always yields the
// same map.
func newWorld(cols, rows int, seed uint64) *hexdraw.Grid[tile] {
	g := hexdraw.NewGrid[tile](cols, rows)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	fx := 0.2 + 0.2*rng.Float64()
	fy := 0.2 + 0.2*rng.Float64()
	phase := 2 * math.Pi * rng.Float64()

	g.Each(func(o hexdraw.Offset, t *tile) bool {
		c := o.Hex().Center()
		x, y := float64(c.X), float64(c.Y)
		h := 0.5 +
			0.25*math.Sin(x*fx+phase)*math.Cos(y*fy) +
			0.15*math.Sin((x+y)*fx*2.3) +
			0.1*(rng.Float64()-0.5)
		t.height = float32(min(max(h, 0), 1))
		t.biome = biomeAt(t.height)
		return true
	})
	return g
}
