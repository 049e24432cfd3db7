package plot

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Sequential blue ramp from near-white to navy.
var bluesRamp = []drawing.Color{
	{R: 247, G: 251, B: 255, A: 255},
	{R: 222, G: 235, B: 247, A: 255},
	{R: 198, G: 219, B: 239, A: 255},
	{R: 158, G: 202, B: 225, A: 255},
	{R: 107, G: 174, B: 214, A: 255},
	{R: 66, G: 146, B: 198, A: 255},
	{R: 33, G: 113, B: 181, A: 255},
	{R: 8, G: 81, B: 156, A: 255},
	{R: 8, G: 48, B: 107, A: 255},
}

// Blues maps t in [0, 1] onto the blue ramp. Values outside are clamped.
func Blues(t float64) drawing.Color {
	if math.IsNaN(t) || t <= 0 {
		return bluesRamp[0]
	}
	if t >= 1 {
		return bluesRamp[len(bluesRamp)-1]
	}

	pos := t * float64(len(bluesRamp)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := bluesRamp[i], bluesRamp[i+1]
	return drawing.Color{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, frac float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*frac))
}
