package burst

import (
	"image/color"
	"math"

	"github.com/iburimskiy/fortune-wheel/internal/rng"
)

// Burst parameters. Velocities and accelerations are per tick.
const (
	Count = 300

	MinSpeed     = 2.0
	MaxSpeed     = 10.0
	VerticalKick = 4.0

	MinSize = 5.0
	MaxSize = 15.0

	Gravity = 0.1
	Fade    = 0.005

	MaxSpin = 5.0 // degrees per tick, either direction
)

// Palette holds the confetti colors.
var Palette = []color.RGBA{
	{R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x33, B: 0x66, A: 0xff},
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

type Point struct {
	X, Y float64
}

// Particle is a single piece of confetti. Rotation and Spin are in degrees.
type Particle struct {
	X, Y     float64
	Size     float64
	VX, VY   float64
	Color    color.RGBA
	Opacity  float64
	Rotation float64
	Spin     float64
}

// Batch is the set of live particles of one burst.
type Batch []Particle

// Spawn creates a full batch of particles at center, flying out in every direction
// with an upward kick.
func Spawn(center Point, src rng.Source) Batch {
	b := make(Batch, 0, Count)
	for n := 0; n < Count; n++ {
		ang := rng.Range(src, 0, 2*math.Pi)
		spd := rng.Range(src, MinSpeed, MaxSpeed)
		b = append(b, Particle{
			X: center.X, Y: center.Y,
			Size:     rng.Range(src, MinSize, MaxSize),
			VX:       math.Cos(ang) * spd,
			VY:       math.Sin(ang)*spd - VerticalKick,
			Color:    Palette[src.Intn(len(Palette))],
			Opacity:  1,
			Rotation: rng.Range(src, 0, 360),
			Spin:     rng.Range(src, -MaxSpin, MaxSpin),
		})
	}
	return b
}

// Tick advances every particle by one step and returns the survivors as a new
// batch. b itself is left untouched.
func Tick(b Batch) Batch {
	if len(b) == 0 {
		return nil
	}

	next := make(Batch, 0, len(b))
	for _, p := range b {
		p.VY += Gravity
		p.X += p.VX
		p.Y += p.VY
		p.Opacity -= Fade
		p.Rotation += p.Spin

		if p.Opacity <= 0 {
			continue
		}
		next = append(next, p)
	}
	return next
}

// IsActive reports whether any particle is left.
func IsActive(b Batch) bool {
	return len(b) > 0
}
