package widget

import "math"

// CubicBezier is a CSS-style timing curve through (0,0), (X1,Y1), (X2,Y2), (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// At returns the eased progress for linear progress x in [0,1].
func (c CubicBezier) At(x float64) float64 {
	x = clamp01(x)
	if x == 0 || x == 1 {
		return x
	}

	// Newton first, bisection if the slope flattens out.
	t := x
	for i := 0; i < 8; i++ {
		dx := bezier(t, c.X1, c.X2) - x
		if math.Abs(dx) < 1e-7 {
			return bezier(t, c.Y1, c.Y2)
		}
		d := bezierSlope(t, c.X1, c.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 40; i++ {
		v := bezier(t, c.X1, c.X2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezier(t, c.Y1, c.Y2)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
