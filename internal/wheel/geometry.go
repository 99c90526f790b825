package wheel

import "math"

// Angles are degrees measured clockwise from the top of the wheel, where the
// pointer sits. Segment i is centered on i*SegmentAngle(n), so segment 0 straddles
// the pointer when the wheel is unrotated.

func SegmentAngle(n int) float64 {
	if n < 1 {
		return 0
	}
	return 360 / float64(n)
}

// SegmentBounds returns the start and end angle of segment i on an unrotated wheel.
func SegmentBounds(i, n int) (float64, float64) {
	seg := SegmentAngle(n)
	center := float64(i) * seg
	return center - seg/2, center + seg/2
}

// SegmentAt returns the index of the segment under the pointer for a wheel
// rotated clockwise by rotation degrees, or -1 when n < 1.
func SegmentAt(rotation float64, n int) int {
	if n < 1 {
		return -1
	}
	seg := SegmentAngle(n)
	under := normalize(-rotation + seg/2)
	i := int(math.Floor(under / seg))
	if i >= n {
		i = n - 1
	}
	return i
}

// normalize maps deg into [0, 360).
func normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}
