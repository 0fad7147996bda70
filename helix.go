package gears

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Helix is a circular helix around the z axis. Angle is the climb angle
// measured from the plane of rotation, so small angles are nearly flat
// coils and angles near 90 degrees are nearly axial lines. Rotation turns
// the whole curve about the axis.
type Helix struct {
	Radius   float64
	Angle    float64
	Rotation float64
}

// rise is the axial climb per radian of turn.
func (h Helix) rise() float64 {
	return math.Tan(h.Angle) * h.Radius
}

// Valid reports whether the helix is a usable curve: positive radius and a
// climb angle that is neither degenerate flat nor fully axial.
func (h Helix) Valid() bool {
	a := math.Abs(h.Angle)
	return h.Radius > 0 && a >= DtoR(1e-4) && a < pi/2
}

// VerticalLoopSeparation is the signed axial distance between consecutive
// loops of the helix.
func (h Helix) VerticalLoopSeparation() float64 {
	return tau * h.rise()
}

// Curvature of the helix. Constant along the curve.
func (h Helix) Curvature() float64 {
	c := h.rise()
	return h.Radius / (h.Radius*h.Radius + c*c)
}

// Torsion of the helix. Constant along the curve.
func (h Helix) Torsion() float64 {
	c := h.rise()
	return c / (h.Radius*h.Radius + c*c)
}

// TFor returns the curve parameter that advances the helix by the given
// axial displacement from t = 0.
func (h Helix) TFor(displacement float64) float64 {
	return displacement / h.rise()
}

// AngleAt is the polar angle of the helix point at parameter t.
func (h Helix) AngleAt(t float64) float64 {
	return t + h.Rotation
}

// Point returns the helix point at parameter t. One full loop spans a
// parameter range of 2π.
func (h Helix) Point(t float64) r3.Vec {
	a := h.AngleAt(t)
	return r3.Vec{
		X: h.Radius * math.Cos(a),
		Y: h.Radius * math.Sin(a),
		Z: h.rise() * t,
	}
}

// Points samples the helix from parameter from to parameter to. A
// non-positive steps picks a density of six samples per half turn; fewer
// than three points are never returned.
func (h Helix) Points(from, to float64, steps int) []r3.Vec {
	if steps <= 0 {
		steps = int(math.Abs(to-from) / pi * 6)
	}
	if steps < 3 {
		steps = 3
	}
	pts := make([]r3.Vec, steps)
	for i := range pts {
		t := from + (to-from)*float64(i)/float64(steps-1)
		pts[i] = h.Point(t)
	}
	return pts
}

// Offset returns the helix at radius+distance with the climb angle adjusted
// so the axial lead is preserved, as when following a tooth at a different
// depth on the same gear.
func (h Helix) Offset(distance float64) Helix {
	r := h.Radius + distance
	return Helix{
		Radius:   r,
		Angle:    math.Atan(h.rise() / r),
		Rotation: h.Rotation,
	}
}

// Project returns the helix point at the same height as p.
func (h Helix) Project(p r3.Vec) r3.Vec {
	return h.Point(p.Z / h.rise())
}
