package gears

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Involute is the involute function, tan(α) − α. It maps the pressure angle
// at a point on an involute flank to the polar angle of that point measured
// from the flank's origin on the base circle.
func Involute(angle float64) float64 {
	return math.Tan(angle) - angle
}

// InverseInvolute returns the angle whose involute is inv. It seeds a cube
// root approximation and polishes it with a fixed number of Newton steps,
// accurate to about a nanoradian for angles between 5 and 60 degrees, which
// covers every practical working pressure angle.
func InverseInvolute(inv float64) float64 {
	cbrt := math.Cbrt(inv)
	x := 1.44792*cbrt - 0.0472447*cbrt*cbrt - 0.29949*inv
	for i := 0; i < 3; i++ {
		tan := math.Tan(x)
		// d/dx (tan x − x) = tan²x.
		x -= (tan - x - inv) / (tan * tan)
	}
	return x
}

// InvolutePoint returns the point on the involute of the circle of radius
// baseRadius that lies at distance r from the circle's center, at height z.
// The involute unwinds counterclockwise from (baseRadius, 0, z).
// InvolutePoint panics if r < baseRadius, where the involute is undefined.
func InvolutePoint(baseRadius, r, z float64) r3.Vec {
	if r < baseRadius {
		panic("involute point below base circle")
	}
	// Unwound string length and the angles it subtends.
	l := math.Sqrt(r*r - baseRadius*baseRadius)
	alpha := l / baseRadius
	theta := alpha - math.Acos(baseRadius/r)
	return r3.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}
}
