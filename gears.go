// Package gears computes involute gear geometry. It derives the dimensional
// parameters of helical, spur, herringbone, internal and rack gears from a
// small set of design inputs (tooth count, module, pressure angle, helix
// angle, profile shift, backlash, addendum/dedendum factors), samples the
// involute tooth flank as an ordered point sequence, and solves the meshing
// equations for profile shifted gear pairs.
//
// The package is a pure computation library: it performs no I/O and depends
// on no solid modeling kernel. Consumers feed the computed tooth boundary
// curves to a modeler of their choice; the model subpackage provides an
// adapter built on github.com/soypat/sdf.
//
// All angles are radians and all lengths are in whatever unit the module is
// given in. The factories are total functions and never fail; call
// (Gear).Validate before using a gear's geometry.
package gears

import "math"

const (
	pi  = math.Pi
	tau = 2 * pi
	// tolerance below which two profile points are considered coincident.
	tolerance = 1e-9
	// moduleFloor replaces non-positive modules so the factories stay total.
	moduleFloor = 1e-10
	// rootArcShrink keeps the per-tooth root arc clear of the flank start
	// points so downstream curve fitting never sees coincident geometry.
	rootArcShrink = 1e-5
	// minRootDiameter is the absolute floor below which root geometry is
	// considered degenerate.
	minRootDiameter = 0.03
)

// DtoR converts degrees to radians.
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees.
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

const minNormal = 2.2250738585072014e-308 // 2**-1022

// EqualFloat64 compares two float64 values for equality.
// See: http://floating-point-gui.de/errors/NearlyEqualsTest.java
func EqualFloat64(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	absA := math.Abs(a)
	absB := math.Abs(b)
	diff := math.Abs(a - b)
	if a == 0 || b == 0 || diff < minNormal {
		// a or b is zero or both are extremely close to it
		// relative error is less meaningful here
		return diff < (epsilon * minNormal)
	}
	// use relative error
	return diff/math.Min((absA+absB), math.MaxFloat64) < epsilon
}
