// Package model turns gear geometry into signed distance fields using
// github.com/soypat/sdf, ready for rendering or further boolean work. It is
// the only package here that knows about a solid modeler; the math core
// stays free of it.
package model

import (
	"fmt"
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2"
	"github.com/soypat/sdf/form3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Profile returns the 2D cross section of a gear in the plane of rotation,
// centered on the gear axis.
func Profile(g gears.Gear) (sdf.SDF2, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	outline, err := g.Outline(0, 0)
	if err != nil {
		return nil, err
	}
	s, err := form2.Polygon(outline)
	if err != nil {
		return nil, fmt.Errorf("gear profile polygon: %w", err)
	}
	return s, nil
}

// RackProfile returns the 2D cross section of a rack, pitch line on the x
// axis. Helical racks have their tooth spacing stretched for the slant; the
// slant across the face itself is left to the caller's sweep.
func RackProfile(r gears.Rack) (sdf.SDF2, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	s, err := form2.Polygon(r.Outline(0))
	if err != nil {
		return nil, fmt.Errorf("rack profile polygon: %w", err)
	}
	return s, nil
}

// Solid returns the 3D gear body: the profile extruded over the gear width
// and twisted to follow the tooth helix. Herringbone gears are built from
// two mirrored helical halves, internal gears are subtracted from a
// cylindrical rim.
func Solid(g gears.Gear) (sdf.SDF3, error) {
	prof, err := Profile(g)
	if err != nil {
		return nil, err
	}
	var twist float64
	if vls := g.VerticalLoopSeparation(); !math.IsInf(vls, 0) {
		twist = -2 * math.Pi * g.Width / vls
	}

	var body sdf.SDF3
	if g.Herringbone {
		half := sdf.TwistExtrude3D(prof, g.Width/2, twist/2)
		top := sdf.Transform3D(half, sdf.Translate3D(r3.Vec{Z: g.Width / 4}))
		bottom := sdf.Transform3D(top, sdf.Scale3D(r3.Vec{X: 1, Y: 1, Z: -1}))
		body = sdf.Union3D(top, bottom)
	} else {
		body = sdf.TwistExtrude3D(prof, g.Width, twist)
	}

	if g.InternalOutsideDiameter > 0 {
		rim, err := form3.Cylinder(g.Width, g.InternalOutsideDiameter/2, 0)
		if err != nil {
			return nil, fmt.Errorf("internal gear rim: %w", err)
		}
		body = sdf.Difference3D(rim, body)
	}
	return body, nil
}

// RackSolid returns the 3D rack body, profile extruded across the face.
func RackSolid(r gears.Rack) (sdf.SDF3, error) {
	prof, err := RackProfile(r)
	if err != nil {
		return nil, err
	}
	return sdf.Extrude3D(prof, r.Width), nil
}
