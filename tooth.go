package gears

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToothConfig controls tooth profile sampling.
type ToothConfig struct {
	// Points is the number of samples per flank. Zero selects the default
	// of 10, values below 2 are raised to 2.
	Points int
	// ZShift is the z coordinate given to every sampled point.
	ZShift float64
	// Rotation places the tooth around the gear. Successive teeth of a
	// full gear sit at 2π·i/teeth.
	Rotation float64
}

func (c ToothConfig) defaults() ToothConfig {
	if c.Points == 0 {
		c.Points = 10
	}
	if c.Points < 2 {
		c.Points = 2
	}
	return c
}

// TipKind describes how the outer end of a tooth is closed.
type TipKind int

const (
	// TipArc closes the tooth with a circular arc about the gear center.
	TipArc TipKind = iota
	// TipChord closes the tooth with a straight chord between the flank
	// ends. Used on high tooth counts where the tip arc is negligible.
	TipChord
	// TipClipped means the flanks crossed before reaching the outside
	// diameter and were truncated at the crossing point. The tooth is
	// pointed and has no tip curve.
	TipClipped
)

// Arc is a circular arc in a plane of constant z, swept counterclockwise
// from Start by Sweep radians about Center.
type Arc struct {
	Center r3.Vec
	Radius float64
	Start  float64
	Sweep  float64
}

// Points samples the arc into facets segments, returning facets+1 points
// including both endpoints.
func (a Arc) Points(facets int) []r3.Vec {
	if facets < 1 {
		facets = 1
	}
	pts := make([]r3.Vec, facets+1)
	for i := range pts {
		ang := a.Start + a.Sweep*float64(i)/float64(facets)
		pts[i] = r3.Vec{
			X: a.Center.X + a.Radius*math.Cos(ang),
			Y: a.Center.Y + a.Radius*math.Sin(ang),
			Z: a.Center.Z,
		}
	}
	return pts
}

// Tooth is the sampled boundary of a single gear tooth. Flank1 runs from
// the root toward the tip on the clockwise side of the tooth axis, Flank2
// is its mirror on the counterclockwise side. The tip is closed per TipKind.
// Root is the arc beneath the tooth and RootGap the arc spanning the gap to
// the next tooth, both at slightly less than the root radius.
type Tooth struct {
	Flank1 []r3.Vec
	Flank2 []r3.Vec

	TipKind TipKind
	// Tip is set when TipKind is TipArc.
	Tip Arc
	// Crossing is the flank intersection point when TipKind is TipClipped.
	Crossing r3.Vec

	Root    Arc
	RootGap Arc

	// Key holds diagnostic points: flank starts, flank midpoints and the
	// tip end points or the crossing point.
	Key []r3.Vec
}

// Tooth samples the boundary of one tooth. It is deterministic: identical
// gears and configs produce bit-identical output. An error is returned when
// the flank curves cross each other more than once, which indicates a
// geometrically inconsistent gear that basic validation cannot catch.
func (g Gear) Tooth(cfg ToothConfig) (Tooth, error) {
	cfg = cfg.defaults()
	rb := g.BaseDiameter / 2
	rootR := g.RootDiameter / 2
	outR := g.OutsideDiameter / 2
	startR := math.Max(rb, rootR)

	// Registration rotation centers the tooth on the local x axis: the
	// quarter tooth arc, the polar angle of the pitch point on the raw
	// involute and the backlash allowance. A shifted cutter also thickens
	// the tooth by 2·shift·tan(α) at the pitch line, so each flank rotates
	// a further 2·shift·tan(α)/z away from the axis; the flank placement
	// tracks the shift the same way Mesh does for the center distance.
	shiftAngle := 2 * g.ProfileShift * math.Tan(g.PressureAngle) / float64(g.Teeth)
	reg := g.ToothArcAngle()/4 + Involute(g.PressureAngle) - g.BacklashAngle()/4 + shiftAngle

	n := cfg.Points
	flank1 := make([]r3.Vec, n)
	flank2 := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		r := startR + (outR-startR)*float64(i)/float64(n-1)
		p := rotateZ(InvolutePoint(rb, r, cfg.ZShift), -reg)
		flank1[i] = rotateZ(p, cfg.Rotation)
		flank2[i] = rotateZ(mirrorY(p), cfg.Rotation)
	}

	t := Tooth{Flank1: flank1, Flank2: flank2}

	crossings := polylineIntersections(flank1, flank2)
	switch len(crossings) {
	case 0:
		a1 := math.Atan2(flank1[n-1].Y, flank1[n-1].X)
		a2 := math.Atan2(flank2[n-1].Y, flank2[n-1].X)
		if g.Teeth >= 100 {
			t.TipKind = TipChord
		} else {
			t.TipKind = TipArc
			t.Tip = Arc{
				Center: r3.Vec{Z: cfg.ZShift},
				Radius: math.Hypot(flank1[n-1].X, flank1[n-1].Y),
				Start:  a1,
				Sweep:  normalizeAngle(a2 - a1),
			}
		}
	case 1:
		t.TipKind = TipClipped
		t.Crossing = crossings[0]
		t.Flank1 = clipAt(flank1, crossings[0])
		t.Flank2 = clipAt(flank2, crossings[0])
	default:
		return Tooth{}, errors.New("tooth flanks cross more than once")
	}

	// Root arcs, slightly shrunk so their endpoints never coincide with
	// the flank start points.
	c1 := math.Atan2(t.Flank1[0].Y, t.Flank1[0].X)
	c2 := math.Atan2(t.Flank2[0].Y, t.Flank2[0].X)
	span := normalizeAngle(c2 - c1)
	t.Root = Arc{
		Center: r3.Vec{Z: cfg.ZShift},
		Radius: rootR - rootArcShrink,
		Start:  c1,
		Sweep:  span,
	}
	t.RootGap = Arc{
		Center: r3.Vec{Z: cfg.ZShift},
		Radius: rootR - rootArcShrink,
		Start:  c2,
		Sweep:  g.ToothArcAngle() - span,
	}

	t.Key = append(t.Key, t.Flank1[0], t.Flank2[0],
		t.Flank1[len(t.Flank1)/2], t.Flank2[len(t.Flank2)/2])
	if t.TipKind == TipClipped {
		t.Key = append(t.Key, t.Crossing)
	} else {
		t.Key = append(t.Key, t.Flank1[len(t.Flank1)-1], t.Flank2[len(t.Flank2)-1])
	}
	return t, nil
}

// Outline samples the full closed gear boundary as a counterclockwise 2D
// polygon suitable for a modeler: per tooth, flank, tip closure, mirrored
// flank and root gap arc. pointsPerFlank and arcFacets of zero select the
// tooth sampler defaults and 8 facets per arc.
func (g Gear) Outline(pointsPerFlank, arcFacets int) ([]r2.Vec, error) {
	if arcFacets < 1 {
		arcFacets = 8
	}
	rootR := g.RootDiameter / 2
	var poly []r2.Vec
	push := func(p r3.Vec) {
		v := r2.Vec{X: p.X, Y: p.Y}
		if n := len(poly); n > 0 {
			last := poly[n-1]
			if math.Hypot(v.X-last.X, v.Y-last.Y) < tolerance {
				return
			}
		}
		poly = append(poly, v)
	}
	for i := 0; i < g.Teeth; i++ {
		t, err := g.Tooth(ToothConfig{Points: pointsPerFlank, Rotation: g.ToothArcAngle() * float64(i)})
		if err != nil {
			return nil, err
		}
		for _, p := range t.Flank1 {
			push(p)
		}
		switch t.TipKind {
		case TipArc:
			for _, p := range t.Tip.Points(arcFacets) {
				push(p)
			}
		case TipClipped:
			push(t.Crossing)
		}
		for j := len(t.Flank2) - 1; j >= 0; j-- {
			push(t.Flank2[j])
		}
		// Gap arc at the exact root radius; the polygon edges close the
		// short radial runs to the flank starts.
		gap := t.RootGap
		gap.Radius = rootR
		for _, p := range gap.Points(arcFacets) {
			push(p)
		}
	}
	// Drop a closing vertex coincident with the start.
	if n := len(poly); n > 1 {
		if math.Hypot(poly[n-1].X-poly[0].X, poly[n-1].Y-poly[0].Y) < tolerance {
			poly = poly[:n-1]
		}
	}
	return poly, nil
}

func rotateZ(p r3.Vec, angle float64) r3.Vec {
	sin, cos := math.Sincos(angle)
	return r3.Vec{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos, Z: p.Z}
}

func mirrorY(p r3.Vec) r3.Vec {
	return r3.Vec{X: p.X, Y: -p.Y, Z: p.Z}
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	return a
}

// polylineIntersections returns the distinct intersection points of two
// polylines, ignoring shared endpoints within tolerance.
func polylineIntersections(a, b []r3.Vec) []r3.Vec {
	var hits []r3.Vec
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			p, ok := segmentIntersection(a[i], a[i+1], b[j], b[j+1])
			if !ok {
				continue
			}
			dup := false
			for _, h := range hits {
				if math.Hypot(h.X-p.X, h.Y-p.Y) < tolerance {
					dup = true
					break
				}
			}
			if !dup {
				hits = append(hits, p)
			}
		}
	}
	return hits
}

// segmentIntersection intersects segments p1p2 and p3p4 in the xy plane.
func segmentIntersection(p1, p2, p3, p4 r3.Vec) (r3.Vec, bool) {
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p4.X-p3.X, p4.Y-p3.Y
	den := d1x*d2y - d1y*d2x
	if math.Abs(den) < tolerance*tolerance {
		return r3.Vec{}, false
	}
	s := ((p3.X-p1.X)*d2y - (p3.Y-p1.Y)*d2x) / den
	u := ((p3.X-p1.X)*d1y - (p3.Y-p1.Y)*d1x) / den
	if s < 0 || s > 1 || u < 0 || u > 1 {
		return r3.Vec{}, false
	}
	return r3.Vec{X: p1.X + s*d1x, Y: p1.Y + s*d1y, Z: p1.Z}, true
}

// clipAt truncates a flank at a crossing point. Flank radii increase
// monotonically, so everything at or beyond the crossing radius goes.
func clipAt(flank []r3.Vec, crossing r3.Vec) []r3.Vec {
	rc := math.Hypot(crossing.X, crossing.Y)
	out := flank[:0:0]
	for _, p := range flank {
		if math.Hypot(p.X, p.Y) >= rc-tolerance {
			break
		}
		out = append(out, p)
	}
	return append(out, crossing)
}
