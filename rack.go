package gears

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// RackSpec is the design input for a gear rack, the straight bar that
// meshes with a round gear of the same module and pressure angle.
type RackSpec struct {
	// Module and PressureAngle in the system the factory interprets.
	Module        float64
	PressureAngle float64
	// HelixAngle slants the teeth across the rack face.
	HelixAngle  float64
	Herringbone bool
	// Length along the direction of travel, Width across the face and
	// Height from the pitch line down to the back of the bar.
	Length, Width, Height float64
	Backlash              float64
	// Addendum and Dedendum factors in modules; zero selects 1 and 1.25.
	Addendum, Dedendum float64
}

func (s RackSpec) defaults() RackSpec {
	if s.Addendum == 0 {
		s.Addendum = 1
	}
	if s.Dedendum == 0 {
		s.Dedendum = 1.25
	}
	return s
}

// Rack holds the derived parameters of a gear rack.
type Rack struct {
	NormalModule        float64
	NormalPressureAngle float64
	Module              float64
	PressureAngle       float64
	HelixAngle          float64
	Herringbone         bool

	Length, Width, Height float64
	Backlash              float64

	// Addendum and Dedendum as lengths above and below the pitch line,
	// measured in the normal plane like the cutter that makes them.
	Addendum, Dedendum float64
}

// RackNormalSystem derives a rack from a spec measured perpendicular to the
// tooth.
func RackNormalSystem(s RackSpec) Rack {
	s = s.defaults()
	r := rackCarryover(s)
	cosH := math.Cos(s.HelixAngle)

	r.NormalModule = s.Module
	r.NormalPressureAngle = s.PressureAngle
	r.Addendum = s.Addendum * r.NormalModule
	r.Dedendum = s.Dedendum * r.NormalModule

	r.Module = r.NormalModule / cosH
	r.PressureAngle = math.Atan2(math.Tan(r.NormalPressureAngle), cosH)
	return r
}

// RackRadialSystem derives a rack from a spec measured in the plane of
// travel.
func RackRadialSystem(s RackSpec) Rack {
	s = s.defaults()
	r := rackCarryover(s)
	cosH := math.Cos(s.HelixAngle)

	r.Module = s.Module
	r.PressureAngle = s.PressureAngle

	r.NormalModule = r.Module * cosH
	r.NormalPressureAngle = math.Atan(math.Tan(r.PressureAngle) * cosH)
	r.Addendum = s.Addendum * r.NormalModule
	r.Dedendum = s.Dedendum * r.NormalModule
	return r
}

func rackCarryover(s RackSpec) Rack {
	return Rack{
		HelixAngle:  s.HelixAngle,
		Herringbone: s.Herringbone,
		Length:      s.Length,
		Width:       s.Width,
		Height:      s.Height,
		Backlash:    s.Backlash,
	}
}

// Validate checks the rack's parameters, returning nil or the first failing
// check.
func (r Rack) Validate() error {
	switch {
	case r.Length <= 0:
		return errors.New("length too small")
	case r.Width <= 0:
		return errors.New("width too small")
	case r.Height <= 0:
		return errors.New("height too small")
	case r.Module <= 0:
		return errors.New("module too small")
	case r.Addendum < 0:
		return errors.New("addendum too small")
	case r.Dedendum < 0:
		return errors.New("dedendum too small")
	case r.Addendum+r.Dedendum <= 0:
		return errors.New("tooth depth not positive")
	case r.PressureAngle <= 0 || r.PressureAngle >= pi/2:
		return errors.New("pressure angle out of range")
	case r.HelixAngle <= -pi/2 || r.HelixAngle >= pi/2:
		return errors.New("helix angle out of range")
	// Not the exact bound but close enough for any sane rack.
	case r.Backlash < -3*r.NormalModule:
		return errors.New("backlash too small")
	case r.Backlash > 3*r.NormalModule:
		return errors.New("backlash too large")
	}
	return nil
}

// Teeth is the tooth count needed to cover the rack's length, padded so
// slanted teeth still cover the corners of the face.
func (r Rack) Teeth() int {
	return int(math.Ceil(
		(r.Length + 2*math.Tan(math.Abs(r.HelixAngle))*r.Width) /
			(r.NormalModule * pi)))
}

// Outline returns the closed cross-section polygon of the rack with the
// given number of teeth, zero meaning Teeth(). X runs along the rack, Y is
// height with the pitch line at zero. Teeth are drawn in the normal plane,
// trapezoids at the normal pressure angle on the normal circular pitch,
// then stretched along the rack by 1/cos(helixAngle), which lands the tooth
// spacing on the transverse circular pitch of the mating gear. The addendum
// and dedendum are clamped so adjacent flanks never cross and the root
// never drops below the back of the bar.
func (r Rack) Outline(teeth int) []r2.Vec {
	if teeth <= 0 {
		teeth = r.Teeth()
	}
	stretch := 1 / math.Cos(r.HelixAngle)
	P := r.NormalModule * pi
	tan := math.Tan(r.NormalPressureAngle)
	cot := 1 / tan

	add := math.Min(r.Addendum, -0.25*(r.Backlash-P)*cot-1e-4)
	ded := math.Min(r.Dedendum, -0.25*(-r.Backlash-P)*cot-1e-4)
	ded = math.Min(ded, r.Height-1e-4)

	pts := make([]r2.Vec, 0, 4*teeth+3)
	pts = append(pts, r2.Vec{X: 0, Y: -r.Height}, r2.Vec{X: 0, Y: -ded})
	for i := 0; i < teeth; i++ {
		x0 := float64(i) * P
		pts = append(pts,
			r2.Vec{X: (x0 + P/2 + r.Backlash/2 - tan*2*ded) * stretch, Y: -ded},
			r2.Vec{X: (x0 + P/2 + r.Backlash/2 - tan*(ded-add)) * stretch, Y: add},
			r2.Vec{X: (x0 + P - tan*(ded+add)) * stretch, Y: add},
			r2.Vec{X: (x0 + P) * stretch, Y: -ded},
		)
	}
	pts = append(pts, r2.Vec{X: float64(teeth) * P * stretch, Y: -r.Height})
	return pts
}

// String returns a short dimensional report of the rack.
func (r Rack) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "module...............: %.4f\n", r.Module)
	fmt.Fprintf(&b, "normal module........: %.4f\n", r.NormalModule)
	fmt.Fprintf(&b, "pressure angle.......: %.3f deg\n", RtoD(r.PressureAngle))
	fmt.Fprintf(&b, "normal pressure angle: %.3f deg\n", RtoD(r.NormalPressureAngle))
	fmt.Fprintf(&b, "helix angle..........: %.3f deg\n", RtoD(r.HelixAngle))
	fmt.Fprintf(&b, "teeth................: %d\n", r.Teeth())
	return b.String()
}
