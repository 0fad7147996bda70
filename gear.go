package gears

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Spec is the design input for a round gear. The zero value is not a usable
// gear; at minimum Teeth, Module and Width must be set. Module and
// PressureAngle are interpreted in the normal or in the radial (transverse)
// system depending on the factory the spec is passed to.
type Spec struct {
	// Teeth is the tooth count. Values below 1 are clamped to 1.
	Teeth int
	// Module is the fundamental tooth size unit, pitch diameter over tooth
	// count. Meshing gears must share it. Non-positive values are replaced
	// by a tiny epsilon so the factories stay total; Validate reports them.
	Module float64
	// PressureAngle is the angle of the line of action at the pitch point
	// in radians. Common values are 20 and 14.5 degrees.
	PressureAngle float64
	// HelixAngle is the tooth twist angle in radians, measured from the
	// gear axis. Zero produces a spur gear, negative values a left-handed
	// gear.
	HelixAngle float64
	// Backlash is the gap between mating teeth at correct spacing. It is
	// split between both gears of a mesh and may be negative.
	Backlash float64
	// Addendum is the factor by which a tooth extends past the pitch
	// circle, in modules. Zero selects the standard value 1.
	Addendum float64
	// Dedendum is the factor by which the root lies below the pitch
	// circle, in modules. Zero selects the standard value 1.25.
	Dedendum float64
	// Width is the gear thickness along its axis.
	Width float64
	// Herringbone marks a double-helical gear. It does not change the
	// tooth profile, only how a modeler sweeps it.
	Herringbone bool
	// ProfileShift is the dimensionless profile shift coefficient, the
	// offset of the cutting rack datum line from the pitch circle in
	// modules. Used to avoid undercut on low tooth counts.
	ProfileShift float64
	// InternalOutsideDiameter, when positive, marks an internal (ring)
	// gear with the given outer rim diameter.
	InternalOutsideDiameter float64
}

// defaults returns the spec with clamps and zero-value substitutions
// applied. Out-of-range angles are deliberately carried through unchanged;
// Validate reports them instead of silently zeroing.
func (s Spec) defaults() Spec {
	if s.Teeth < 1 {
		s.Teeth = 1
	}
	if s.Module <= 0 {
		s.Module = moduleFloor
	}
	if s.Addendum == 0 {
		s.Addendum = 1
	}
	if s.Dedendum == 0 {
		s.Dedendum = 1.25
	}
	return s
}

// Gear holds the derived dimensional parameters of a gear. It is computed
// once from a Spec by NormalSystem, RadialSystem or Sunderland and is a pure
// function of its inputs; to change a parameter, derive a new Gear.
type Gear struct {
	// Inputs carried over from the Spec.
	Teeth                   int
	HelixAngle              float64
	Backlash                float64
	Width                   float64
	Herringbone             bool
	ProfileShift            float64
	InternalOutsideDiameter float64

	// Normal system figures, measured perpendicular to the tooth.
	NormalModule        float64
	NormalPressureAngle float64
	NormalCircularPitch float64

	// VirtualTeeth is the tooth count of the equivalent spur gear,
	// toothCount/cos³(helixAngle). Used by the undercut test.
	VirtualTeeth float64

	// Radial (transverse) figures, measured in the plane of rotation.
	Module        float64
	PressureAngle float64
	PitchDiameter float64
	BaseDiameter  float64
	Addendum      float64
	WholeDepth    float64

	OutsideDiameter float64
	RootDiameter    float64
	CircularPitch   float64
}

// NormalSystem derives a gear from a spec whose module and pressure angle
// are measured perpendicular to the tooth, as cut by a standard hob.
func NormalSystem(s Spec) Gear {
	s = s.defaults()
	g := carryover(s)
	cosH := math.Cos(s.HelixAngle)

	g.NormalModule = s.Module
	g.NormalPressureAngle = s.PressureAngle
	g.NormalCircularPitch = g.NormalModule * pi
	g.VirtualTeeth = float64(g.Teeth) / (cosH * cosH * cosH)

	g.Module = g.NormalModule / cosH
	g.PressureAngle = math.Atan2(math.Tan(g.NormalPressureAngle), cosH)
	g.Addendum = s.Addendum * g.NormalModule
	g.WholeDepth = (s.Addendum + s.Dedendum) * g.NormalModule
	g.finish()
	return g
}

// RadialSystem derives a gear from a spec whose module and pressure angle
// are measured in the plane of rotation.
func RadialSystem(s Spec) Gear {
	s = s.defaults()
	g := carryover(s)
	cosH := math.Cos(s.HelixAngle)

	g.NormalModule = s.Module * cosH
	g.NormalPressureAngle = math.Atan(math.Tan(s.PressureAngle) * cosH)
	g.NormalCircularPitch = g.NormalModule * pi
	g.VirtualTeeth = float64(g.Teeth) / (cosH * cosH * cosH)

	g.Module = s.Module
	g.PressureAngle = s.PressureAngle
	g.Addendum = s.Addendum * g.Module
	g.WholeDepth = (s.Addendum + s.Dedendum) * g.Module
	g.finish()
	return g
}

// Sunderland derives a gear cut on a Sunderland machine, commonly used for
// double helical (herringbone) gears. The radial pressure angle and the
// helix angle are fixed at 20 and 22.5 degrees and the tooth profile is
// slightly shorter than the equivalent radial system gear. The spec's
// PressureAngle, HelixAngle, Addendum and Dedendum fields are ignored.
func Sunderland(s Spec) Gear {
	s.HelixAngle = DtoR(22.5)
	s.PressureAngle = DtoR(20)
	// Sunderland proportions: addendum 0.8796 m, whole depth 1.8849 m.
	s.Addendum = 0.8796
	s.Dedendum = 1.8849 - 0.8796
	return RadialSystem(s)
}

func carryover(s Spec) Gear {
	return Gear{
		Teeth:                   s.Teeth,
		HelixAngle:              s.HelixAngle,
		Backlash:                s.Backlash,
		Width:                   s.Width,
		Herringbone:             s.Herringbone,
		ProfileShift:            s.ProfileShift,
		InternalOutsideDiameter: s.InternalOutsideDiameter,
	}
}

// finish computes the diameter chain shared by all factories.
func (g *Gear) finish() {
	g.PitchDiameter = g.Module * float64(g.Teeth)
	g.BaseDiameter = g.PitchDiameter * math.Cos(g.PressureAngle)
	g.OutsideDiameter = g.PitchDiameter + 2*g.Addendum
	g.RootDiameter = g.OutsideDiameter - 2*g.WholeDepth
	g.CircularPitch = g.Module * pi
}

// BacklashAngle is the angular play corresponding to the backlash at the
// pitch circle. Each side of a tooth is narrowed by a quarter of it, the
// remaining half being contributed by the mating gear.
func (g Gear) BacklashAngle() float64 {
	if g.PitchDiameter <= 0 {
		return 0
	}
	return 2 * g.Backlash / g.PitchDiameter
}

// ToothArcAngle is the arc angle spanned by a single tooth and its gap.
func (g Gear) ToothArcAngle() float64 {
	if g.Teeth <= 0 {
		return 0
	}
	return tau / float64(g.Teeth)
}

// TipPressureAngle is the pressure angle at the tip of the tooth.
func (g Gear) TipPressureAngle() float64 {
	return math.Acos(g.BaseDiameter / g.OutsideDiameter)
}

// CriticalVirtualTeeth is the virtual tooth count below which the cutting
// tool undercuts the involute flank at the root.
func (g Gear) CriticalVirtualTeeth() float64 {
	sin := math.Sin(g.NormalPressureAngle)
	q := sin * sin
	if q == 0 {
		return math.Inf(1)
	}
	return 2 * (1 - g.ProfileShift) / q
}

// UndercutRequired reports whether cutting this gear undercuts the tooth
// root, weakening the tooth. Increase the tooth count, the pressure angle
// or the profile shift to avoid it.
func (g Gear) UndercutRequired() bool {
	return g.VirtualTeeth < g.CriticalVirtualTeeth()
}

// VerticalLoopSeparation is the signed axial distance the tooth helix
// advances per full turn around the gear. It is infinite for a spur gear.
func (g Gear) VerticalLoopSeparation() float64 {
	if g.HelixAngle == 0 {
		return math.Inf(1)
	}
	return math.Tan(pi/2+g.HelixAngle) * g.PitchDiameter * pi
}

// PitchHelix is the helix traced by a tooth on the pitch cylinder.
func (g Gear) PitchHelix() Helix {
	return Helix{
		Radius: g.PitchDiameter / 2,
		Angle:  pi/2 - g.HelixAngle,
	}
}

// Validate checks the gear's parameters and derived geometry, returning nil
// or the first failing check. The factories never reject inputs, so
// Validate must be consulted before a gear's geometry is used.
func (g Gear) Validate() error {
	switch {
	case g.Width <= 0:
		return errors.New("width too small")
	case g.HelixAngle < -pi/2:
		return errors.New("helix angle too small")
	case g.HelixAngle > pi/2:
		return errors.New("helix angle too large")
	case g.Module <= moduleFloor:
		return errors.New("module too small")
	case g.Addendum <= 0:
		return errors.New("addendum too small")
	case g.WholeDepth <= 0:
		return errors.New("dedendum too small")
	case g.PressureAngle < 0:
		return errors.New("pressure angle too small")
	case g.PressureAngle > DtoR(80):
		return errors.New("pressure angle too large")
	case g.NormalPressureAngle < 0:
		return errors.New("normal pressure angle too small")
	case g.NormalPressureAngle > DtoR(80):
		return errors.New("normal pressure angle too large")
	case g.Teeth <= 0:
		return errors.New("too few teeth")
	case math.Abs(g.BacklashAngle())/4 >= g.ToothArcAngle()/8:
		return errors.New("backlash too large")
	case g.InternalOutsideDiameter > 0 && g.InternalOutsideDiameter <= g.OutsideDiameter:
		return errors.New("internal outside diameter too small")
	case g.CircularPitch <= 0:
		return errors.New("circular pitch not positive")
	case g.BaseDiameter <= 0:
		return errors.New("base diameter not positive")
	case g.PitchDiameter <= 0:
		return errors.New("pitch diameter not positive")
	case g.RootDiameter <= minRootDiameter:
		return errors.New("root diameter below minimum")
	case g.OutsideDiameter <= 0:
		return errors.New("outside diameter not positive")
	}
	return nil
}

// String returns a multi-line dimensional report of the gear.
func (g Gear) String() string {
	var b strings.Builder
	if g.UndercutRequired() {
		fmt.Fprintf(&b, "UNDERCUT REQUIRED\n")
		fmt.Fprintf(&b, "  critical virtual teeth: %.3f\n", g.CriticalVirtualTeeth())
		fmt.Fprintf(&b, "  virtual teeth.........: %.3f\n\n", g.VirtualTeeth)
	}
	fmt.Fprintf(&b, "teeth................: %d\n", g.Teeth)
	fmt.Fprintf(&b, "module...............: %.4f\n", g.Module)
	fmt.Fprintf(&b, "pressure angle.......: %.3f deg\n", RtoD(g.PressureAngle))
	fmt.Fprintf(&b, "helix angle..........: %.3f deg\n", RtoD(g.HelixAngle))
	fmt.Fprintf(&b, "circular pitch.......: %.4f\n", g.CircularPitch)
	fmt.Fprintf(&b, "addendum.............: %.4f\n", g.Addendum)
	fmt.Fprintf(&b, "whole depth..........: %.4f\n", g.WholeDepth)
	fmt.Fprintf(&b, "backlash.............: %.4f\n", g.Backlash)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "virtual teeth........: %.3f\n", g.VirtualTeeth)
	fmt.Fprintf(&b, "normal module........: %.4f\n", g.NormalModule)
	fmt.Fprintf(&b, "normal pressure angle: %.3f deg\n", RtoD(g.NormalPressureAngle))
	fmt.Fprintf(&b, "normal circular pitch: %.4f\n", g.NormalCircularPitch)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "root diameter........: %.4f\n", g.RootDiameter)
	fmt.Fprintf(&b, "base diameter........: %.4f\n", g.BaseDiameter)
	fmt.Fprintf(&b, "pitch diameter.......: %.4f\n", g.PitchDiameter)
	fmt.Fprintf(&b, "outside diameter.....: %.4f\n", g.OutsideDiameter)
	if g.HelixAngle != 0 {
		fmt.Fprintf(&b, "\n")
		fmt.Fprintf(&b, "length per revolution: %.4f\n", math.Abs(g.VerticalLoopSeparation()))
	}
	return b.String()
}
