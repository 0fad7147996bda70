package main

import (
	"fmt"

	"github.com/soypat/gears"
	"github.com/spf13/cobra"
)

// gearFlags is the flag set shared by every subcommand that takes a single
// gear definition. Angles are taken in degrees on the command line.
type gearFlags struct {
	teeth         int
	module        float64
	pressureAngle float64
	helixAngle    float64
	system        string
	backlash      float64
	addendum      float64
	dedendum      float64
	width         float64
	profileShift  float64
	herringbone   bool
	internalOD    float64
}

func (f *gearFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.teeth, "teeth", 16, "tooth count")
	fl.Float64Var(&f.module, "module", 1, "module (normal or radial per --system)")
	fl.Float64Var(&f.pressureAngle, "pressure-angle", 20, "pressure angle in degrees")
	fl.Float64Var(&f.helixAngle, "helix-angle", 0, "helix angle in degrees, negative for left handed")
	fl.StringVar(&f.system, "system", "normal", "normal, radial, sunderland or a named tooth system")
	fl.Float64Var(&f.backlash, "backlash", 0, "backlash between mating teeth")
	fl.Float64Var(&f.addendum, "addendum", 1, "addendum factor in modules")
	fl.Float64Var(&f.dedendum, "dedendum", 1.25, "dedendum factor in modules")
	fl.Float64Var(&f.width, "width", 1, "gear width along the axis")
	fl.Float64Var(&f.profileShift, "profile-shift", 0, "profile shift coefficient")
	fl.BoolVar(&f.herringbone, "herringbone", false, "double helical gear")
	fl.Float64Var(&f.internalOD, "internal-od", 0, "rim diameter of an internal gear, 0 for external")
}

// gear builds and validates the gear described by the flags.
func (f *gearFlags) gear() (gears.Gear, error) {
	spec := gears.Spec{
		Teeth:                   f.teeth,
		Module:                  f.module,
		PressureAngle:           gears.DtoR(f.pressureAngle),
		HelixAngle:              gears.DtoR(f.helixAngle),
		Backlash:                f.backlash,
		Addendum:                f.addendum,
		Dedendum:                f.dedendum,
		Width:                   f.width,
		Herringbone:             f.herringbone,
		ProfileShift:            f.profileShift,
		InternalOutsideDiameter: f.internalOD,
	}
	var g gears.Gear
	switch f.system {
	case "normal":
		g = gears.NormalSystem(spec)
	case "radial":
		g = gears.RadialSystem(spec)
	case "sunderland":
		g = gears.Sunderland(spec)
	default:
		ts, err := gears.LookupSystem(f.system)
		if err != nil {
			return gears.Gear{}, err
		}
		g = gears.NormalSystem(ts.Apply(spec))
	}
	if err := g.Validate(); err != nil {
		return gears.Gear{}, fmt.Errorf("invalid gear: %w", err)
	}
	return g, nil
}
