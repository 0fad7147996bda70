package gears

import (
	"math"
	"strings"
	"testing"
)

func TestRackNormalRadialRoundTrip(t *testing.T) {
	spec := RackSpec{
		Module:        2,
		PressureAngle: DtoR(20),
		HelixAngle:    DtoR(30),
		Length:        40, Width: 8, Height: 10,
	}
	rn := RackNormalSystem(spec)
	rr := RackRadialSystem(RackSpec{
		Module:        rn.Module,
		PressureAngle: rn.PressureAngle,
		HelixAngle:    spec.HelixAngle,
		Length:        40, Width: 8, Height: 10,
	})
	if !EqualFloat64(rr.NormalModule, 2, 1e-9) {
		t.Errorf("round trip normal module: got %g, want 2", rr.NormalModule)
	}
	if !EqualFloat64(rr.NormalPressureAngle, DtoR(20), 1e-9) {
		t.Errorf("round trip normal pressure angle: got %g, want %g",
			rr.NormalPressureAngle, DtoR(20))
	}
}

func TestRackTeeth(t *testing.T) {
	r := RackNormalSystem(RackSpec{
		Module: 2, PressureAngle: DtoR(20),
		Length: 20, Width: 5, Height: 6,
	})
	if got, want := r.Teeth(), 4; got != want {
		t.Errorf("spur rack teeth: got %d, want %d", got, want)
	}
	// Slanted teeth need extra cover for the face corners.
	h := RackNormalSystem(RackSpec{
		Module: 2, PressureAngle: DtoR(20), HelixAngle: DtoR(30),
		Length: 20, Width: 5, Height: 6,
	})
	if h.Teeth() <= r.Teeth() {
		t.Errorf("helical rack teeth %d not above spur rack teeth %d", h.Teeth(), r.Teeth())
	}
}

func TestRackOutlinePitch(t *testing.T) {
	r := RackRadialSystem(RackSpec{
		Module: 2, PressureAngle: DtoR(20), HelixAngle: DtoR(30),
		Length: 40, Width: 8, Height: 10,
	})
	const teeth = 3
	poly := r.Outline(teeth)
	if len(poly) != 4*teeth+3 {
		t.Fatalf("outline vertex count: got %d, want %d", len(poly), 4*teeth+3)
	}
	// Consecutive tooth roots are one transverse circular pitch apart:
	// the normal pitch drawn on the profile, stretched by the slant.
	want := r.Module * pi
	for i := 0; i+1 < teeth; i++ {
		a := poly[2+4*i+3]
		b := poly[2+4*(i+1)+3]
		if math.Abs(b.X-a.X-want) > 1e-9 {
			t.Errorf("tooth %d pitch: got %g, want %g", i, b.X-a.X, want)
		}
	}
	// Profile spans from the back of the bar to the addendum line.
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	if minY != -r.Height {
		t.Errorf("outline bottom: got %g, want %g", minY, -r.Height)
	}
	if math.Abs(maxY-r.Addendum) > 1e-9 {
		t.Errorf("outline top: got %g, want %g", maxY, r.Addendum)
	}
}

func TestRackMeshesWithGear(t *testing.T) {
	// A rack and a gear cut with the same hob must share their pitch: the
	// rack's tooth spacing along the pitch line has to equal the gear's
	// transverse circular pitch or the pair binds.
	r := RackNormalSystem(RackSpec{
		Module: 2, PressureAngle: DtoR(20), HelixAngle: DtoR(30),
		Length: 60, Width: 8, Height: 10,
	})
	g := NormalSystem(Spec{
		Teeth: 20, Module: 2, PressureAngle: DtoR(20), HelixAngle: DtoR(30),
		Width: 8,
	})
	poly := r.Outline(3)
	spacing := poly[2+4+3].X - poly[2+3].X
	if math.Abs(spacing-g.CircularPitch) > 1e-9 {
		t.Errorf("rack tooth spacing %g != gear transverse circular pitch %g",
			spacing, g.CircularPitch)
	}
	if !EqualFloat64(r.Module, g.Module, 1e-12) {
		t.Errorf("rack transverse module %g != gear transverse module %g",
			r.Module, g.Module)
	}
}

func TestRackValidate(t *testing.T) {
	valid := RackSpec{Module: 2, PressureAngle: DtoR(20), Length: 40, Width: 8, Height: 10}
	if err := RackNormalSystem(valid).Validate(); err != nil {
		t.Fatalf("baseline rack invalid: %v", err)
	}
	cases := []struct {
		desc string
		mod  func(RackSpec) RackSpec
		want string
	}{
		{"zero length", func(s RackSpec) RackSpec { s.Length = 0; return s }, "length"},
		{"zero height", func(s RackSpec) RackSpec { s.Height = 0; return s }, "height"},
		{"negative module", func(s RackSpec) RackSpec { s.Module = -1; return s }, "module"},
		{"flat pressure angle", func(s RackSpec) RackSpec { s.PressureAngle = 0; return s }, "pressure angle"},
		{"big backlash", func(s RackSpec) RackSpec { s.Backlash = 7; return s }, "backlash too large"},
		{"big negative backlash", func(s RackSpec) RackSpec { s.Backlash = -7; return s }, "backlash too small"},
	}
	for _, c := range cases {
		err := RackNormalSystem(c.mod(valid)).Validate()
		if err == nil {
			t.Errorf("%s: expected error", c.desc)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: got %q, want mention of %q", c.desc, err, c.want)
		}
	}
}
