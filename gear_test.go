package gears

import (
	"math"
	"strings"
	"testing"
)

func TestNormalSystemHelical(t *testing.T) {
	g := NormalSystem(Spec{
		Teeth:         16,
		Module:        0.3,
		PressureAngle: DtoR(20),
		HelixAngle:    DtoR(30),
		Width:         1,
	})
	const tol = 1e-3
	if got, want := g.Module, 0.3/math.Cos(DtoR(30)); math.Abs(got-want) > tol {
		t.Errorf("module: got %g, want %g", got, want)
	}
	if got, want := RtoD(g.PressureAngle), 22.80; math.Abs(got-want) > 1e-2 {
		t.Errorf("radial pressure angle: got %g deg, want %g deg", got, want)
	}
	if got, want := g.PitchDiameter, 5.543; math.Abs(got-want) > tol {
		t.Errorf("pitch diameter: got %g, want %g", got, want)
	}
	if got, want := g.BaseDiameter, 5.1097; math.Abs(got-want) > tol {
		t.Errorf("base diameter: got %g, want %g", got, want)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("expected valid gear, got %v", err)
	}
}

func TestSpurReduction(t *testing.T) {
	g := NormalSystem(Spec{Teeth: 24, Module: 1, PressureAngle: DtoR(20), Width: 1})
	if g.NormalModule != g.Module {
		t.Errorf("spur gear normal module %g != module %g", g.NormalModule, g.Module)
	}
	if g.NormalPressureAngle != g.PressureAngle {
		t.Errorf("spur gear normal pressure angle %g != pressure angle %g",
			g.NormalPressureAngle, g.PressureAngle)
	}
	if !math.IsInf(g.VerticalLoopSeparation(), 1) {
		t.Errorf("spur gear vertical loop separation: got %g, want +Inf",
			g.VerticalLoopSeparation())
	}
	if got, want := g.VirtualTeeth, 24.0; got != want {
		t.Errorf("spur gear virtual teeth: got %g, want %g", got, want)
	}
}

func TestNormalRadialRoundTrip(t *testing.T) {
	for _, helixDeg := range []float64{-60, -30, -5, 5, 15, 30, 45, 60, 80} {
		gn := NormalSystem(Spec{
			Teeth:         17,
			Module:        0.25,
			PressureAngle: DtoR(20),
			HelixAngle:    DtoR(helixDeg),
			Width:         1,
		})
		gr := RadialSystem(Spec{
			Teeth:         17,
			Module:        gn.Module,
			PressureAngle: gn.PressureAngle,
			HelixAngle:    DtoR(helixDeg),
			Width:         1,
		})
		if !EqualFloat64(gr.NormalModule, 0.25, 1e-9) {
			t.Errorf("helix %g deg: round trip normal module: got %g, want 0.25",
				helixDeg, gr.NormalModule)
		}
		if !EqualFloat64(gr.NormalPressureAngle, DtoR(20), 1e-9) {
			t.Errorf("helix %g deg: round trip normal pressure angle: got %g, want %g",
				helixDeg, gr.NormalPressureAngle, DtoR(20))
		}
	}
}

func TestSunderland(t *testing.T) {
	g := Sunderland(Spec{Teeth: 20, Module: 2, Width: 1})
	if got, want := g.HelixAngle, DtoR(22.5); got != want {
		t.Errorf("helix angle: got %g, want %g", got, want)
	}
	if got, want := g.PressureAngle, DtoR(20); got != want {
		t.Errorf("pressure angle: got %g, want %g", got, want)
	}
	if !EqualFloat64(g.Addendum, 0.8796*g.Module, 1e-12) {
		t.Errorf("addendum: got %g, want %g", g.Addendum, 0.8796*g.Module)
	}
	if !EqualFloat64(g.WholeDepth, 1.8849*g.Module, 1e-12) {
		t.Errorf("whole depth: got %g, want %g", g.WholeDepth, 1.8849*g.Module)
	}
}

func TestUndercut(t *testing.T) {
	spec := Spec{Module: 1, PressureAngle: DtoR(20), Width: 1}

	spec.Teeth = 16
	if g := NormalSystem(spec); !g.UndercutRequired() {
		t.Errorf("16 tooth 20 deg spur gear: undercut not flagged (critical %g, virtual %g)",
			g.CriticalVirtualTeeth(), g.VirtualTeeth)
	}
	spec.Teeth = 18
	if g := NormalSystem(spec); g.UndercutRequired() {
		t.Errorf("18 tooth 20 deg spur gear: undercut flagged (critical %g, virtual %g)",
			g.CriticalVirtualTeeth(), g.VirtualTeeth)
	}

	// Boundary: equal counts mean no undercut.
	g := NormalSystem(spec)
	g.VirtualTeeth = g.CriticalVirtualTeeth()
	if g.UndercutRequired() {
		t.Error("undercut flagged at the exact critical tooth count")
	}
}

func TestValidate(t *testing.T) {
	valid := Spec{Teeth: 20, Module: 1, PressureAngle: DtoR(20), Width: 1}
	if err := NormalSystem(valid).Validate(); err != nil {
		t.Fatalf("baseline spec invalid: %v", err)
	}
	cases := []struct {
		desc string
		mod  func(Spec) Spec
		want string
	}{
		{"zero width", func(s Spec) Spec { s.Width = 0; return s }, "width"},
		{"steep helix", func(s Spec) Spec { s.HelixAngle = DtoR(91); return s }, "helix"},
		{"tiny module", func(s Spec) Spec { s.Module = -1; return s }, "module"},
		{"pressure angle 85 deg", func(s Spec) Spec { s.PressureAngle = DtoR(85); return s }, "pressure angle too large"},
		{"negative pressure angle", func(s Spec) Spec { s.PressureAngle = DtoR(-5); return s }, "pressure angle too small"},
		{"huge backlash", func(s Spec) Spec { s.Backlash = 2; return s }, "backlash"},
		{"tight internal gear", func(s Spec) Spec { s.InternalOutsideDiameter = 10; return s }, "internal"},
		{"deep dedendum", func(s Spec) Spec { s.Dedendum = 12; return s }, "root"},
	}
	for _, c := range cases {
		err := NormalSystem(c.mod(valid)).Validate()
		if err == nil {
			t.Errorf("%s: expected error", c.desc)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: got %q, want mention of %q", c.desc, err, c.want)
		}
	}
}

func TestLookupSystem(t *testing.T) {
	ts, err := LookupSystem("stub")
	if err != nil {
		t.Fatal(err)
	}
	if ts.Addendum != 0.8 || ts.Dedendum != 1 {
		t.Errorf("stub proportions: got %g/%g, want 0.8/1", ts.Addendum, ts.Dedendum)
	}
	if _, err := LookupSystem("nosuchsystem"); err == nil {
		t.Error("expected error for unknown tooth system")
	}

	// The sunderland entry must reproduce the dedicated factory.
	ts, err = LookupSystem("sunderland")
	if err != nil {
		t.Fatal(err)
	}
	spec := Spec{Teeth: 20, Module: 2, Width: 1}
	a := RadialSystem(ts.Apply(spec))
	b := Sunderland(spec)
	if a != b {
		t.Errorf("sunderland via lookup differs from factory:\n%v\n%v", a, b)
	}
}

func TestGearString(t *testing.T) {
	g := NormalSystem(Spec{Teeth: 12, Module: 1, PressureAngle: DtoR(20), Width: 1})
	s := g.String()
	if !strings.Contains(s, "teeth................: 12") {
		t.Errorf("report missing tooth count:\n%s", s)
	}
	if !strings.Contains(s, "UNDERCUT") {
		t.Errorf("report missing undercut warning for 12 tooth spur gear:\n%s", s)
	}
}
