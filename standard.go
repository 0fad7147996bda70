package gears

import "fmt"

// ToothSystem is a named set of standard tooth proportions.
type ToothSystem struct {
	Name string
	// PressureAngle in radians.
	PressureAngle float64
	// Addendum and Dedendum factors in modules.
	Addendum float64
	Dedendum float64
	// HelixAngle is fixed by the system when non-zero (Sunderland).
	HelixAngle float64
}

// Apply copies the system's proportions onto a spec, leaving the spec's
// other fields alone.
func (ts ToothSystem) Apply(s Spec) Spec {
	s.PressureAngle = ts.PressureAngle
	s.Addendum = ts.Addendum
	s.Dedendum = ts.Dedendum
	if ts.HelixAngle != 0 {
		s.HelixAngle = ts.HelixAngle
	}
	return s
}

var systemDB = initSystemDB()

func initSystemDB() map[string]ToothSystem {
	db := make(map[string]ToothSystem)
	add := func(ts ToothSystem) { db[ts.Name] = ts }
	add(ToothSystem{Name: "iso", PressureAngle: DtoR(20), Addendum: 1, Dedendum: 1.25})
	add(ToothSystem{Name: "full-depth-14.5", PressureAngle: DtoR(14.5), Addendum: 1, Dedendum: 1.25})
	add(ToothSystem{Name: "stub", PressureAngle: DtoR(20), Addendum: 0.8, Dedendum: 1})
	add(ToothSystem{Name: "sunderland", PressureAngle: DtoR(20), Addendum: 0.8796,
		Dedendum: 1.8849 - 0.8796, HelixAngle: DtoR(22.5)})
	return db
}

// LookupSystem returns the named tooth system. Returns an error if the
// system is not found in the database.
func LookupSystem(name string) (ToothSystem, error) {
	if ts, ok := systemDB[name]; ok {
		return ts, nil
	}
	return ToothSystem{}, fmt.Errorf("tooth system %q not found", name)
}

// SystemNames returns the names of all tooth systems in the database.
func SystemNames() []string {
	names := make([]string, 0, len(systemDB))
	for n := range systemDB {
		names = append(names, n)
	}
	return names
}
