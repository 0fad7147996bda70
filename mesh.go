package gears

import (
	"errors"
	"math"
)

// Mesh describes a pair of external gears in mesh: their tooth counts,
// profile shift coefficients and the shared cutting module and pressure
// angle. Profile shift moves the cutting rack away from the gear center,
// which thickens the teeth and pushes the pair apart; the methods here
// compute the pressure angle and center distance at which the shifted pair
// actually runs, and solve the inverse problem of choosing shifts to hit a
// desired center distance.
type Mesh struct {
	Teeth1, Teeth2 int
	Shift1, Shift2 float64
	Module         float64
	PressureAngle  float64
}

var errWorkingAngle = errors.New("working pressure angle outside (0°, 90°)")

// WorkingPressureAngle is the pressure angle at which the two profile
// shifted gears mesh. With zero shifts it equals the cutting pressure
// angle. An error is returned if the result falls outside (0°, 90°), which
// indicates shifts far beyond any usable gear pair.
func (m Mesh) WorkingPressureAngle() (float64, error) {
	sumTeeth := float64(m.Teeth1 + m.Teeth2)
	invW := 2*math.Tan(m.PressureAngle)*(m.Shift1+m.Shift2)/sumTeeth +
		Involute(m.PressureAngle)
	aw := InverseInvolute(invW)
	if aw <= 0 || aw >= pi/2 || math.IsNaN(aw) {
		return 0, errWorkingAngle
	}
	return aw, nil
}

// CenterDistanceIncrement is the center distance correction factor y, in
// modules: the amount by which the working center distance exceeds the
// standard (unshifted) one, divided by the module. Zero for zero shifts.
func (m Mesh) CenterDistanceIncrement() (float64, error) {
	aw, err := m.WorkingPressureAngle()
	if err != nil {
		return 0, err
	}
	half := float64(m.Teeth1+m.Teeth2) / 2
	return half * (math.Cos(m.PressureAngle)/math.Cos(aw) - 1), nil
}

// CenterDistance is the axis-to-axis distance at which the pair meshes.
func (m Mesh) CenterDistance() (float64, error) {
	y, err := m.CenterDistanceIncrement()
	if err != nil {
		return 0, err
	}
	half := float64(m.Teeth1+m.Teeth2) / 2
	return (half + y) * m.Module, nil
}

// SumShiftForCenterDistance solves the inverse problem: the total profile
// shift the pair must share so that it meshes at the given center distance.
// How the sum is divided between the gears is the designer's choice; see
// ShiftsForCenterDistance and ComplementShift.
func (m Mesh) SumShiftForCenterDistance(distance float64) (float64, error) {
	half := float64(m.Teeth1+m.Teeth2) / 2
	coeff := distance/m.Module - half
	cosAw := math.Cos(m.PressureAngle) / (coeff/half + 1)
	if cosAw <= 0 || cosAw >= 1 {
		return 0, errWorkingAngle
	}
	aw := math.Acos(cosAw)
	return half * (Involute(aw) - Involute(m.PressureAngle)) /
		math.Tan(m.PressureAngle), nil
}

// ShiftsForCenterDistance splits the shift required for the given center
// distance evenly between the two gears.
func (m Mesh) ShiftsForCenterDistance(distance float64) (shift1, shift2 float64, err error) {
	sum, err := m.SumShiftForCenterDistance(distance)
	if err != nil {
		return 0, 0, err
	}
	return sum / 2, sum / 2, nil
}

// ComplementShift returns the shift the second gear needs when the first
// gear's shift is fixed and the pair must mesh at the given center distance.
func (m Mesh) ComplementShift(distance, fixedShift float64) (float64, error) {
	sum, err := m.SumShiftForCenterDistance(distance)
	if err != nil {
		return 0, err
	}
	return sum - fixedShift, nil
}
