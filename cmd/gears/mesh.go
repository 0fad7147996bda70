package main

import (
	"fmt"

	"github.com/soypat/gears"
	"github.com/spf13/cobra"
)

var (
	meshTeeth1, meshTeeth2 int
	meshShift1, meshShift2 float64
	meshModule             float64
	meshPressureAngle      float64
	meshCenterDistance     float64
)

var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Solve the meshing of a profile shifted gear pair",
	Long: `mesh computes the working pressure angle and center distance of a gear
pair with the given profile shifts. With --center-distance it solves the
inverse problem instead: the total profile shift needed to mesh at that
distance, split evenly or against a fixed --shift1.`,
	RunE: runMesh,
}

func init() {
	fl := meshCmd.Flags()
	fl.IntVar(&meshTeeth1, "teeth1", 16, "tooth count of the first gear")
	fl.IntVar(&meshTeeth2, "teeth2", 32, "tooth count of the second gear")
	fl.Float64Var(&meshShift1, "shift1", 0, "profile shift of the first gear")
	fl.Float64Var(&meshShift2, "shift2", 0, "profile shift of the second gear")
	fl.Float64Var(&meshModule, "module", 1, "shared radial module")
	fl.Float64Var(&meshPressureAngle, "pressure-angle", 20, "cutting pressure angle in degrees")
	fl.Float64Var(&meshCenterDistance, "center-distance", 0, "solve for shifts meshing at this distance")
	rootCmd.AddCommand(meshCmd)
}

func runMesh(cmd *cobra.Command, args []string) error {
	m := gears.Mesh{
		Teeth1: meshTeeth1, Teeth2: meshTeeth2,
		Shift1: meshShift1, Shift2: meshShift2,
		Module:        meshModule,
		PressureAngle: gears.DtoR(meshPressureAngle),
	}

	if meshCenterDistance > 0 {
		sum, err := m.SumShiftForCenterDistance(meshCenterDistance)
		if err != nil {
			return err
		}
		s1, s2, err := m.ShiftsForCenterDistance(meshCenterDistance)
		if err != nil {
			return err
		}
		fmt.Printf("required shift sum...: %.6f\n", sum)
		fmt.Printf("even split...........: %.6f / %.6f\n", s1, s2)
		if cmd.Flags().Changed("shift1") {
			other, err := m.ComplementShift(meshCenterDistance, meshShift1)
			if err != nil {
				return err
			}
			fmt.Printf("with shift1 %.6f..: shift2 %.6f\n", meshShift1, other)
		}
		return nil
	}

	aw, err := m.WorkingPressureAngle()
	if err != nil {
		return err
	}
	y, err := m.CenterDistanceIncrement()
	if err != nil {
		return err
	}
	d, err := m.CenterDistance()
	if err != nil {
		return err
	}
	fmt.Printf("working pressure angle: %.4f deg\n", gears.RtoD(aw))
	fmt.Printf("distance increment....: %.6f modules\n", y)
	fmt.Printf("center distance.......: %.6f\n", d)
	return nil
}
