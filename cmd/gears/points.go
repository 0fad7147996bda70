package main

import (
	"fmt"

	"github.com/soypat/gears"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	pointsFlags    gearFlags
	pointsPerFlank int
	pointsZShift   float64
	pointsTooth    int
	pointsFacets   int
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Print the boundary curves of one tooth, one x y z record per point",
	Long: `points samples one tooth of the gear and prints its boundary curves in
drawing order: first flank, tip closure, second flank and root arc. Curves
are separated by blank lines so the output can be fed straight to plotting
tools.`,
	RunE: runPoints,
}

func init() {
	pointsFlags.register(pointsCmd)
	pointsCmd.Flags().IntVar(&pointsPerFlank, "points-per-flank", 10, "involute samples per flank")
	pointsCmd.Flags().IntVar(&pointsFacets, "arc-facets", 8, "segments per tip and root arc")
	pointsCmd.Flags().Float64Var(&pointsZShift, "z-shift", 0, "z coordinate of the sampled plane")
	pointsCmd.Flags().IntVar(&pointsTooth, "tooth", 0, "tooth index around the gear")
	rootCmd.AddCommand(pointsCmd)
}

func runPoints(cmd *cobra.Command, args []string) error {
	g, err := pointsFlags.gear()
	if err != nil {
		return err
	}
	tooth, err := g.Tooth(gears.ToothConfig{
		Points:   pointsPerFlank,
		ZShift:   pointsZShift,
		Rotation: g.ToothArcAngle() * float64(pointsTooth),
	})
	if err != nil {
		return err
	}

	emit := func(pts []r3.Vec) {
		for _, p := range pts {
			fmt.Printf("%g %g %g\n", p.X, p.Y, p.Z)
		}
		fmt.Println()
	}
	emit(tooth.Flank1)
	switch tooth.TipKind {
	case gears.TipArc:
		emit(tooth.Tip.Points(pointsFacets))
	case gears.TipChord:
		emit([]r3.Vec{tooth.Flank1[len(tooth.Flank1)-1], tooth.Flank2[len(tooth.Flank2)-1]})
	case gears.TipClipped:
		emit([]r3.Vec{tooth.Crossing})
	}
	emit(tooth.Flank2)
	emit(tooth.Root.Points(pointsFacets))
	return nil
}
