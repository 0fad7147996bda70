package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	plotFlags  gearFlags
	plotOutput string
	plotSize   float64
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the full gear outline to a PNG, SVG or PDF file",
	RunE:  runPlot,
}

func init() {
	plotFlags.register(plotCmd)
	plotCmd.Flags().StringVar(&plotOutput, "output", "gear.png", "output image file")
	plotCmd.Flags().Float64Var(&plotSize, "size", 6, "image size in inches")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	g, err := plotFlags.gear()
	if err != nil {
		return err
	}
	outline, err := g.Outline(0, 0)
	if err != nil {
		return err
	}

	xys := make(plotter.XYs, len(outline)+1)
	for i, v := range outline {
		xys[i].X, xys[i].Y = v.X, v.Y
	}
	// Close the loop.
	xys[len(outline)] = xys[0]

	p := plot.New()
	p.Title.Text = cmd.Flags().Lookup("teeth").Value.String() + " tooth gear"
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())
	if err := p.Save(vg.Length(plotSize)*vg.Inch, vg.Length(plotSize)*vg.Inch, plotOutput); err != nil {
		return err
	}
	log.Info().Str("file", plotOutput).Int("vertices", len(outline)).Msg("outline plotted")
	return nil
}
