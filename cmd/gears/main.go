package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gears",
	Short: "Involute gear calculator and generator",
	Long: `gears computes involute gear geometry: dimensional reports, tooth profile
point sequences, profile-shift meshing math, 2D profile plots and solid STL
bodies for helical, spur, herringbone, internal and rack gears.`,
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
