package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/soypat/gears/model"
	"github.com/soypat/sdf/render"
	"github.com/spf13/cobra"
)

var (
	stlFlags  gearFlags
	stlOutput string
	stlCells  int
)

var stlCmd = &cobra.Command{
	Use:   "stl",
	Short: "Render the solid gear body to an STL file",
	RunE:  runSTL,
}

func init() {
	stlFlags.register(stlCmd)
	stlCmd.Flags().StringVar(&stlOutput, "output", "gear.stl", "output STL file")
	stlCmd.Flags().IntVar(&stlCells, "cells", 150, "meshing resolution in cells per dimension")
	rootCmd.AddCommand(stlCmd)
}

func runSTL(cmd *cobra.Command, args []string) error {
	g, err := stlFlags.gear()
	if err != nil {
		return err
	}
	solid, err := model.Solid(g)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := render.CreateSTL(stlOutput, render.NewOctreeRenderer(solid, stlCells)); err != nil {
		return err
	}
	log.Info().
		Str("file", stlOutput).
		Dur("elapsed", time.Since(start)).
		Msg("gear rendered")
	return nil
}
