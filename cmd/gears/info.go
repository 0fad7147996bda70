package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var infoFlags gearFlags

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print a dimensional report of a gear",
	RunE:  runInfo,
}

func init() {
	infoFlags.register(infoCmd)
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	g, err := infoFlags.gear()
	if err != nil {
		return err
	}
	if g.UndercutRequired() {
		log.Warn().
			Float64("virtual", g.VirtualTeeth).
			Float64("critical", g.CriticalVirtualTeeth()).
			Msg("gear will be undercut; raise tooth count, pressure angle or profile shift")
	}
	fmt.Print(g.String())
	return nil
}
