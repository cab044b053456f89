package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var avsCmd = &cobra.Command{
	Use:   "avs <rail> [on|off]",
	Short: "Show or set AVSBus VOUT control for a rail",
	Long: `With one argument, reports whether the rail's VOUT is under AVSBus
control. With "on" or "off", hands VOUT control to AVSBus or back to
PMBus.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rail, err := strconv.ParseUint(args[0], 0, 8)
		if err != nil {
			return fmt.Errorf("invalid rail %q: %w", args[0], err)
		}

		prog, closeBus, err := openProgrammer()
		if err != nil {
			return err
		}
		defer func() { _ = closeBus() }()

		if len(args) == 1 {
			enabled, err := prog.AVSEnabled(byte(rail))
			if err != nil {
				return err
			}
			if enabled {
				fmt.Println("on")
			} else {
				fmt.Println("off")
			}
			return nil
		}

		var enable bool
		switch args[1] {
		case "on":
			enable = true
		case "off":
			enable = false
		default:
			return fmt.Errorf("invalid state %q: must be on or off", args[1])
		}

		if err := prog.SetAVSEnabled(byte(rail), enable); err != nil {
			return err
		}
		log.Infof("rail %d AVS control set to %s", rail, args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(avsCmd)
}
