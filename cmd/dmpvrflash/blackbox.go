package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var blackboxOut string

var blackboxCmd = &cobra.Command{
	Use:   "blackbox",
	Short: "Retrieve the device's black box telemetry",
	Long: `Reads the device's black box diagnostic telemetry ring and renders it
as a 288-byte hex dump, one 4-byte word per line. The read does not
mutate device state.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, closeBus, err := openProgrammer()
		if err != nil {
			return err
		}
		defer func() { _ = closeBus() }()

		art, err := prog.ReadBlackBox(context.Background())
		if err != nil {
			return err
		}

		if blackboxOut != "" {
			return os.WriteFile(blackboxOut, art, 0o644)
		}
		_, err = os.Stdout.Write(art)
		return err
	},
}

func init() {
	blackboxCmd.Flags().StringVarP(&blackboxOut, "output", "o", "", "write the artifact to a file instead of stdout")
	rootCmd.AddCommand(blackboxCmd)
}
