package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gfpeltier/go-dmpvr/programmer"
)

var showProgress bool

var writeCmd = &cobra.Command{
	Use:   "write <config-file>",
	Short: "Program a configuration file into the device's NVM",
	Long: `Parses a Renesas configuration file, verifies the target device's
identity and free NVM slot count, transmits the configuration and checks
the programming result.

Programming consumes an NVM slot and is irreversible. A failure after
transmission has begun can leave the device partially programmed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		prog, closeBus, err := openProgrammer(progressOptions()...)
		if err != nil {
			return err
		}
		defer func() { _ = closeBus() }()

		n, err := prog.WriteConfig(context.Background(), text)
		if err != nil {
			return fmt.Errorf("write configuration: %w", err)
		}

		log.Infof("wrote %d bytes of configuration from %s", n, args[0])
		return nil
	},
}

func progressOptions() []programmer.Option {
	if !showProgress {
		return nil
	}
	return []programmer.Option{
		programmer.WithProgressCallback(func(p programmer.Progress) {
			fmt.Fprintf(os.Stderr, "[%s] %.1f%% (%d/%d commands)\n",
				p.Phase, p.Percentage, p.CurrentCommand, p.TotalCommands)
		}),
	}
}

func init() {
	writeCmd.Flags().BoolVar(&showProgress, "progress", false, "print pipeline progress to stderr")
	rootCmd.AddCommand(writeCmd)
}
