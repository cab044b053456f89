// dmpvrflash programs NVM configurations into Renesas digital multiphase
// voltage regulators over I2C/SMBus and retrieves their black box
// telemetry.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
