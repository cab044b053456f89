package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gfpeltier/go-dmpvr/i2cbus"
	"github.com/gfpeltier/go-dmpvr/programmer"
	"github.com/gfpeltier/go-dmpvr/smbus"
)

var (
	busName string
	devAddr string
	verbose bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "dmpvrflash",
	Short: "Program and inspect Renesas digital multiphase voltage regulators",
	Long: `dmpvrflash programs NVM configuration files into Renesas digital
multiphase voltage regulators (ISL68xxx/ISL69xxx/RAA22xxxx) over
I2C/SMBus and retrieves their black box diagnostic telemetry.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&busName, "bus", "b", "", "I2C bus name (e.g. /dev/i2c-1); empty selects the first available")
	rootCmd.PersistentFlags().StringVarP(&devAddr, "addr", "a", "0x60", "7-bit device address")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// openProgrammer opens the configured bus and builds a programmer bound
// to the configured device address. The caller owns the returned close
// function.
func openProgrammer(opts ...programmer.Option) (*programmer.Programmer, func() error, error) {
	addr, err := strconv.ParseUint(devAddr, 0, 16)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid device address %q: %w", devAddr, err)
	}

	bus, err := i2cbus.Open(busName)
	if err != nil {
		return nil, nil, err
	}

	opts = append([]programmer.Option{programmer.WithLogger(logrusLogger{log})}, opts...)
	prog := programmer.New(smbus.New(uint16(addr), bus), opts...)
	return prog, bus.Close, nil
}

// logrusLogger bridges logrus into the programmer.Logger interface.
type logrusLogger struct {
	log *logrus.Logger
}

func (l logrusLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(kvFields(keysAndValues)).Debug(msg)
}

func (l logrusLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(kvFields(keysAndValues)).Info(msg)
}

func (l logrusLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(kvFields(keysAndValues)).Error(msg)
}

func kvFields(kv []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		fields[key] = kv[i+1]
	}
	return fields
}
