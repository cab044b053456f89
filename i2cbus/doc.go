// Package i2cbus implements smbus.Transport on top of a periph.io I2C
// bus, for talking to real hardware on Linux.
//
//	bus, err := i2cbus.Open("/dev/i2c-1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bus.Close()
//
//	dev := smbus.New(0x60, bus)
package i2cbus
