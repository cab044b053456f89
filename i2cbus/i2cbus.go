package i2cbus

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/gfpeltier/go-dmpvr/smbus"
)

var (
	hostOnce sync.Once
	hostErr  error
)

// Bus adapts a periph.io I2C bus to the smbus.Transport capability.
type Bus struct {
	bus i2c.BusCloser
}

// Open opens the named I2C bus, e.g. "/dev/i2c-1" or "1". An empty name
// selects the first available bus.
func Open(name string) (*Bus, error) {
	hostOnce.Do(func() { _, hostErr = host.Init() })
	if hostErr != nil {
		return nil, fmt.Errorf("host init: %w", hostErr)
	}

	b, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", name, err)
	}
	return &Bus{bus: b}, nil
}

// Tx executes a compound transaction. The message vector is mapped onto
// periph's write-then-read transaction; the supported shapes are a
// single write, a single read, or one write followed by one read, which
// covers every transfer the devices use.
func (b *Bus) Tx(addr uint16, msgs []smbus.Msg) (int, error) {
	var w, r []byte
	switch {
	case len(msgs) == 1 && !msgs[0].Read:
		w = msgs[0].Buf
	case len(msgs) == 1 && msgs[0].Read:
		r = msgs[0].Buf
	case len(msgs) == 2 && !msgs[0].Read && msgs[1].Read:
		w, r = msgs[0].Buf, msgs[1].Buf
	default:
		return 0, fmt.Errorf("unsupported transaction shape: %d messages", len(msgs))
	}

	if err := b.bus.Tx(addr, w, r); err != nil {
		return 0, err
	}
	return len(msgs), nil
}

// WriteWord performs an SMBus Write Word transaction (little-endian).
func (b *Bus) WriteWord(addr uint16, reg byte, value uint16) error {
	return b.bus.Tx(addr, []byte{reg, byte(value), byte(value >> 8)}, nil)
}

// ReadWord performs an SMBus Read Word transaction (little-endian).
func (b *Bus) ReadWord(addr uint16, reg byte) (uint16, error) {
	var data [2]byte
	if err := b.bus.Tx(addr, []byte{reg}, data[:]); err != nil {
		return 0, err
	}
	return uint16(data[0]) | uint16(data[1])<<8, nil
}

// Close releases the underlying bus.
func (b *Bus) Close() error {
	return b.bus.Close()
}
