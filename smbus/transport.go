package smbus

// Msg is one message of a compound bus transaction.
type Msg struct {
	// Read marks the message direction: true reads from the device into
	// Buf, false writes Buf to the device
	Read bool

	// Buf is the data to write, or the buffer to fill for a read.
	// Its length is the message length on the wire.
	Buf []byte
}

// Transport is the raw two-wire bus capability this package builds on.
// Implementations exist for Linux I2C adapters (package i2cbus) and for
// in-memory device models in tests.
//
// Transport implementations perform no byte-level content validation;
// they only move messages.
type Transport interface {
	// Tx executes msgs as a single compound transaction against the
	// 7-bit device address and returns the number of messages completed.
	// A transaction is only successful if every message completed.
	Tx(addr uint16, msgs []Msg) (int, error)

	// WriteWord performs a standard SMBus Write Word transaction
	// (little-endian value).
	WriteWord(addr uint16, reg byte, value uint16) error

	// ReadWord performs a standard SMBus Read Word transaction
	// (little-endian value).
	ReadWord(addr uint16, reg byte) (uint16, error)
}
