package raacfg

// Config represents a complete parsed Renesas configuration file.
// It is built atomically: Parse either returns a fully populated Config
// or an error with no partial state.
type Config struct {
	// DeviceID is the target device ID (4 bytes)
	DeviceID [4]byte

	// DeviceRev is the target device revision (4 bytes)
	DeviceRev [4]byte

	// SlotCount is the number of NVM slots the configuration occupies,
	// derived from the file's total line count
	SlotCount int

	// Commands contains all configuration commands in file order.
	// Order is significant: later commands may depend on device-side
	// addressing state established by earlier ones.
	Commands []Command

	// CRC is the image CRC carried by the file trailer.
	// It is stored for reference only and never validated.
	CRC [4]byte
}

// Command is a single configuration command to be sent to the device.
// Immutable once constructed.
type Command struct {
	// Code is the PMBus command code
	Code byte

	// Payload is the command payload, either a Word or a DoubleWord
	Payload Payload
}

// Payload is the command payload variant. The file format encodes the
// payload width in each record's length field; only 2-byte (Word) and
// 4-byte (DoubleWord) payloads are valid.
type Payload interface {
	// Width returns the payload size in bytes (2 or 4)
	Width() int
}

// Word is a 2-byte command payload.
type Word uint16

// DoubleWord is a 4-byte command payload.
type DoubleWord uint32

// Width returns 2.
func (Word) Width() int { return 2 }

// Width returns 4.
func (DoubleWord) Width() int { return 4 }
