package smbus

// PMBus command codes used by the programming and telemetry paths.
const (
	// RegPage selects the rail/page for paged accesses
	RegPage = 0x00

	// RegOperation is the PMBus OPERATION register
	RegOperation = 0x01

	// RegVoutCommand is the PMBus VOUT_COMMAND register
	RegVoutCommand = 0x21

	// RegICDeviceID reads the 4-byte device ID (40-bit identity read)
	RegICDeviceID = 0xAD

	// RegICDeviceRev reads the 4-byte device revision (40-bit identity read)
	RegICDeviceRev = 0xAE

	// CmdDMAFix reads 4 bytes from the current DMA address without
	// advancing it
	CmdDMAFix = 0xC5

	// CmdDMASeq reads 4 bytes from the current DMA address and advances
	// it to the next word
	CmdDMASeq = 0xC6

	// CmdDMAAddr sets the 16-bit DMA address pointer
	CmdDMAAddr = 0xC7

	// CmdReadVMON reads the VMON pin voltage
	CmdReadVMON = 0xC8
)

// OperationAVSEnable is the OPERATION bit pattern that hands VOUT control
// to the AVSBus interface.
const OperationAVSEnable = 0x30

// Internal memory addresses reachable through the DMA address pointer.
const (
	// AddrNVMSlotCount reports available NVM configuration slots in its
	// low byte
	AddrNVMSlotCount = 0x00C2

	// AddrProgramStatus reports overall programming completion status in
	// its first byte (1 = success)
	AddrProgramStatus = 0x0707

	// AddrBank0Status holds per-slot status nibbles for slots 0-7
	AddrBank0Status = 0x0709

	// AddrBank1Status holds per-slot status nibbles for slots 8-15
	AddrBank1Status = 0x070A

	// AddrBlackBoxBase is the start of the black box telemetry ring
	AddrBlackBoxBase = 0xEF80
)

// Black box geometry.
const (
	// BlackBoxWordSize is the size of one black box word in bytes
	BlackBoxWordSize = 4

	// BlackBoxWordCount is the number of sequential reads in one black
	// box retrieval
	BlackBoxWordCount = 32

	// BlackBoxSize is the size of the rendered hex-dump artifact:
	// 32 lines of 8 hex characters plus a newline each
	BlackBoxSize = BlackBoxWordCount * (2*BlackBoxWordSize + 1)
)

// Extended transfer sizes.
const (
	// Read40Size is the inbound length of an identity read: a leading
	// framing/count byte followed by 4 payload bytes
	Read40Size = 5

	// Read32Size is the inbound length of an extended 32-bit read
	Read32Size = 4
)
