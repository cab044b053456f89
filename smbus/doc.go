// Package smbus implements the non-standard SMBus transfer shapes used
// by Renesas digital multiphase devices.
//
// # Extended Transfers
//
// The devices expose configuration programming and telemetry through
// transfer widths the SMBus standard does not define. Each is one
// compound transaction: an outbound message selecting a command,
// optionally followed by an inbound message of fixed length.
//
//	Read40(cmd)        -> 5 bytes  (framing/count byte + 4 payload bytes)
//	Read32(cmd)        -> 4 bytes  (raw payload, no framing byte)
//	Write32(cmd, u32)  -> command byte + 4 payload bytes, LSB first
//
// Read40 serves the device identity registers (RegICDeviceID,
// RegICDeviceRev). Read32/Write32 serve the DMA window: write a 16-bit
// internal address to CmdDMAAddr, then read through CmdDMAFix (fixed
// address) or CmdDMASeq (auto-incrementing).
//
// # Transport
//
// The raw bus is abstracted behind the Transport interface, which offers
// a compound multi-message transaction plus standard SMBus word access.
// A transfer succeeds only if the transport completes the exact expected
// message count; everything else surfaces as a *TransportError. No byte
// content is interpreted at this layer.
//
// # Usage
//
//	bus, err := i2cbus.Open("/dev/i2c-1")
//	dev := smbus.New(0x60, bus)
//
//	id, err := dev.Read40(smbus.RegICDeviceID)
//	err = dev.WriteWord(smbus.CmdDMAAddr, smbus.AddrNVMSlotCount)
//	data, err := dev.Read32(smbus.CmdDMASeq)
package smbus
