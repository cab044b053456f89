package smbus

import (
	"fmt"
)

// Dev binds a 7-bit device address to a Transport and provides the
// extended transfer shapes the Renesas devices require on top of it.
// Dev is stateless beyond its identity and safe for concurrent use as
// long as the underlying Transport is.
type Dev struct {
	// Addr is the 7-bit bus address of the device
	Addr uint16

	// Bus is the raw transport the device is reached through
	Bus Transport
}

// New returns a Dev bound to the given address and transport.
func New(addr uint16, bus Transport) *Dev {
	if bus == nil {
		panic("transport cannot be nil")
	}
	return &Dev{Addr: addr, Bus: bus}
}

// Read40 performs a 40-bit identity read: one outbound message selecting
// the command, one inbound message of 5 bytes. Byte 0 of the result is a
// leading framing/count byte; bytes 1-4 are payload.
//
// The SMBus block read protocol is avoided on purpose: not every I2C
// controller supports it, and the devices answer a plain write/read pair.
func (d *Dev) Read40(cmd byte) ([Read40Size]byte, error) {
	var data [Read40Size]byte
	msgs := []Msg{
		{Buf: []byte{cmd}},
		{Read: true, Buf: data[:]},
	}
	if err := d.tx("read40", msgs); err != nil {
		return data, err
	}
	return data, nil
}

// Read32 performs an extended 32-bit read: one outbound message selecting
// the command, one inbound message of 4 raw payload bytes. There is no
// framing byte. Used for all DMA fixed and sequential accesses.
func (d *Dev) Read32(cmd byte) ([Read32Size]byte, error) {
	var data [Read32Size]byte
	msgs := []Msg{
		{Buf: []byte{cmd}},
		{Read: true, Buf: data[:]},
	}
	if err := d.tx("read32", msgs); err != nil {
		return data, err
	}
	return data, nil
}

// Write32 performs an extended 32-bit write: a single message of the
// command byte followed by the 4 payload bytes, least-significant first.
func (d *Dev) Write32(cmd byte, value uint32) error {
	buf := []byte{
		cmd,
		byte(value),
		byte(value >> 8),
		byte(value >> 16),
		byte(value >> 24),
	}
	return d.tx("write32", []Msg{{Buf: buf}})
}

// WriteWord performs a standard SMBus word write.
func (d *Dev) WriteWord(reg byte, value uint16) error {
	if err := d.Bus.WriteWord(d.Addr, reg, value); err != nil {
		return &TransportError{Op: "write word", Err: err}
	}
	return nil
}

// ReadWord performs a standard SMBus word read.
func (d *Dev) ReadWord(reg byte) (uint16, error) {
	v, err := d.Bus.ReadWord(d.Addr, reg)
	if err != nil {
		return 0, &TransportError{Op: "read word", Err: err}
	}
	return v, nil
}

// WriteByte performs a standard SMBus byte write.
func (d *Dev) WriteByte(reg byte, value byte) error {
	return d.tx("write byte", []Msg{{Buf: []byte{reg, value}}})
}

// ReadByte performs a standard SMBus byte read.
func (d *Dev) ReadByte(reg byte) (byte, error) {
	var data [1]byte
	msgs := []Msg{
		{Buf: []byte{reg}},
		{Read: true, Buf: data[:]},
	}
	if err := d.tx("read byte", msgs); err != nil {
		return 0, err
	}
	return data[0], nil
}

// SetPage selects the rail/page for subsequent paged accesses.
func (d *Dev) SetPage(page byte) error {
	return d.WriteByte(RegPage, page)
}

// tx runs one compound transaction and normalizes failures: any transport
// error, including a short completion, surfaces as a *TransportError.
func (d *Dev) tx(op string, msgs []Msg) error {
	n, err := d.Bus.Tx(d.Addr, msgs)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if n != len(msgs) {
		return &TransportError{Op: op, Err: fmt.Errorf("short transfer: completed %d of %d messages", n, len(msgs))}
	}
	return nil
}
