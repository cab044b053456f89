package smbus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTransport captures every transaction and replays scripted
// inbound data.
type recordingTransport struct {
	txs       [][]Msg
	readData  []byte
	txErr     error
	completed int // -1 means all messages complete
	wordErr   error
	words     map[byte]uint16
}

func newRecordingTransport() *recordingTransport {
	return &recordingTransport{
		completed: -1,
		words:     make(map[byte]uint16),
	}
}

func (m *recordingTransport) Tx(addr uint16, msgs []Msg) (int, error) {
	// Record copies: callers may reuse buffers.
	rec := make([]Msg, len(msgs))
	for i, msg := range msgs {
		rec[i] = Msg{Read: msg.Read, Buf: append([]byte(nil), msg.Buf...)}
	}
	m.txs = append(m.txs, rec)

	if m.txErr != nil {
		return 0, m.txErr
	}
	for _, msg := range msgs {
		if msg.Read {
			copy(msg.Buf, m.readData)
		}
	}
	if m.completed >= 0 {
		return m.completed, nil
	}
	return len(msgs), nil
}

func (m *recordingTransport) WriteWord(addr uint16, reg byte, value uint16) error {
	if m.wordErr != nil {
		return m.wordErr
	}
	m.words[reg] = value
	return nil
}

func (m *recordingTransport) ReadWord(addr uint16, reg byte) (uint16, error) {
	if m.wordErr != nil {
		return 0, m.wordErr
	}
	return m.words[reg], nil
}

func TestWrite32LittleEndian(t *testing.T) {
	bus := newRecordingTransport()
	dev := New(0x60, bus)

	require.NoError(t, dev.Write32(0xE5, 0x12345678))

	require.Len(t, bus.txs, 1)
	require.Len(t, bus.txs[0], 1)
	msg := bus.txs[0][0]
	assert.False(t, msg.Read)
	assert.Equal(t, []byte{0xE5, 0x78, 0x56, 0x34, 0x12}, msg.Buf)
}

func TestRead32(t *testing.T) {
	bus := newRecordingTransport()
	bus.readData = []byte{0x78, 0x56, 0x34, 0x12}
	dev := New(0x60, bus)

	data, err := dev.Read32(0xC6)
	require.NoError(t, err)

	// Round trip: the same 4 bytes in the same order Write32 emits them.
	assert.Equal(t, [4]byte{0x78, 0x56, 0x34, 0x12}, data)

	require.Len(t, bus.txs, 1)
	require.Len(t, bus.txs[0], 2)
	assert.Equal(t, []byte{0xC6}, bus.txs[0][0].Buf)
	assert.True(t, bus.txs[0][1].Read)
	assert.Len(t, bus.txs[0][1].Buf, Read32Size)
}

func TestRead40(t *testing.T) {
	bus := newRecordingTransport()
	bus.readData = []byte{0x04, 0x11, 0x22, 0x33, 0x44}
	dev := New(0x60, bus)

	data, err := dev.Read40(RegICDeviceID)
	require.NoError(t, err)

	assert.Equal(t, [5]byte{0x04, 0x11, 0x22, 0x33, 0x44}, data)

	require.Len(t, bus.txs, 1)
	require.Len(t, bus.txs[0], 2)
	assert.Equal(t, []byte{RegICDeviceID}, bus.txs[0][0].Buf)
	assert.Len(t, bus.txs[0][1].Buf, Read40Size)
}

func TestTransportErrors(t *testing.T) {
	t.Run("transport failure surfaces as TransportError", func(t *testing.T) {
		bus := newRecordingTransport()
		busErr := errors.New("bus collision")
		bus.txErr = busErr
		dev := New(0x60, bus)

		_, err := dev.Read32(CmdDMAFix)
		var tErr *TransportError
		require.ErrorAs(t, err, &tErr)
		assert.Equal(t, "read32", tErr.Op)
		assert.ErrorIs(t, err, busErr)
	})

	t.Run("short completion surfaces as TransportError", func(t *testing.T) {
		bus := newRecordingTransport()
		bus.completed = 1
		dev := New(0x60, bus)

		_, err := dev.Read40(RegICDeviceRev)
		var tErr *TransportError
		require.ErrorAs(t, err, &tErr)
		assert.Contains(t, tErr.Error(), "short transfer")
	})

	t.Run("word write failure surfaces as TransportError", func(t *testing.T) {
		bus := newRecordingTransport()
		bus.wordErr = errors.New("nak")
		dev := New(0x60, bus)

		err := dev.WriteWord(CmdDMAAddr, AddrNVMSlotCount)
		assert.True(t, IsTransportError(err))
	})
}

func TestWordAccess(t *testing.T) {
	bus := newRecordingTransport()
	dev := New(0x60, bus)

	require.NoError(t, dev.WriteWord(RegVoutCommand, 0x019A))
	v, err := dev.ReadWord(RegVoutCommand)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x019A), v)
}

func TestByteAccess(t *testing.T) {
	bus := newRecordingTransport()
	bus.readData = []byte{0x30}
	dev := New(0x60, bus)

	require.NoError(t, dev.WriteByte(RegOperation, 0x30))
	require.Len(t, bus.txs, 1)
	assert.Equal(t, []byte{RegOperation, 0x30}, bus.txs[0][0].Buf)

	v, err := dev.ReadByte(RegOperation)
	require.NoError(t, err)
	assert.Equal(t, byte(0x30), v)
}

func TestSetPage(t *testing.T) {
	bus := newRecordingTransport()
	dev := New(0x60, bus)

	require.NoError(t, dev.SetPage(2))
	require.Len(t, bus.txs, 1)
	assert.Equal(t, []byte{RegPage, 0x02}, bus.txs[0][0].Buf)
}
