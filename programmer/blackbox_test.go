package programmer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfpeltier/go-dmpvr/smbus"
)

func TestReadBlackBox(t *testing.T) {
	m := newMockTransport()
	prog := newTestProgrammer(m)

	art, err := prog.ReadBlackBox(context.Background())
	require.NoError(t, err)

	assert.Len(t, art, smbus.BlackBoxSize)
	lines := strings.Split(strings.TrimSuffix(string(art), "\n"), "\n")
	require.Len(t, lines, smbus.BlackBoxWordCount)
	for _, line := range lines {
		assert.Equal(t, "DEADBEEF", line)
	}

	assert.Equal(t, []uint16{smbus.AddrBlackBoxBase}, m.dmaSelects)
}

func TestReadBlackBoxWordOrder(t *testing.T) {
	m := newMockTransport()
	for i := range m.bbWords {
		m.bbWords[i] = [4]byte{byte(i), byte(i + 1), byte(i + 2), byte(i + 3)}
	}
	prog := newTestProgrammer(m)

	art, err := prog.ReadBlackBox(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(art), "\n"), "\n")
	require.Len(t, lines, smbus.BlackBoxWordCount)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("%02X%02X%02X%02X", i, i+1, i+2, i+3), line)
	}
}

func TestReadBlackBoxHonorsContext(t *testing.T) {
	m := newMockTransport()
	prog := newTestProgrammer(m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := prog.ReadBlackBox(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadBlackBoxAt(t *testing.T) {
	t.Run("window at start", func(t *testing.T) {
		m := newMockTransport()
		prog := newTestProgrammer(m)

		buf := make([]byte, 9)
		n, err := prog.ReadBlackBoxAt(context.Background(), buf, 0)
		require.NoError(t, err)
		assert.Equal(t, 9, n)
		assert.Equal(t, "DEADBEEF\n", string(buf))
	})

	t.Run("window at tail", func(t *testing.T) {
		m := newMockTransport()
		prog := newTestProgrammer(m)

		buf := make([]byte, 16)
		n, err := prog.ReadBlackBoxAt(context.Background(), buf, smbus.BlackBoxSize-8)
		require.NoError(t, err)
		assert.Equal(t, 8, n)
		assert.Equal(t, "EADBEEF\n", string(buf[:n]))
	})

	t.Run("offset at end returns EOF", func(t *testing.T) {
		m := newMockTransport()
		prog := newTestProgrammer(m)

		n, err := prog.ReadBlackBoxAt(context.Background(), make([]byte, 8), smbus.BlackBoxSize)
		assert.Equal(t, 0, n)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("negative offset rejected", func(t *testing.T) {
		m := newMockTransport()
		prog := newTestProgrammer(m)

		_, err := prog.ReadBlackBoxAt(context.Background(), make([]byte, 8), -1)
		assert.Error(t, err)
	})

	t.Run("each call takes a fresh snapshot", func(t *testing.T) {
		m := newMockTransport()
		prog := newTestProgrammer(m)

		first := make([]byte, smbus.BlackBoxSize)
		_, err := prog.ReadBlackBoxAt(context.Background(), first, 0)
		require.NoError(t, err)

		second := make([]byte, smbus.BlackBoxSize)
		_, err = prog.ReadBlackBoxAt(context.Background(), second, 0)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, []uint16{smbus.AddrBlackBoxBase, smbus.AddrBlackBoxBase}, m.dmaSelects)
	})
}
