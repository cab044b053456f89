package programmer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfpeltier/go-dmpvr/smbus"
)

func TestSessionWriteConfig(t *testing.T) {
	m := newMockTransport()
	sess := NewSession(newTestProgrammer(m))
	defer func() { _ = sess.Close() }()

	text := buildConfigText(testConfig(1))
	n, err := sess.WriteAt(context.Background(), OpWriteConfig, text, 0)
	require.NoError(t, err)
	assert.Equal(t, len(text), n)
	assert.Equal(t, []wordWrite{{0x21, 0x019A}}, m.wordWrites)
}

func TestSessionWriteConfigRejectsNonZeroOffset(t *testing.T) {
	m := newMockTransport()
	sess := NewSession(newTestProgrammer(m))

	_, err := sess.WriteAt(context.Background(), OpWriteConfig, []byte("x"), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 100")
	assert.Empty(t, m.wordWrites)
}

func TestSessionReadBlackBox(t *testing.T) {
	m := newMockTransport()
	sess := NewSession(newTestProgrammer(m))

	buf := make([]byte, smbus.BlackBoxSize)
	n, err := sess.ReadAt(context.Background(), OpReadBlackBox, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, smbus.BlackBoxSize, n)
	assert.Equal(t, "DEADBEEF\n", string(buf[:9]))
}

func TestSessionDirectionEnforcement(t *testing.T) {
	sess := NewSession(newTestProgrammer(newMockTransport()))

	_, err := sess.ReadAt(context.Background(), OpWriteConfig, make([]byte, 8), 0)
	assert.ErrorIs(t, err, ErrWriteOnly)

	_, err = sess.WriteAt(context.Background(), OpReadBlackBox, []byte("x"), 0)
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestSessionUnknownOp(t *testing.T) {
	sess := NewSession(newTestProgrammer(newMockTransport()))

	_, err := sess.ReadAt(context.Background(), Op(42), make([]byte, 8), 0)
	assert.ErrorIs(t, err, ErrUnknownOp)

	_, ok := sess.Handler(Op(42))
	assert.False(t, ok)
}

func TestSessionClose(t *testing.T) {
	sess := NewSession(newTestProgrammer(newMockTransport()))
	require.NoError(t, sess.Close())

	_, err := sess.ReadAt(context.Background(), OpReadBlackBox, make([]byte, 8), 0)
	assert.ErrorIs(t, err, ErrSessionClosed)

	_, err = sess.WriteAt(context.Background(), OpWriteConfig, []byte("x"), 0)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "write_config", OpWriteConfig.String())
	assert.Equal(t, "read_black_box", OpReadBlackBox.String())
	assert.Equal(t, "op(42)", Op(42).String())
}
