package programmer

import (
	"context"
	"errors"
	"fmt"
)

// Op identifies a named operation exposed through a Session.
type Op int

const (
	// OpWriteConfig programs a configuration into NVM (write-only)
	OpWriteConfig Op = iota

	// OpReadBlackBox retrieves the black box artifact (read-only)
	OpReadBlackBox
)

func (o Op) String() string {
	switch o {
	case OpWriteConfig:
		return "write_config"
	case OpReadBlackBox:
		return "read_black_box"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Session errors.
var (
	// ErrUnknownOp is returned for operations a session does not expose
	ErrUnknownOp = errors.New("unknown operation")

	// ErrReadOnly is returned when writing to a read-only operation
	ErrReadOnly = errors.New("operation is read-only")

	// ErrWriteOnly is returned when reading from a write-only operation
	ErrWriteOnly = errors.New("operation is write-only")

	// ErrSessionClosed is returned after Close
	ErrSessionClosed = errors.New("session is closed")
)

// Handler serves one named operation with pseudo-file read/write
// semantics.
type Handler interface {
	// ReadAt reads a window of the operation's artifact
	ReadAt(ctx context.Context, buf []byte, off int64) (int, error)

	// WriteAt supplies data to the operation
	WriteAt(ctx context.Context, buf []byte, off int64) (int, error)
}

// Session exposes a device's instrumentation operations through an
// explicit dispatch table mapping each Op to its handler. The session is
// owned by whoever binds the device and must be torn down with Close
// when the device binding ends; handlers hold no state of their own
// beyond the programmer they forward to.
type Session struct {
	prog     *Programmer
	handlers map[Op]Handler
}

// NewSession creates a session exposing the programmer's write-config
// and read-black-box operations.
func NewSession(prog *Programmer) *Session {
	if prog == nil {
		panic("programmer cannot be nil")
	}
	return &Session{
		prog: prog,
		handlers: map[Op]Handler{
			OpWriteConfig:  writeConfigHandler{prog},
			OpReadBlackBox: blackBoxHandler{prog},
		},
	}
}

// Handler returns the handler registered for op.
func (s *Session) Handler(op Op) (Handler, bool) {
	h, ok := s.handlers[op]
	return h, ok
}

// ReadAt dispatches a windowed read to the operation's handler.
func (s *Session) ReadAt(ctx context.Context, op Op, buf []byte, off int64) (int, error) {
	h, err := s.lookup(op)
	if err != nil {
		return 0, err
	}
	return h.ReadAt(ctx, buf, off)
}

// WriteAt dispatches a write to the operation's handler.
func (s *Session) WriteAt(ctx context.Context, op Op, buf []byte, off int64) (int, error) {
	h, err := s.lookup(op)
	if err != nil {
		return 0, err
	}
	return h.WriteAt(ctx, buf, off)
}

// Close tears the session down. Subsequent dispatches fail with
// ErrSessionClosed.
func (s *Session) Close() error {
	s.handlers = nil
	return nil
}

func (s *Session) lookup(op Op) (Handler, error) {
	if s.handlers == nil {
		return nil, ErrSessionClosed
	}
	h, ok := s.handlers[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOp, op)
	}
	return h, nil
}

// writeConfigHandler forwards OpWriteConfig to the programming pipeline.
type writeConfigHandler struct {
	prog *Programmer
}

func (h writeConfigHandler) ReadAt(ctx context.Context, buf []byte, off int64) (int, error) {
	return 0, ErrWriteOnly
}

// WriteAt programs the configuration text in buf. The whole file must
// arrive in one pass: the pipeline parses and transmits atomically, so
// chunked writes are not supported.
func (h writeConfigHandler) WriteAt(ctx context.Context, buf []byte, off int64) (int, error) {
	if off != 0 {
		return 0, fmt.Errorf("configuration must be written in a single pass at offset 0, got offset %d", off)
	}
	return h.prog.WriteConfig(ctx, buf)
}

// blackBoxHandler forwards OpReadBlackBox to the black box reader.
type blackBoxHandler struct {
	prog *Programmer
}

func (h blackBoxHandler) ReadAt(ctx context.Context, buf []byte, off int64) (int, error) {
	return h.prog.ReadBlackBoxAt(ctx, buf, off)
}

func (h blackBoxHandler) WriteAt(ctx context.Context, buf []byte, off int64) (int, error) {
	return 0, ErrReadOnly
}
