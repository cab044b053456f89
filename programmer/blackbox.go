package programmer

import (
	"context"
	"fmt"
	"io"

	"github.com/gfpeltier/go-dmpvr/smbus"
)

// ReadBlackBox retrieves the device's black box telemetry ring and
// renders it as a hex-dump text artifact: 32 lines of 8 uppercase hex
// characters, one 4-byte word per line, 288 bytes total.
//
// The read does not mutate device state, but it shares the bus with
// programming operations and must not interleave with an in-progress
// write to the same device.
func (p *Programmer) ReadBlackBox(ctx context.Context) ([]byte, error) {
	if err := p.dev.WriteWord(smbus.CmdDMAAddr, smbus.AddrBlackBoxBase); err != nil {
		return nil, err
	}

	out := make([]byte, 0, smbus.BlackBoxSize)
	for i := 0; i < smbus.BlackBoxWordCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled: %w", err)
		}

		// Sequential reads auto-increment the DMA address.
		data, err := p.dev.Read32(smbus.CmdDMASeq)
		if err != nil {
			return nil, err
		}
		out = fmt.Appendf(out, "%02X%02X%02X%02X\n", data[0], data[1], data[2], data[3])
	}

	return out, nil
}

// ReadBlackBoxAt reads a window of the black box artifact into buf,
// starting at offset off, and returns the number of bytes copied. Each
// call takes a fresh snapshot of the device's black box; no cursor
// persists between calls, so retrieval may be chunked or repeated at
// will. Reading at or past the end of the 288-byte artifact returns
// io.EOF.
func (p *Programmer) ReadBlackBoxAt(ctx context.Context, buf []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset %d", off)
	}

	art, err := p.ReadBlackBox(ctx)
	if err != nil {
		return 0, err
	}
	if off >= int64(len(art)) {
		return 0, io.EOF
	}
	return copy(buf, art[off:]), nil
}
