package raacfg

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// Constants for the Renesas configuration file format.
const (
	// HeaderLineCount is the number of lines occupied by the file header
	HeaderLineCount = 290

	// SlotLineCount is the number of lines occupied by each NVM slot
	SlotLineCount = 358

	// MaxSlotCount is the maximum number of NVM slots a device supports
	MaxSlotCount = 16

	// LengthOffset is the column of the record length field (2 hex chars)
	LengthOffset = 2

	// CommandOffset is the column of the command code field (2 hex chars)
	CommandOffset = 6

	// DataOffset is the column where record data begins
	DataOffset = 8

	// SkipSentinel marks a non-command record; such lines are skipped
	SkipSentinel = "49"

	// lengthOverhead is subtracted from the record length field to obtain
	// the payload byte count
	lengthOverhead = 3
)

// Parse parses a Renesas configuration file from the given file path.
// Returns the complete configuration or an error if parsing fails.
//
// Example:
//
//	cfg, err := raacfg.Parse("config.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Device ID: % X\n", cfg.DeviceID)
func Parse(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseBytes parses a configuration from a raw text buffer.
func ParseBytes(buf []byte) (*Config, error) {
	return ParseReader(bytes.NewReader(buf))
}

// ParseReader parses a configuration from any io.Reader.
// This is useful for testing and reading from non-file sources.
func ParseReader(r io.Reader) (*Config, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return parseLines(lines)
}

// parseLines converts the raw file lines into a Config.
//
// The total line count determines the slot count:
//
//	slotCount = (lineCount - HeaderLineCount) / SlotLineCount
//
// The first two lines carry the device ID and device revision. All
// remaining lines are command records, except lines whose first two
// characters equal SkipSentinel, which are skipped. The body scan stops
// at the first line of 10 or fewer characters.
func parseLines(lines []string) (*Config, error) {
	slots := (len(lines) - HeaderLineCount) / SlotLineCount
	if slots < 1 || slots > MaxSlotCount {
		return nil, &CapacityError{Slots: slots}
	}

	cfg := &Config{SlotCount: slots}

	if err := parseHeaderField(lines[0], 1, &cfg.DeviceID); err != nil {
		return nil, err
	}
	if err := parseHeaderField(lines[1], 2, &cfg.DeviceRev); err != nil {
		return nil, err
	}

	for i := 2; i < len(lines); i++ {
		line := lines[i]
		if len(line) <= DataOffset+2 {
			break
		}
		if strings.HasPrefix(line, SkipSentinel) {
			// Trailer records carry the image CRC at the data column.
			// The CRC is stored but never validated.
			parseCRC(line, &cfg.CRC)
			continue
		}
		cmd, err := parseCommand(line, i+1)
		if err != nil {
			return nil, err
		}
		cfg.Commands = append(cfg.Commands, cmd)
	}

	return cfg, nil
}

// parseHeaderField extracts a 4-byte header field (device ID or revision)
// from the 8 hex digits starting at DataOffset. Hex pairs are assigned in
// descending index order: the first pair becomes index 3 and the last pair
// index 0. This convention is fixed by the file format.
func parseHeaderField(line string, lineNum int, out *[4]byte) error {
	if len(line) < DataOffset+8 {
		return &FormatError{Line: lineNum, Msg: fmt.Sprintf("header line too short: got %d characters, need %d", len(line), DataOffset+8)}
	}

	col := DataOffset
	for j := 3; j >= 0; j-- {
		b, err := hexByte(line, col, lineNum)
		if err != nil {
			return err
		}
		out[j] = b
		col += 2
	}
	return nil
}

// parseCommand parses a single command record.
//
// Record layout (fixed columns, hex pairs):
//
//	[type(2)][length(2)][..(2)][command(2)][data(2*N)...]
//
// The payload byte count is the length field minus a 3-byte record
// overhead and must be exactly 2 or 4.
func parseCommand(line string, lineNum int) (Command, error) {
	raw, err := hexByte(line, LengthOffset, lineNum)
	if err != nil {
		return Command{}, err
	}
	if int(raw) < lengthOverhead {
		return Command{}, &FormatError{Line: lineNum, Msg: fmt.Sprintf("invalid record length 0x%02X", raw)}
	}
	plen := int(raw) - lengthOverhead

	code, err := hexByte(line, CommandOffset, lineNum)
	if err != nil {
		return Command{}, err
	}

	if plen != 2 && plen != 4 {
		return Command{}, &FormatError{Line: lineNum, Msg: fmt.Sprintf("invalid payload width %d: must be 2 or 4 bytes", plen)}
	}
	if len(line) < DataOffset+2*plen {
		return Command{}, &FormatError{Line: lineNum, Msg: fmt.Sprintf("truncated payload: got %d characters, need %d", len(line), DataOffset+2*plen)}
	}

	var data [4]byte
	for j := 0; j < plen; j++ {
		b, err := hexByte(line, DataOffset+2*j, lineNum)
		if err != nil {
			return Command{}, err
		}
		data[j] = b
	}

	cmd := Command{Code: code}
	if plen == 2 {
		cmd.Payload = Word(uint16(data[0]) | uint16(data[1])<<8)
	} else {
		cmd.Payload = DoubleWord(uint32(data[0]) | uint32(data[1])<<8 |
			uint32(data[2])<<16 | uint32(data[3])<<24)
	}
	return cmd, nil
}

// parseCRC captures the image CRC from a trailer record, using the same
// descending byte order as the header fields. Trailer records are skipped
// records, so an absent or malformed CRC field is ignored rather than
// treated as a format error.
func parseCRC(line string, out *[4]byte) {
	if len(line) < DataOffset+8 {
		return
	}
	var crc [4]byte
	col := DataOffset
	for j := 3; j >= 0; j-- {
		var b [1]byte
		if _, err := hex.Decode(b[:], []byte(line[col:col+2])); err != nil {
			return
		}
		crc[j] = b[0]
		col += 2
	}
	*out = crc
}

// hexByte decodes the 2 hex characters at the given column into a byte.
func hexByte(line string, col, lineNum int) (byte, error) {
	var b [1]byte
	if _, err := hex.Decode(b[:], []byte(line[col:col+2])); err != nil {
		return 0, &FormatError{Line: lineNum, Msg: fmt.Sprintf("invalid hex data at column %d: %q", col, line[col:col+2])}
	}
	return b[0], nil
}
