// Package raacfg provides parsing for Renesas digital multiphase
// configuration files.
//
// # File Format
//
// A configuration file is newline-delimited ASCII with fixed-column
// hex-pair records. The total line count determines how many NVM slots
// the configuration occupies:
//
//	slotCount = (lineCount - 290) / 358
//
// Valid slot counts are 1 through 16.
//
// The first two lines are the header. Each carries a 4-byte field as
// 8 hex digits starting at column 8: the device ID on line 1 and the
// device revision on line 2. Hex pairs are assigned to byte indices in
// descending order, so the last pair written becomes index 0.
//
// Remaining lines are command records:
//
//	columns 0-1: record type
//	columns 2-3: record length (payload bytes + 3)
//	columns 6-7: command code
//	columns 8+:  payload, one hex pair per byte
//
// Lines beginning with "49" are non-command markers and are skipped;
// the trailing "49" record carries the image CRC, which is stored on
// the Config but never validated. The body scan stops at the first
// line of 10 or fewer characters.
//
// # Usage
//
// Parse a configuration file from disk:
//
//	cfg, err := raacfg.Parse("config.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Device ID: % X\n", cfg.DeviceID)
//	fmt.Printf("Slots: %d, commands: %d\n", cfg.SlotCount, len(cfg.Commands))
//
// Parse from a byte buffer or io.Reader:
//
//	cfg, err := raacfg.ParseBytes(buf)
//	cfg, err := raacfg.ParseReader(r)
//
// # Error Handling
//
// Parse fails fast: the first invalid hex digit or malformed record
// aborts parsing with a *FormatError carrying the line number, and an
// out-of-range slot count yields a *CapacityError before any command
// is parsed. No partial Config survives a failure.
package raacfg
