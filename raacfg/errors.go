package raacfg

import (
	"fmt"
)

// FormatError indicates malformed configuration text: an invalid hex
// digit, a truncated record, or an invalid payload width.
type FormatError struct {
	// Line is the 1-based line number where parsing failed
	Line int

	// Msg describes what was wrong with the line
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// CapacityError indicates that the slot count derived from the file's
// line count is outside the valid range.
type CapacityError struct {
	// Slots is the derived slot count
	Slots int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("slot count %d out of range: valid range is 1-%d", e.Slots, MaxSlotCount)
}
