package programmer

import (
	"fmt"
	"time"
)

// IdentityMismatchError indicates that the configuration targets a
// different device than the one on the bus.
type IdentityMismatchError struct {
	// Field names the mismatched identity field ("device ID" or "device revision")
	Field string

	// Expected is the value from the configuration file
	Expected []byte

	// Actual is the value read from the device
	Actual []byte
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: configuration expects % X, device has % X",
		e.Field, e.Expected, e.Actual)
}

// CapacityError indicates that the device does not have enough free NVM
// slots for the configuration.
type CapacityError struct {
	// Slots is the number of slots the configuration requires
	Slots int

	// Available is the number of free slots the device reported
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("configuration needs %d NVM slots, device has %d available",
		e.Slots, e.Available)
}

// TimeoutError indicates that the programming status stayed at zero past
// the completion-poll deadline.
type TimeoutError struct {
	// Timeout is the deadline that elapsed
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("programming did not complete within %s", e.Timeout)
}

// ProgrammingError indicates that the device reported an overall
// programming status other than success.
type ProgrammingError struct {
	// Status is the status byte the device reported (1 means success)
	Status byte
}

func (e *ProgrammingError) Error() string {
	return fmt.Sprintf("programming failed: status 0x%02X", e.Status)
}

// SlotStatusError indicates that a specific NVM slot failed to program.
type SlotStatusError struct {
	// Slot is the 0-based slot index
	Slot int

	// Status is the slot's status nibble (1 means success)
	Status byte
}

func (e *SlotStatusError) Error() string {
	return fmt.Sprintf("slot %d failed to program: status 0x%X", e.Slot, e.Status)
}
