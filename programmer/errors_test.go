package programmer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "identity mismatch",
			err: &IdentityMismatchError{
				Field:    "device ID",
				Expected: []byte{0x11, 0x22, 0x33, 0x44},
				Actual:   []byte{0x11, 0x22, 0x33, 0x55},
			},
			want: "device ID mismatch: configuration expects 11 22 33 44, device has 11 22 33 55",
		},
		{
			name: "capacity",
			err:  &CapacityError{Slots: 5, Available: 4},
			want: "configuration needs 5 NVM slots, device has 4 available",
		},
		{
			name: "timeout",
			err:  &TimeoutError{Timeout: 2 * time.Second},
			want: "programming did not complete within 2s",
		},
		{
			name: "programming status",
			err:  &ProgrammingError{Status: 0x02},
			want: "programming failed: status 0x02",
		},
		{
			name: "slot status",
			err:  &SlotStatusError{Slot: 3, Status: 0x02},
			want: "slot 3 failed to program: status 0x2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
