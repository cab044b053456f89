package programmer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gfpeltier/go-dmpvr/raacfg"
	"github.com/gfpeltier/go-dmpvr/smbus"
)

// Programmer drives NVM configuration programming and telemetry retrieval
// for Renesas digital multiphase devices.
//
// Programming is fully synchronous and has no internal locking: callers
// must serialize write operations to a given device themselves. A failure
// after transmission has begun leaves the device partially programmed;
// there is no rollback.
type Programmer struct {
	dev    *smbus.Dev
	config Config
}

// New creates a Programmer for the given device endpoint.
//
// Example:
//
//	bus, _ := i2cbus.Open("/dev/i2c-1")
//	prog := programmer.New(smbus.New(0x60, bus),
//	    programmer.WithLogger(myLogger),
//	)
func New(dev *smbus.Dev, opts ...Option) *Programmer {
	if dev == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Programmer{
		dev:    dev,
		config: cfg,
	}
}

// WriteConfig parses raw configuration text and programs it into the
// device's NVM. On success it returns the number of bytes consumed
// (always the full buffer). On failure the first error is returned
// unchanged; there is no retry and no rollback, and a failure after
// transmission has begun leaves the device partially programmed.
func (p *Programmer) WriteConfig(ctx context.Context, text []byte) (int, error) {
	p.reportProgress(Progress{Phase: PhaseParsing})

	cfg, err := raacfg.ParseBytes(text)
	if err != nil {
		p.logError("configuration rejected", "error", err)
		return 0, err
	}

	p.logDebug("configuration parsed",
		"device_id", fmt.Sprintf("% X", cfg.DeviceID),
		"device_rev", fmt.Sprintf("% X", cfg.DeviceRev),
		"slots", cfg.SlotCount,
		"commands", len(cfg.Commands),
	)

	if err := p.Program(ctx, cfg); err != nil {
		return 0, err
	}
	return len(text), nil
}

// Program runs the programming pipeline for an already-parsed
// configuration:
//  1. Verify the device ID and revision match the configuration
//  2. Verify the device has enough free NVM slots
//  3. Transmit the configuration commands in file order
//  4. Poll for completion and check per-slot status
//
// The order is fixed: transmission is destructive, so both verification
// steps must pass before the first command is sent.
func (p *Programmer) Program(ctx context.Context, cfg *raacfg.Config) error {
	startTime := p.now()

	p.reportProgress(Progress{Phase: PhaseVerifyingDevice, TotalCommands: len(cfg.Commands)})
	if err := p.verifyDevice(cfg); err != nil {
		return err
	}

	p.reportProgress(Progress{Phase: PhaseCheckingCapacity, TotalCommands: len(cfg.Commands)})
	if err := p.checkCapacity(cfg); err != nil {
		return err
	}

	p.reportProgress(Progress{Phase: PhaseTransmitting, TotalCommands: len(cfg.Commands)})
	if err := p.sendConfig(ctx, cfg, startTime); err != nil {
		return err
	}

	p.reportProgress(Progress{
		Phase:          PhaseVerifyingResult,
		CurrentCommand: len(cfg.Commands),
		TotalCommands:  len(cfg.Commands),
		Percentage:     90,
		ElapsedTime:    p.now().Sub(startTime),
	})
	if err := p.verifyResult(ctx, cfg); err != nil {
		return err
	}

	p.reportProgress(Progress{
		Phase:          PhaseComplete,
		CurrentCommand: len(cfg.Commands),
		TotalCommands:  len(cfg.Commands),
		Percentage:     100,
		ElapsedTime:    p.now().Sub(startTime),
	})

	p.logInfo("programming complete",
		"slots", cfg.SlotCount,
		"commands", len(cfg.Commands),
		"elapsed", p.now().Sub(startTime).String(),
	)

	return nil
}

// verifyDevice reads the live device ID and revision through 40-bit
// identity reads and compares them against the configuration header.
// All 4 device ID bytes must match; only the most significant revision
// byte is compared, since lower revision bytes vary across compatible
// firmware builds.
func (p *Programmer) verifyDevice(cfg *raacfg.Config) error {
	id, err := p.dev.Read40(smbus.RegICDeviceID)
	if err != nil {
		return err
	}

	rev, err := p.dev.Read40(smbus.RegICDeviceRev)
	if err != nil {
		return err
	}

	// Byte 0 of each identity read is the framing/count byte.
	if !bytes.Equal(cfg.DeviceID[:], id[1:5]) {
		return &IdentityMismatchError{
			Field:    "device ID",
			Expected: append([]byte(nil), cfg.DeviceID[:]...),
			Actual:   append([]byte(nil), id[1:5]...),
		}
	}
	if cfg.DeviceRev[3] != rev[4] {
		return &IdentityMismatchError{
			Field:    "device revision",
			Expected: []byte{cfg.DeviceRev[3]},
			Actual:   []byte{rev[4]},
		}
	}
	return nil
}

// checkCapacity reads the device's available NVM slot count through the
// DMA window and rejects configurations that need more slots than the
// device has left.
func (p *Programmer) checkCapacity(cfg *raacfg.Config) error {
	if err := p.dev.WriteWord(smbus.CmdDMAAddr, smbus.AddrNVMSlotCount); err != nil {
		return err
	}
	data, err := p.dev.Read32(smbus.CmdDMASeq)
	if err != nil {
		return err
	}

	avail := int(data[0])
	p.logDebug("NVM capacity", "available_slots", avail, "required_slots", cfg.SlotCount)

	if cfg.SlotCount > avail {
		return &CapacityError{Slots: cfg.SlotCount, Available: avail}
	}
	return nil
}

// sendConfig transmits the configuration commands in file order. Word
// payloads go out as standard SMBus word writes, DoubleWord payloads as
// extended 32-bit writes. The first failure aborts the remaining
// commands; commands already sent remain applied.
func (p *Programmer) sendConfig(ctx context.Context, cfg *raacfg.Config, startTime time.Time) error {
	for i, cmd := range cfg.Commands {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		var err error
		switch v := cmd.Payload.(type) {
		case raacfg.Word:
			err = p.dev.WriteWord(cmd.Code, uint16(v))
		case raacfg.DoubleWord:
			err = p.dev.Write32(cmd.Code, uint32(v))
		default:
			err = fmt.Errorf("unsupported payload width %d", cmd.Payload.Width())
		}
		if err != nil {
			return fmt.Errorf("command %d (code 0x%02X): %w", i, cmd.Code, err)
		}

		// Transmission covers 10% to 90% of the pipeline.
		percentage := 10 + (float64(i+1)/float64(len(cfg.Commands)))*80
		p.reportProgress(Progress{
			Phase:          PhaseTransmitting,
			CurrentCommand: i + 1,
			TotalCommands:  len(cfg.Commands),
			Percentage:     percentage,
			ElapsedTime:    p.now().Sub(startTime),
		})
	}
	return nil
}

// verifyResult checks the outcome of a programming pass in two phases.
//
// Phase 1 selects the programming status address and polls the first
// status byte until it goes non-zero or the 2-second deadline elapses.
// The byte must then equal exactly 1.
//
// Phase 2 reads the two bank status registers (bank 0 covers slots 0-7,
// bank 1 covers slots 8-15) and checks that every occupied slot's status
// nibble equals 1, failing fast on the first bad slot.
func (p *Programmer) verifyResult(ctx context.Context, cfg *raacfg.Config) error {
	if err := p.dev.WriteWord(smbus.CmdDMAAddr, smbus.AddrProgramStatus); err != nil {
		return err
	}

	deadline := p.now().Add(PollTimeout)
	var status [4]byte
	for status[0] == 0 && !p.now().After(deadline) {
		data, err := p.dev.Read32(smbus.CmdDMAFix)
		if err != nil {
			return err
		}
		status = data

		if status[0] == 0 && p.config.PollInterval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.config.PollInterval):
			}
		}
	}
	if status[0] == 0 {
		return &TimeoutError{Timeout: PollTimeout}
	}
	if status[0] != 1 {
		return &ProgrammingError{Status: status[0]}
	}

	if err := p.dev.WriteWord(smbus.CmdDMAAddr, smbus.AddrBank0Status); err != nil {
		return err
	}
	bank0, err := p.dev.Read32(smbus.CmdDMAFix)
	if err != nil {
		return err
	}
	if err := p.dev.WriteWord(smbus.CmdDMAAddr, smbus.AddrBank1Status); err != nil {
		return err
	}
	bank1, err := p.dev.Read32(smbus.CmdDMAFix)
	if err != nil {
		return err
	}

	for i := 0; i < cfg.SlotCount; i++ {
		j, bank := i, bank0
		if i >= 8 {
			j, bank = i-8, bank1
		}
		st := (bank[j/2] >> (4 * (j % 2))) & 0x0F
		if st != 1 {
			return &SlotStatusError{Slot: i, Status: st}
		}
	}

	return nil
}

// now returns the current time from the configured clock.
func (p *Programmer) now() time.Time {
	return p.config.Clock()
}

// reportProgress calls the progress callback if configured.
func (p *Programmer) reportProgress(progress Progress) {
	if p.config.ProgressCallback != nil {
		p.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (p *Programmer) logDebug(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (p *Programmer) logInfo(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (p *Programmer) logError(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Error(msg, keysAndValues...)
	}
}
