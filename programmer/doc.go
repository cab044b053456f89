// Package programmer provides a high-level API for programming NVM
// configurations into Renesas digital multiphase voltage regulators and
// for retrieving their black box telemetry.
//
// # Overview
//
// This package orchestrates the complete configuration write pipeline:
//   - Parsing the configuration text (package raacfg)
//   - Verifying the device ID and revision against the file header
//   - Verifying the device has enough free NVM slots
//   - Transmitting the configuration commands in file order
//   - Polling for completion and checking per-slot programming status
//
// Every stage fails fast: the first error aborts the pipeline and is
// returned to the caller unchanged. There are no retries and no
// rollback; NVM programming is destructive, and a failure after
// transmission has begun can leave the device partially programmed,
// requiring out-of-band recovery.
//
// # Basic Usage
//
//	bus, err := i2cbus.Open("/dev/i2c-1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bus.Close()
//
//	prog := programmer.New(smbus.New(0x60, bus))
//
//	text, _ := os.ReadFile("config.txt")
//	if _, err := prog.WriteConfig(context.Background(), text); err != nil {
//	    log.Fatal(err)
//	}
//
// # Black Box
//
// The black box is a fixed 288-byte hex-dump artifact rendered from the
// device's diagnostic telemetry ring:
//
//	art, err := prog.ReadBlackBox(ctx)        // full artifact
//	n, err := prog.ReadBlackBoxAt(ctx, buf, 96) // windowed, re-enterable
//
// # Sessions
//
// A Session exposes the two operations through an explicit dispatch
// table keyed by Op, giving pseudo-file read/write semantics for
// integration with file-like frontends:
//
//	sess := programmer.NewSession(prog)
//	defer sess.Close()
//
//	n, err := sess.WriteAt(ctx, programmer.OpWriteConfig, text, 0)
//	n, err = sess.ReadAt(ctx, programmer.OpReadBlackBox, buf, 0)
//
// # Concurrency
//
// Everything here is synchronous and blocking. The device's NVM has no
// compare-and-swap primitive and the package takes no locks: callers
// must serialize write operations per device. Black box reads do not
// mutate device state but share the bus and should not interleave with
// an in-progress write.
//
// # Error Handling
//
// The package provides structured error types:
//   - IdentityMismatchError: configuration targets a different device
//   - CapacityError: not enough free NVM slots
//   - TimeoutError: completion poll deadline elapsed
//   - ProgrammingError: device reported a failed programming pass
//   - SlotStatusError: a specific slot failed to program
//   - smbus.TransportError: bus-level failure
//   - raacfg.FormatError / raacfg.CapacityError: malformed input
package programmer
