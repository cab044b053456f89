package programmer

import (
	"github.com/gfpeltier/go-dmpvr/smbus"
)

// SetAVSEnabled hands VOUT control for the given rail to the AVSBus
// interface (true) or back to PMBus (false).
func (p *Programmer) SetAVSEnabled(page byte, enable bool) error {
	if err := p.dev.SetPage(page); err != nil {
		return err
	}

	var target byte
	if enable {
		target = smbus.OperationAVSEnable

		// Writes to the VOUT setpoint over AVSBus persist after the rail
		// is switched to PMBus control. Switching back to AVSBus control
		// restores that persisted setpoint rather than re-initializing to
		// PMBus VOUT_COMMAND. Rewriting VOUT_COMMAND over PMBus before
		// enabling AVS control is the workaround.
		v, err := p.dev.ReadWord(smbus.RegVoutCommand)
		if err != nil {
			return err
		}
		if err := p.dev.WriteWord(smbus.RegVoutCommand, v); err != nil {
			return err
		}
	}

	cur, err := p.dev.ReadByte(smbus.RegOperation)
	if err != nil {
		return err
	}
	next := cur&^byte(smbus.OperationAVSEnable) | target
	if next == cur {
		return nil
	}
	return p.dev.WriteByte(smbus.RegOperation, next)
}

// AVSEnabled reports whether the rail's VOUT is under AVSBus control.
func (p *Programmer) AVSEnabled(page byte) (bool, error) {
	if err := p.dev.SetPage(page); err != nil {
		return false, err
	}
	v, err := p.dev.ReadByte(smbus.RegOperation)
	if err != nil {
		return false, err
	}
	return v&smbus.OperationAVSEnable == smbus.OperationAVSEnable, nil
}
