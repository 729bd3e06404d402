package razer

// The lid logo is two firmware sub-commands: power (on/off) and animation
// mode (static/breathing). Powering on with a stale mode byte is observably
// wrong on hardware, so turning the logo on writes mode before power.

const (
	cmdSetLogoPower uint16 = 0x0300
	cmdGetLogoPower uint16 = 0x0380
	cmdSetLogoMode  uint16 = 0x0302
	cmdGetLogoMode  uint16 = 0x0382
)

func (d *Device) setLogoPower(on bool) error {
	power := byte(0)
	if on {
		power = 1
	}
	_, err := d.sendEcho(cmdSetLogoPower, []byte{1, 4, power})
	return err
}

func (d *Device) setLogoAnimation(mode LogoMode) error {
	var wire byte
	switch mode {
	case LogoModeStatic:
		wire = 0
	case LogoModeBreathing:
		wire = 2
	default:
		return &InvalidWireValueError{What: "logo animation mode", Value: byte(mode)}
	}
	_, err := d.sendEcho(cmdSetLogoMode, []byte{1, 4, wire})
	return err
}

func (d *Device) getLogoPower() (bool, error) {
	resp, err := d.send(cmdGetLogoPower, []byte{1, 4, 0})
	if err != nil {
		return false, err
	}
	switch resp.Args[2] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, &InvalidWireValueError{What: "logo power", Value: resp.Args[2]}
}

func (d *Device) getLogoAnimation() (LogoMode, error) {
	resp, err := d.send(cmdGetLogoMode, []byte{1, 4, 0})
	if err != nil {
		return 0, err
	}
	switch resp.Args[2] {
	case 0:
		return LogoModeStatic, nil
	case 2:
		return LogoModeBreathing, nil
	}
	return 0, &InvalidWireValueError{What: "logo animation mode", Value: resp.Args[2]}
}

// SetLogoMode sets the effective logo state. Off writes only the power
// sub-command; Static and Breathing write mode first, then power.
func (d *Device) SetLogoMode(mode LogoMode) error {
	if mode != LogoModeOff {
		if err := d.setLogoAnimation(mode); err != nil {
			return err
		}
	}
	return d.setLogoPower(mode != LogoModeOff)
}

// GetLogoMode composes power and animation mode: with power off the
// effective mode is Off regardless of the stored mode byte.
func (d *Device) GetLogoMode() (LogoMode, error) {
	on, err := d.getLogoPower()
	if err != nil {
		return 0, err
	}
	if !on {
		return LogoModeOff, nil
	}
	return d.getLogoAnimation()
}
