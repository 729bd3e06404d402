package razer

const (
	cmdSetKeyboardBrightness uint16 = 0x0303
	cmdGetKeyboardBrightness uint16 = 0x0383
)

// SetKeyboardBrightness sets the backlight level, 0 to 255.
func (d *Device) SetKeyboardBrightness(brightness byte) error {
	_, err := d.sendEcho(cmdSetKeyboardBrightness, []byte{1, 5, brightness})
	return err
}

// GetKeyboardBrightness reads the current backlight level.
func (d *Device) GetKeyboardBrightness() (byte, error) {
	resp, err := d.send(cmdGetKeyboardBrightness, []byte{1, 5, 0})
	if err != nil {
		return 0, err
	}
	if resp.Args[1] != 5 {
		return 0, &DiscriminantError{Command: cmdGetKeyboardBrightness, Index: 1, Want: 5, Got: resp.Args[1]}
	}
	return resp.Args[2], nil
}
