package razer

const (
	cmdSetLightsAlwaysOn uint16 = 0x0004
	cmdGetLightsAlwaysOn uint16 = 0x0084
)

func (d *Device) SetLightsAlwaysOn(mode LightsAlwaysOn) error {
	_, err := d.sendEcho(cmdSetLightsAlwaysOn, []byte{byte(mode), 0})
	return err
}

func (d *Device) GetLightsAlwaysOn() (LightsAlwaysOn, error) {
	resp, err := d.send(cmdGetLightsAlwaysOn, []byte{0, 0})
	if err != nil {
		return 0, err
	}
	return LightsAlwaysOnFromByte(resp.Args[0])
}
