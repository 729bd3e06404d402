package razer

import "github.com/tdakhran/razer-ctl/internal/protocol"

const (
	cmdSetBatteryCare uint16 = 0x0712
	cmdGetBatteryCare uint16 = 0x0792
)

func (d *Device) SetBatteryCare(mode BatteryCare) error {
	_, err := d.sendEcho(cmdSetBatteryCare, []byte{byte(mode)})
	return err
}

// GetBatteryCare reads the charge-limit state. Like the max fan speed
// query, the response's remaining_packets does not echo the request, so
// that check is relaxed for this command only.
func (d *Device) GetBatteryCare() (BatteryCare, error) {
	resp, err := d.send(cmdGetBatteryCare, []byte{0}, protocol.AllowRemainingPacketsMismatch())
	if err != nil {
		return 0, err
	}
	return BatteryCareFromByte(resp.Args[0])
}
