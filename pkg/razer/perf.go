package razer

import "fmt"

// Performance and fan mode are exposed by the firmware redundantly per
// zone (nominally the CPU and GPU clusters). Reads must agree across both
// zones; writes go to both zones sequentially without rollback.

const (
	cmdSetPerfMode uint16 = 0x0d02
	cmdGetPerfMode uint16 = 0x0d82
	cmdSetBoost    uint16 = 0x0d07
	cmdGetBoost    uint16 = 0x0d87
)

var perfZones = []byte{1, 2}

// setPerfModeZones writes the (performance mode, fan mode) pair to both
// zones. Manual fan is a firmware state that only exists under Balanced.
func (d *Device) setPerfModeZones(perfMode PerfMode, fanMode FanMode) error {
	if fanMode == FanModeManual && perfMode != PerfModeBalanced {
		return &PreconditionError{
			Operation: "manual fan mode",
			Required:  "performance mode " + PerfModeBalanced.String(),
			Actual:    "performance mode " + perfMode.String(),
		}
	}

	for _, zone := range perfZones {
		args := []byte{0x01, zone, byte(perfMode), byte(fanMode)}
		if _, err := d.sendEcho(cmdSetPerfMode, args); err != nil {
			return &ZoneWriteError{Zone: zone, Err: err}
		}
	}
	return nil
}

// SetPerfMode switches the performance mode, resetting the fan to auto.
func (d *Device) SetPerfMode(mode PerfMode) error {
	return d.setPerfModeZones(mode, FanModeAuto)
}

// GetPerfMode reads the (performance mode, fan mode) pair from both zones
// and requires them to be identical; a mismatch means the device is in an
// inconsistent state this protocol does not support.
func (d *Device) GetPerfMode() (PerfMode, FanMode, error) {
	type zoneModes struct {
		perf PerfMode
		fan  FanMode
	}

	var modes [2]zoneModes
	for i, zone := range perfZones {
		resp, err := d.send(cmdGetPerfMode, []byte{0, zone, 0, 0})
		if err != nil {
			return 0, 0, fmt.Errorf("query zone %d: %w", zone, err)
		}
		perf, err := PerfModeFromByte(resp.Args[2])
		if err != nil {
			return 0, 0, err
		}
		fan, err := FanModeFromByte(resp.Args[3])
		if err != nil {
			return 0, 0, err
		}
		modes[i] = zoneModes{perf: perf, fan: fan}
	}

	if modes[0] != modes[1] {
		return 0, 0, &ZoneMismatchError{
			What:  "performance/fan mode",
			Zone1: modes[0].perf.String() + "/" + modes[0].fan.String(),
			Zone2: modes[1].perf.String() + "/" + modes[1].fan.String(),
		}
	}
	return modes[0].perf, modes[0].fan, nil
}

// setBoost writes a cluster power level. Boost tuning only exists in
// custom mode with automatic fan; the current mode is read fresh from the
// device before the write, never assumed.
func (d *Device) setBoost(cluster Cluster, boost byte) error {
	perfMode, fanMode, err := d.GetPerfMode()
	if err != nil {
		return err
	}
	if perfMode != PerfModeCustom || fanMode != FanModeAuto {
		return &PreconditionError{
			Operation: "boost tuning",
			Required:  "performance mode custom with fan mode auto",
			Actual:    "performance mode " + perfMode.String() + " with fan mode " + fanMode.String(),
		}
	}

	_, err = d.sendEcho(cmdSetBoost, []byte{0, byte(cluster), boost})
	return err
}

func (d *Device) getBoost(cluster Cluster) (byte, error) {
	resp, err := d.send(cmdGetBoost, []byte{0, byte(cluster), 0})
	if err != nil {
		return 0, err
	}
	if resp.Args[1] != byte(cluster) {
		return 0, &DiscriminantError{Command: cmdGetBoost, Index: 1, Want: byte(cluster), Got: resp.Args[1]}
	}
	return resp.Args[2], nil
}

func (d *Device) SetCpuBoost(boost CpuBoost) error {
	return d.setBoost(ClusterCPU, byte(boost))
}

func (d *Device) SetGpuBoost(boost GpuBoost) error {
	return d.setBoost(ClusterGPU, byte(boost))
}

func (d *Device) GetCpuBoost() (CpuBoost, error) {
	b, err := d.getBoost(ClusterCPU)
	if err != nil {
		return 0, err
	}
	return CpuBoostFromByte(b)
}

func (d *Device) GetGpuBoost() (GpuBoost, error) {
	b, err := d.getBoost(ClusterGPU)
	if err != nil {
		return 0, err
	}
	return GpuBoostFromByte(b)
}
