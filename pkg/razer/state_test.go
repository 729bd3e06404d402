package razer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdakhran/razer-ctl/internal/hid"
	"github.com/tdakhran/razer-ctl/internal/protocol"
)

// statefulFirmware emulates enough of the firmware state machine for
// composite snapshot tests: set commands mutate it, get commands report it.
// The two quirky queries drift remaining_packets like real hardware does.
type statefulFirmware struct {
	perfMode   byte
	fanMode    byte
	fanRpm     map[byte]byte
	boost      map[byte]byte
	maxFan     byte
	logoPower  byte
	logoAnim   byte
	brightness byte
	lights     byte
	battery    byte
}

func newStatefulFirmware() *statefulFirmware {
	return &statefulFirmware{
		fanRpm:  map[byte]byte{},
		boost:   map[byte]byte{byte(ClusterCPU): byte(CpuBoostLow), byte(ClusterGPU): byte(GpuBoostLow)},
		battery: byte(BatteryCareDisable),
	}
}

func (fw *statefulFirmware) handle(req, resp *protocol.Frame) {
	switch req.Command() {
	case cmdSetPerfMode:
		fw.perfMode = req.Args[2]
		fw.fanMode = req.Args[3]
	case cmdGetPerfMode:
		resp.Args[2] = fw.perfMode
		resp.Args[3] = fw.fanMode
	case cmdSetFanRpm:
		fw.fanRpm[req.Args[1]] = req.Args[2]
	case cmdGetFanRpm:
		resp.Args[2] = fw.fanRpm[req.Args[1]]
	case cmdSetBoost:
		fw.boost[req.Args[1]] = req.Args[2]
	case cmdGetBoost:
		resp.Args[2] = fw.boost[req.Args[1]]
	case cmdSetMaxFanSpeed:
		fw.maxFan = req.Args[0]
	case cmdGetMaxFanSpeed:
		resp.RemainingPackets = req.RemainingPackets + 1
		resp.Args[0] = fw.maxFan
	case cmdSetLogoPower:
		fw.logoPower = req.Args[2]
	case cmdGetLogoPower:
		resp.Args[2] = fw.logoPower
	case cmdSetLogoMode:
		fw.logoAnim = req.Args[2]
	case cmdGetLogoMode:
		resp.Args[2] = fw.logoAnim
	case cmdSetKeyboardBrightness:
		fw.brightness = req.Args[2]
	case cmdGetKeyboardBrightness:
		resp.Args[2] = fw.brightness
	case cmdSetLightsAlwaysOn:
		fw.lights = req.Args[0]
	case cmdGetLightsAlwaysOn:
		resp.Args[0] = fw.lights
	case cmdSetBatteryCare:
		fw.battery = req.Args[0]
	case cmdGetBatteryCare:
		resp.RemainingPackets = req.RemainingPackets + 1
		resp.Args[0] = fw.battery
	}
}

func firmwareDevice(t *testing.T, fw *statefulFirmware, desc Descriptor) (*hid.MockDevice, *Device) {
	t.Helper()
	mock := hid.NewMockDevice(func(raw []byte) ([]byte, error) {
		req, err := protocol.Unmarshal(raw)
		require.NoError(t, err)

		resp := *req
		resp.Status = protocol.StatusSuccessful
		fw.handle(req, &resp)
		return resp.Marshal(), nil
	})
	return mock, NewDevice(mock, desc)
}

func TestStateRoundTripBalancedManual(t *testing.T) {
	_, d := firmwareDevice(t, newStatefulFirmware(), Supported[0])

	state := &DeviceState{
		PerfMode:           PerfModeBalanced,
		FanMode:            FanModeManual,
		FanRpm:             3200,
		LogoMode:           LogoModeStatic,
		KeyboardBrightness: 180,
		LightsAlwaysOn:     LightsAlwaysOnEnable,
		BatteryCare:        BatteryCareEnable,
	}
	require.NoError(t, d.ApplyState(state))

	got, err := d.ReadState()
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestStateRoundTripCustom(t *testing.T) {
	_, d := firmwareDevice(t, newStatefulFirmware(), Supported[0])

	state := &DeviceState{
		PerfMode:       PerfModeCustom,
		CpuBoost:       CpuBoostOverclock,
		GpuBoost:       GpuBoostHigh,
		MaxFanSpeed:    MaxFanSpeedEnable,
		LogoMode:       LogoModeOff,
		LightsAlwaysOn: LightsAlwaysOnDisable,
		BatteryCare:    BatteryCareDisable,
	}
	require.NoError(t, d.ApplyState(state))

	got, err := d.ReadState()
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestApplyStateParentModeFirst(t *testing.T) {
	mock, d := firmwareDevice(t, newStatefulFirmware(), Supported[0])

	require.NoError(t, d.ApplyState(&DeviceState{
		PerfMode:    PerfModeCustom,
		CpuBoost:    CpuBoostBoost,
		GpuBoost:    GpuBoostHigh,
		MaxFanSpeed: MaxFanSpeedEnable,
	}))

	last := map[uint16]int{}
	first := map[uint16]int{}
	for i, cmd := range sentCommands(t, mock) {
		if _, ok := first[cmd]; !ok {
			first[cmd] = i
		}
		last[cmd] = i
	}

	require.Contains(t, first, cmdSetPerfMode)
	require.Contains(t, first, cmdSetBoost)
	require.Contains(t, first, cmdSetMaxFanSpeed)
	assert.Less(t, last[cmdSetPerfMode], first[cmdSetBoost],
		"custom mode must be entered before boost writes")
	assert.Less(t, last[cmdSetBoost], first[cmdSetMaxFanSpeed],
		"boosts must be written before max fan speed")
}

func TestApplyStateBalancedManualOrdering(t *testing.T) {
	mock, d := firmwareDevice(t, newStatefulFirmware(), Supported[0])

	require.NoError(t, d.ApplyState(&DeviceState{
		PerfMode: PerfModeBalanced,
		FanMode:  FanModeManual,
		FanRpm:   2400,
	}))

	cmds := sentCommands(t, mock)
	lastPerf, firstRpm := -1, -1
	for i, cmd := range cmds {
		if cmd == cmdSetPerfMode {
			lastPerf = i
		}
		if cmd == cmdSetFanRpm && firstRpm == -1 {
			firstRpm = i
		}
	}
	require.NotEqual(t, -1, firstRpm)
	assert.Less(t, lastPerf, firstRpm, "fan rpm is only written after entering balanced/manual")
}

func TestApplyStateMaxFanSpeedFailsLoudly(t *testing.T) {
	mock, d := firmwareDevice(t, newStatefulFirmware(), Supported[0])

	err := d.ApplyState(&DeviceState{
		PerfMode:    PerfModeCustom,
		CpuBoost:    CpuBoostLow,
		GpuBoost:    GpuBoostMedium,
		MaxFanSpeed: MaxFanSpeedDisable,
	})
	var pre *PreconditionError
	require.ErrorAs(t, err, &pre, "an unrestorable max fan speed field must not be dropped silently")
	assert.NotContains(t, sentCommands(t, mock), cmdSetMaxFanSpeed)
}

func TestReadStateHonorsFeatureSet(t *testing.T) {
	blade14, ok := Lookup("RZ09-0482")
	require.True(t, ok)

	fw := newStatefulFirmware()
	fw.logoPower = 1
	fw.logoAnim = 2
	mock, d := firmwareDevice(t, fw, blade14)

	state, err := d.ReadState()
	require.NoError(t, err)
	assert.Equal(t, LogoModeOff, state.LogoMode, "absent feature keeps its zero value")
	assert.NotContains(t, sentCommands(t, mock), cmdGetLogoPower)
	assert.NotContains(t, sentCommands(t, mock), cmdGetLogoMode)
}
