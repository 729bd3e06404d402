package razer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdakhran/razer-ctl/internal/hid"
	"github.com/tdakhran/razer-ctl/internal/protocol"
)

// scripted builds a mock device behaving like cooperative firmware: every
// response echoes the request with a successful status, then the per-command
// handler adjusts the frame.
func scripted(t *testing.T, handlers map[uint16]func(req, resp *protocol.Frame)) *hid.MockDevice {
	t.Helper()
	return hid.NewMockDevice(func(raw []byte) ([]byte, error) {
		req, err := protocol.Unmarshal(raw)
		require.NoError(t, err)

		resp := *req
		resp.Status = protocol.StatusSuccessful
		if h, ok := handlers[req.Command()]; ok {
			h(req, &resp)
		}
		return resp.Marshal(), nil
	})
}

func testDevice(mock *hid.MockDevice) *Device {
	return NewDevice(mock, Supported[0])
}

// sentCommands decodes the command word of every request the mock saw.
func sentCommands(t *testing.T, mock *hid.MockDevice) []uint16 {
	t.Helper()
	var out []uint16
	for _, raw := range mock.Requests {
		f, err := protocol.Unmarshal(raw)
		require.NoError(t, err)
		out = append(out, f.Command())
	}
	return out
}

func reportPerfMode(perf PerfMode, fan FanMode) func(req, resp *protocol.Frame) {
	return func(req, resp *protocol.Frame) {
		resp.Args[2] = byte(perf)
		resp.Args[3] = byte(fan)
	}
}

func TestSetFanRpmRequiresBalancedManual(t *testing.T) {
	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdGetPerfMode: reportPerfMode(PerfModeCustom, FanModeAuto),
	})
	d := testDevice(mock)

	err := d.SetFanRpm(3000)
	var pre *PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "fan rpm", pre.Operation)

	assert.NotContains(t, sentCommands(t, mock), cmdSetFanRpm,
		"precondition failure must not reach the fan rpm command")
}

func TestSetFanRpmWritesBothZones(t *testing.T) {
	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdGetPerfMode: reportPerfMode(PerfModeBalanced, FanModeManual),
	})
	d := testDevice(mock)

	require.NoError(t, d.SetFanRpm(2050))

	var zones []byte
	for _, raw := range mock.Requests {
		f, err := protocol.Unmarshal(raw)
		require.NoError(t, err)
		if f.Command() != cmdSetFanRpm {
			continue
		}
		zones = append(zones, f.Args[1])
		// 2050 rpm truncates to the wire value for 2000
		assert.Equal(t, byte(20), f.Args[2])
	}
	assert.Equal(t, []byte{byte(FanZone1), byte(FanZone2)}, zones)
}

func TestSetFanRpmRange(t *testing.T) {
	mock := scripted(t, nil)
	d := testDevice(mock)

	for _, rpm := range []uint16{0, 1999, 5001, 60000} {
		err := d.SetFanRpm(rpm)
		var oor *RpmOutOfRangeError
		require.ErrorAs(t, err, &oor, "rpm %d", rpm)
		assert.Equal(t, rpm, oor.Rpm)
	}
	assert.Empty(t, mock.Requests, "range check must happen before any I/O")
}

func TestGetPerfModeZoneMismatch(t *testing.T) {
	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdGetPerfMode: func(req, resp *protocol.Frame) {
			if req.Args[1] == 1 {
				resp.Args[2] = byte(PerfModeBalanced)
			} else {
				resp.Args[2] = byte(PerfModeCustom)
			}
			resp.Args[3] = byte(FanModeAuto)
		},
	})
	d := testDevice(mock)

	_, _, err := d.GetPerfMode()
	var mismatch *ZoneMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "balanced/auto", mismatch.Zone1)
	assert.Equal(t, "custom/auto", mismatch.Zone2)
}

func TestGetPerfModeAgreement(t *testing.T) {
	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdGetPerfMode: reportPerfMode(PerfModeSilent, FanModeAuto),
	})
	d := testDevice(mock)

	perf, fan, err := d.GetPerfMode()
	require.NoError(t, err)
	assert.Equal(t, PerfModeSilent, perf)
	assert.Equal(t, FanModeAuto, fan)
	assert.Len(t, mock.Requests, 2, "one query per zone")
}

func TestSetPerfModeWritesBothZones(t *testing.T) {
	mock := scripted(t, nil)
	d := testDevice(mock)

	require.NoError(t, d.SetPerfMode(PerfModeSilent))
	assert.Equal(t, []uint16{cmdSetPerfMode, cmdSetPerfMode}, sentCommands(t, mock))
}

func TestSetBoostRequiresCustomAuto(t *testing.T) {
	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdGetPerfMode: reportPerfMode(PerfModeBalanced, FanModeAuto),
	})
	d := testDevice(mock)

	err := d.SetCpuBoost(CpuBoostHigh)
	var pre *PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.NotContains(t, sentCommands(t, mock), cmdSetBoost)
}

func TestSetBoostInCustomMode(t *testing.T) {
	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdGetPerfMode: reportPerfMode(PerfModeCustom, FanModeAuto),
	})
	d := testDevice(mock)

	require.NoError(t, d.SetCpuBoost(CpuBoostOverclock))
	require.NoError(t, d.SetGpuBoost(GpuBoostHigh))
	cmds := sentCommands(t, mock)
	assert.Contains(t, cmds, cmdSetBoost)
}

func TestSetMaxFanSpeedPreconditions(t *testing.T) {
	boosts := map[Cluster]byte{ClusterCPU: byte(CpuBoostBoost), ClusterGPU: byte(GpuBoostHigh)}
	handlers := map[uint16]func(req, resp *protocol.Frame){
		cmdGetPerfMode: reportPerfMode(PerfModeCustom, FanModeAuto),
		cmdGetBoost: func(req, resp *protocol.Frame) {
			resp.Args[2] = boosts[Cluster(req.Args[1])]
		},
	}

	mock := scripted(t, handlers)
	d := testDevice(mock)
	require.NoError(t, d.SetMaxFanSpeedMode(MaxFanSpeedEnable))
	assert.Contains(t, sentCommands(t, mock), cmdSetMaxFanSpeed)

	// low cpu boost blocks the write
	boosts[ClusterCPU] = byte(CpuBoostLow)
	mock = scripted(t, handlers)
	d = testDevice(mock)
	var pre *PreconditionError
	require.ErrorAs(t, d.SetMaxFanSpeedMode(MaxFanSpeedEnable), &pre)
	assert.NotContains(t, sentCommands(t, mock), cmdSetMaxFanSpeed)
}

func TestLogoOffWritesOnlyPower(t *testing.T) {
	mock := scripted(t, nil)
	d := testDevice(mock)

	require.NoError(t, d.SetLogoMode(LogoModeOff))
	assert.Equal(t, []uint16{cmdSetLogoPower}, sentCommands(t, mock))
}

func TestLogoOnWritesModeThenPower(t *testing.T) {
	for _, mode := range []LogoMode{LogoModeStatic, LogoModeBreathing} {
		mock := scripted(t, nil)
		d := testDevice(mock)

		require.NoError(t, d.SetLogoMode(mode))
		assert.Equal(t, []uint16{cmdSetLogoMode, cmdSetLogoPower}, sentCommands(t, mock),
			"mode byte must be written before powering on")
	}
}

func TestGetLogoModeComposition(t *testing.T) {
	tests := []struct {
		name  string
		power byte
		mode  byte
		want  LogoMode
	}{
		{"powered off hides stored mode", 0, 2, LogoModeOff},
		{"static", 1, 0, LogoModeStatic},
		{"breathing", 1, 2, LogoModeBreathing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
				cmdGetLogoPower: func(req, resp *protocol.Frame) { resp.Args[2] = tt.power },
				cmdGetLogoMode:  func(req, resp *protocol.Frame) { resp.Args[2] = tt.mode },
			})
			d := testDevice(mock)

			got, err := d.GetLogoMode()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEchoContract(t *testing.T) {
	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdSetKeyboardBrightness: func(req, resp *protocol.Frame) {
			resp.Args = [protocol.ArgsSize]byte{}
		},
	})
	d := testDevice(mock)

	err := d.SetKeyboardBrightness(128)
	var echo *EchoMismatchError
	require.ErrorAs(t, err, &echo)
	assert.Equal(t, cmdSetKeyboardBrightness, echo.Command)
}

func TestGetBoostChecksClusterDiscriminant(t *testing.T) {
	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdGetBoost: func(req, resp *protocol.Frame) {
			resp.Args[1] = 0x7f
		},
	})
	d := testDevice(mock)

	_, err := d.GetCpuBoost()
	var disc *DiscriminantError
	require.ErrorAs(t, err, &disc)
}

func TestRelaxedRemainingPacketsQueries(t *testing.T) {
	drift := func(req, resp *protocol.Frame) {
		resp.RemainingPackets = req.RemainingPackets + 1
	}

	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdGetBatteryCare: func(req, resp *protocol.Frame) {
			drift(req, resp)
			resp.Args[0] = byte(BatteryCareEnable)
		},
		cmdGetMaxFanSpeed: func(req, resp *protocol.Frame) {
			drift(req, resp)
			resp.Args[0] = byte(MaxFanSpeedEnable)
		},
		cmdGetKeyboardBrightness: drift,
	})
	d := testDevice(mock)

	care, err := d.GetBatteryCare()
	require.NoError(t, err, "battery care query tolerates remaining packets drift")
	assert.Equal(t, BatteryCareEnable, care)

	mfs, err := d.GetMaxFanSpeedMode()
	require.NoError(t, err, "max fan speed query tolerates remaining packets drift")
	assert.Equal(t, MaxFanSpeedEnable, mfs)

	_, err = d.GetKeyboardBrightness()
	var corr *protocol.CorrelationError
	require.ErrorAs(t, err, &corr, "every other command stays strict")
}

func TestNotSupportedSurfaced(t *testing.T) {
	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdGetLightsAlwaysOn: func(req, resp *protocol.Frame) {
			resp.Status = protocol.StatusNotSupported
		},
	})
	d := testDevice(mock)

	_, err := d.GetLightsAlwaysOn()
	assert.True(t, errors.Is(err, protocol.ErrNotSupported))
}

func TestSetFanModeRoutesThroughPerfWriter(t *testing.T) {
	mock := scripted(t, map[uint16]func(req, resp *protocol.Frame){
		cmdGetPerfMode: reportPerfMode(PerfModeBalanced, FanModeAuto),
	})
	d := testDevice(mock)

	require.NoError(t, d.SetFanMode(FanModeManual))

	var writes [][]byte
	for _, raw := range mock.Requests {
		f, err := protocol.Unmarshal(raw)
		require.NoError(t, err)
		if f.Command() == cmdSetPerfMode {
			writes = append(writes, []byte{f.Args[1], f.Args[2], f.Args[3]})
		}
	}
	require.Len(t, writes, 2)
	assert.Equal(t, []byte{1, byte(PerfModeBalanced), byte(FanModeManual)}, writes[0])
	assert.Equal(t, []byte{2, byte(PerfModeBalanced), byte(FanModeManual)}, writes[1])
}

func TestManualFanOutsideBalancedRejected(t *testing.T) {
	mock := scripted(t, nil)
	d := testDevice(mock)

	err := d.setPerfModeZones(PerfModeCustom, FanModeManual)
	var pre *PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Empty(t, mock.Requests)
}
