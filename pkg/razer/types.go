package razer

// Wire encodings in this file are firmware contracts. Every FromByte
// conversion is total over the documented values and fails for anything
// else; a stray byte means a protocol or firmware mismatch, not something
// to guess around.

// Cluster selects the CPU or GPU power cluster in boost commands.
type Cluster byte

const (
	ClusterCPU Cluster = 0x01
	ClusterGPU Cluster = 0x02
)

// FanZone selects one of the two physical fan zones.
type FanZone byte

const (
	FanZone1 FanZone = 0x01
	FanZone2 FanZone = 0x02
)

// PerfMode is the firmware performance mode.
type PerfMode byte

const (
	PerfModeBalanced PerfMode = 0
	PerfModeCustom   PerfMode = 4
	PerfModeSilent   PerfMode = 5
)

func PerfModeFromByte(b byte) (PerfMode, error) {
	switch PerfMode(b) {
	case PerfModeBalanced, PerfModeCustom, PerfModeSilent:
		return PerfMode(b), nil
	}
	return 0, &InvalidWireValueError{What: "performance mode", Value: b}
}

func (m PerfMode) String() string {
	switch m {
	case PerfModeBalanced:
		return "balanced"
	case PerfModeCustom:
		return "custom"
	case PerfModeSilent:
		return "silent"
	}
	return "unknown"
}

// FanMode selects automatic or manual fan control.
type FanMode byte

const (
	FanModeAuto   FanMode = 0
	FanModeManual FanMode = 1
)

func FanModeFromByte(b byte) (FanMode, error) {
	switch FanMode(b) {
	case FanModeAuto, FanModeManual:
		return FanMode(b), nil
	}
	return 0, &InvalidWireValueError{What: "fan mode", Value: b}
}

func (m FanMode) String() string {
	if m == FanModeManual {
		return "manual"
	}
	return "auto"
}

// CpuBoost is the CPU power level in custom performance mode.
type CpuBoost byte

const (
	CpuBoostLow       CpuBoost = 0
	CpuBoostMedium    CpuBoost = 1
	CpuBoostHigh      CpuBoost = 2
	CpuBoostBoost     CpuBoost = 3
	CpuBoostOverclock CpuBoost = 4
)

func CpuBoostFromByte(b byte) (CpuBoost, error) {
	switch CpuBoost(b) {
	case CpuBoostLow, CpuBoostMedium, CpuBoostHigh, CpuBoostBoost, CpuBoostOverclock:
		return CpuBoost(b), nil
	}
	return 0, &InvalidWireValueError{What: "cpu boost", Value: b}
}

func (b CpuBoost) String() string {
	switch b {
	case CpuBoostLow:
		return "low"
	case CpuBoostMedium:
		return "medium"
	case CpuBoostHigh:
		return "high"
	case CpuBoostBoost:
		return "boost"
	case CpuBoostOverclock:
		return "overclock"
	}
	return "unknown"
}

// GpuBoost is the GPU power level in custom performance mode.
type GpuBoost byte

const (
	GpuBoostLow    GpuBoost = 0
	GpuBoostMedium GpuBoost = 1
	GpuBoostHigh   GpuBoost = 2
)

func GpuBoostFromByte(b byte) (GpuBoost, error) {
	switch GpuBoost(b) {
	case GpuBoostLow, GpuBoostMedium, GpuBoostHigh:
		return GpuBoost(b), nil
	}
	return 0, &InvalidWireValueError{What: "gpu boost", Value: b}
}

func (b GpuBoost) String() string {
	switch b {
	case GpuBoostLow:
		return "low"
	case GpuBoostMedium:
		return "medium"
	case GpuBoostHigh:
		return "high"
	}
	return "unknown"
}

// MaxFanSpeedMode pins both fans at full speed while enabled.
type MaxFanSpeedMode byte

const (
	MaxFanSpeedDisable MaxFanSpeedMode = 0x00
	MaxFanSpeedEnable  MaxFanSpeedMode = 0x02
)

func MaxFanSpeedModeFromByte(b byte) (MaxFanSpeedMode, error) {
	switch MaxFanSpeedMode(b) {
	case MaxFanSpeedDisable, MaxFanSpeedEnable:
		return MaxFanSpeedMode(b), nil
	}
	return 0, &InvalidWireValueError{What: "max fan speed mode", Value: b}
}

func (m MaxFanSpeedMode) String() string {
	if m == MaxFanSpeedEnable {
		return "enable"
	}
	return "disable"
}

// LogoMode is the effective lid logo state. Off is a composite: firmware
// stores power and animation mode separately, and Off means power is off
// regardless of the stored mode byte.
type LogoMode byte

const (
	LogoModeOff LogoMode = iota
	LogoModeStatic
	LogoModeBreathing
)

func (m LogoMode) String() string {
	switch m {
	case LogoModeStatic:
		return "static"
	case LogoModeBreathing:
		return "breathing"
	}
	return "off"
}

// LightsAlwaysOn keeps keyboard lighting on while the laptop is idle.
type LightsAlwaysOn byte

const (
	LightsAlwaysOnDisable LightsAlwaysOn = 0x00
	LightsAlwaysOnEnable  LightsAlwaysOn = 0x03
)

func LightsAlwaysOnFromByte(b byte) (LightsAlwaysOn, error) {
	switch LightsAlwaysOn(b) {
	case LightsAlwaysOnDisable, LightsAlwaysOnEnable:
		return LightsAlwaysOn(b), nil
	}
	return 0, &InvalidWireValueError{What: "lights always on", Value: b}
}

func (m LightsAlwaysOn) String() string {
	if m == LightsAlwaysOnEnable {
		return "enable"
	}
	return "disable"
}

// BatteryCare limits the battery charge level to prolong battery health.
type BatteryCare byte

const (
	BatteryCareDisable BatteryCare = 0x50
	BatteryCareEnable  BatteryCare = 0xd0
)

func BatteryCareFromByte(b byte) (BatteryCare, error) {
	switch BatteryCare(b) {
	case BatteryCareDisable, BatteryCareEnable:
		return BatteryCare(b), nil
	}
	return 0, &InvalidWireValueError{What: "battery care", Value: b}
}

func (m BatteryCare) String() string {
	if m == BatteryCareEnable {
		return "enable"
	}
	return "disable"
}
