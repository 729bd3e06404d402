package razer

import "fmt"

// Parsers for the textual forms used by the CLI and the persisted state
// file. They accept exactly the strings the String methods produce.

func ParsePerfMode(s string) (PerfMode, error) {
	switch s {
	case "balanced":
		return PerfModeBalanced, nil
	case "custom":
		return PerfModeCustom, nil
	case "silent":
		return PerfModeSilent, nil
	}
	return 0, fmt.Errorf("unknown performance mode %q (want balanced, silent or custom)", s)
}

func ParseFanMode(s string) (FanMode, error) {
	switch s {
	case "auto":
		return FanModeAuto, nil
	case "manual":
		return FanModeManual, nil
	}
	return 0, fmt.Errorf("unknown fan mode %q (want auto or manual)", s)
}

func ParseCpuBoost(s string) (CpuBoost, error) {
	switch s {
	case "low":
		return CpuBoostLow, nil
	case "medium":
		return CpuBoostMedium, nil
	case "high":
		return CpuBoostHigh, nil
	case "boost":
		return CpuBoostBoost, nil
	case "overclock":
		return CpuBoostOverclock, nil
	}
	return 0, fmt.Errorf("unknown cpu boost %q (want low, medium, high, boost or overclock)", s)
}

func ParseGpuBoost(s string) (GpuBoost, error) {
	switch s {
	case "low":
		return GpuBoostLow, nil
	case "medium":
		return GpuBoostMedium, nil
	case "high":
		return GpuBoostHigh, nil
	}
	return 0, fmt.Errorf("unknown gpu boost %q (want low, medium or high)", s)
}

func ParseMaxFanSpeedMode(s string) (MaxFanSpeedMode, error) {
	switch s {
	case "enable":
		return MaxFanSpeedEnable, nil
	case "disable":
		return MaxFanSpeedDisable, nil
	}
	return 0, fmt.Errorf("unknown max fan speed mode %q (want enable or disable)", s)
}

func ParseLogoMode(s string) (LogoMode, error) {
	switch s {
	case "off":
		return LogoModeOff, nil
	case "static":
		return LogoModeStatic, nil
	case "breathing":
		return LogoModeBreathing, nil
	}
	return 0, fmt.Errorf("unknown logo mode %q (want off, static or breathing)", s)
}

func ParseLightsAlwaysOn(s string) (LightsAlwaysOn, error) {
	switch s {
	case "enable":
		return LightsAlwaysOnEnable, nil
	case "disable":
		return LightsAlwaysOnDisable, nil
	}
	return 0, fmt.Errorf("unknown lights always on mode %q (want enable or disable)", s)
}

func ParseBatteryCare(s string) (BatteryCare, error) {
	switch s {
	case "enable":
		return BatteryCareEnable, nil
	case "disable":
		return BatteryCareDisable, nil
	}
	return 0, fmt.Errorf("unknown battery care mode %q (want enable or disable)", s)
}
