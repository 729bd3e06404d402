package razer

// DeviceState is a composite snapshot of every gated feature, used to
// restore settings across reboots and mode flips. Field validity follows
// the performance state machine: FanMode and FanRpm are meaningful under
// Balanced, the boost and max fan fields under Custom.
type DeviceState struct {
	PerfMode           PerfMode
	FanMode            FanMode
	FanRpm             uint16
	CpuBoost           CpuBoost
	GpuBoost           GpuBoost
	MaxFanSpeed        MaxFanSpeedMode
	LogoMode           LogoMode
	KeyboardBrightness byte
	LightsAlwaysOn     LightsAlwaysOn
	BatteryCare        BatteryCare
}

// ReadState reads a full snapshot from the device, honoring the model's
// feature set. Fields of absent features keep their zero value.
func (d *Device) ReadState() (*DeviceState, error) {
	var state DeviceState

	if d.info.Has(FeaturePerf) || d.info.Has(FeatureFan) {
		perfMode, fanMode, err := d.GetPerfMode()
		if err != nil {
			return nil, err
		}
		state.PerfMode = perfMode
		state.FanMode = fanMode

		switch {
		case perfMode == PerfModeBalanced && fanMode == FanModeManual:
			rpm, err := d.GetFanRpm(FanZone1)
			if err != nil {
				return nil, err
			}
			state.FanRpm = rpm
		case perfMode == PerfModeCustom:
			if state.CpuBoost, err = d.GetCpuBoost(); err != nil {
				return nil, err
			}
			if state.GpuBoost, err = d.GetGpuBoost(); err != nil {
				return nil, err
			}
			if state.MaxFanSpeed, err = d.GetMaxFanSpeedMode(); err != nil {
				return nil, err
			}
		}
	}

	if d.info.Has(FeatureLidLogo) {
		mode, err := d.GetLogoMode()
		if err != nil {
			return nil, err
		}
		state.LogoMode = mode
	}

	if d.info.Has(FeatureKbdBacklight) {
		brightness, err := d.GetKeyboardBrightness()
		if err != nil {
			return nil, err
		}
		state.KeyboardBrightness = brightness
	}

	if d.info.Has(FeatureLightsAlwaysOn) {
		mode, err := d.GetLightsAlwaysOn()
		if err != nil {
			return nil, err
		}
		state.LightsAlwaysOn = mode
	}

	if d.info.Has(FeatureBatteryCare) {
		mode, err := d.GetBatteryCare()
		if err != nil {
			return nil, err
		}
		state.BatteryCare = mode
	}

	return &state, nil
}

// ApplyState writes a snapshot back to the device in precondition order:
// the parent performance mode first, then the sub-states that are only
// settable inside it.
func (d *Device) ApplyState(state *DeviceState) error {
	if d.info.Has(FeaturePerf) || d.info.Has(FeatureFan) {
		switch state.PerfMode {
		case PerfModeSilent:
			if err := d.SetPerfMode(PerfModeSilent); err != nil {
				return err
			}
		case PerfModeBalanced:
			if err := d.SetPerfMode(PerfModeBalanced); err != nil {
				return err
			}
			if state.FanMode == FanModeManual {
				if err := d.SetFanMode(FanModeManual); err != nil {
					return err
				}
				if err := d.SetFanRpm(state.FanRpm); err != nil {
					return err
				}
			}
		case PerfModeCustom:
			if err := d.SetPerfMode(PerfModeCustom); err != nil {
				return err
			}
			if err := d.SetCpuBoost(state.CpuBoost); err != nil {
				return err
			}
			if err := d.SetGpuBoost(state.GpuBoost); err != nil {
				return err
			}
			// Max fan speed goes last; its preconditions re-check the
			// boosts just written, so an unrestorable field fails loudly
			// instead of being dropped.
			if err := d.SetMaxFanSpeedMode(state.MaxFanSpeed); err != nil {
				return err
			}
		}
	}

	if d.info.Has(FeatureLidLogo) {
		if err := d.SetLogoMode(state.LogoMode); err != nil {
			return err
		}
	}

	if d.info.Has(FeatureKbdBacklight) {
		if err := d.SetKeyboardBrightness(state.KeyboardBrightness); err != nil {
			return err
		}
	}

	if d.info.Has(FeatureLightsAlwaysOn) {
		if err := d.SetLightsAlwaysOn(state.LightsAlwaysOn); err != nil {
			return err
		}
	}

	if d.info.Has(FeatureBatteryCare) {
		if err := d.SetBatteryCare(state.BatteryCare); err != nil {
			return err
		}
	}

	return nil
}
