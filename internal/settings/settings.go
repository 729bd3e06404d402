// Package settings persists the last applied device state so it can be
// restored after a reboot or an external mode change. This is purely an
// application concern; the protocol layer never reads it.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tdakhran/razer-ctl/pkg/razer"
)

const (
	appDirName    = "razerctl"
	stateFileName = "state"
)

// Store reads and writes one DeviceState as a YAML file.
type Store struct {
	dir string
}

// NewStore uses the user config directory (e.g. ~/.config/razerctl).
func NewStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return NewStoreAt(filepath.Join(base, appDirName)), nil
}

// NewStoreAt uses an explicit directory. Handy for tests.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the full path of the state file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, stateFileName+".yaml")
}

// Save writes the state, creating the directory if needed.
func (s *Store) Save(state *razer.DeviceState) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	v := viper.New()
	v.Set("perf.mode", state.PerfMode.String())
	v.Set("perf.fan_mode", state.FanMode.String())
	v.Set("perf.fan_rpm", int(state.FanRpm))
	v.Set("perf.cpu_boost", state.CpuBoost.String())
	v.Set("perf.gpu_boost", state.GpuBoost.String())
	v.Set("perf.max_fan_speed", state.MaxFanSpeed.String())
	v.Set("lights.logo_mode", state.LogoMode.String())
	v.Set("lights.keyboard_brightness", int(state.KeyboardBrightness))
	v.Set("lights.always_on", state.LightsAlwaysOn.String())
	v.Set("battery.care", state.BatteryCare.String())

	if err := v.WriteConfigAs(s.Path()); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Load reads the state file back. A missing file surfaces as a
// viper.ConfigFileNotFoundError the caller can detect with errors.As.
func (s *Store) Load() (*razer.DeviceState, error) {
	v := viper.New()
	v.SetConfigName(stateFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(s.dir)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var (
		state razer.DeviceState
		err   error
	)
	if state.PerfMode, err = razer.ParsePerfMode(v.GetString("perf.mode")); err != nil {
		return nil, err
	}
	if state.FanMode, err = razer.ParseFanMode(v.GetString("perf.fan_mode")); err != nil {
		return nil, err
	}
	state.FanRpm = uint16(v.GetInt("perf.fan_rpm"))
	if state.CpuBoost, err = razer.ParseCpuBoost(v.GetString("perf.cpu_boost")); err != nil {
		return nil, err
	}
	if state.GpuBoost, err = razer.ParseGpuBoost(v.GetString("perf.gpu_boost")); err != nil {
		return nil, err
	}
	if state.MaxFanSpeed, err = razer.ParseMaxFanSpeedMode(v.GetString("perf.max_fan_speed")); err != nil {
		return nil, err
	}
	if state.LogoMode, err = razer.ParseLogoMode(v.GetString("lights.logo_mode")); err != nil {
		return nil, err
	}
	state.KeyboardBrightness = byte(v.GetInt("lights.keyboard_brightness"))
	if state.LightsAlwaysOn, err = razer.ParseLightsAlwaysOn(v.GetString("lights.always_on")); err != nil {
		return nil, err
	}
	if state.BatteryCare, err = razer.ParseBatteryCare(v.GetString("battery.care")); err != nil {
		return nil, err
	}

	return &state, nil
}
