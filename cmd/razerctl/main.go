package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdakhran/razer-ctl/internal/settings"
	"github.com/tdakhran/razer-ctl/pkg/razer"
)

var (
	flagPID     string
	flagVerbose bool
)

// maybeHex parses "0x029f" or "671".
func maybeHex(s string) (uint16, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return uint16(v), nil
}

// openDevice resolves the target: catalog auto-detection by default, or an
// explicit product id with all features enabled when --pid is given.
func openDevice() (*razer.Device, error) {
	if flagPID == "" {
		return razer.Detect()
	}
	pid, err := maybeHex(flagPID)
	if err != nil {
		return nil, err
	}
	return razer.OpenPID(pid)
}

// requireFeature gates an operation on the resolved model's capability set.
func requireFeature(d *razer.Device, f razer.Feature) error {
	if !d.Info().Has(f) {
		return fmt.Errorf("%s does not support %s", d.Info().Name, f)
	}
	return nil
}

// withDevice opens the device, runs fn and closes it.
func withDevice(feature razer.Feature, fn func(*razer.Device) error) error {
	d, err := openDevice()
	if err != nil {
		return err
	}
	defer d.Close()

	if feature != "" {
		if err := requireFeature(d, feature); err != nil {
			return err
		}
	}
	return fn(d)
}

func enumerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enumerate",
		Short: "List discovered Razer devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			pids, model, err := razer.Enumerate()
			if err != nil {
				return err
			}
			_, supported := razer.Lookup(model)
			fmt.Printf("Model:     %s\n", model)
			fmt.Printf("Supported: %v\n", supported)
			for _, pid := range pids {
				fmt.Printf("PID:       0x%04x\n", pid)
			}
			return nil
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print device info and current state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice("", func(d *razer.Device) error {
				info := d.Info()
				fmt.Printf("Device:   %s (PID 0x%04x)\n", info.Name, info.PID)
				fmt.Printf("Features: %v\n", info.Features)

				state, err := d.ReadState()
				if err != nil {
					return err
				}

				fmt.Printf("Performance mode: %s\n", state.PerfMode)
				switch state.PerfMode {
				case razer.PerfModeBalanced:
					fmt.Printf("Fan mode:         %s\n", state.FanMode)
					if state.FanMode == razer.FanModeManual {
						fmt.Printf("Fan RPM:          %d\n", state.FanRpm)
					}
				case razer.PerfModeCustom:
					fmt.Printf("CPU boost:        %s\n", state.CpuBoost)
					fmt.Printf("GPU boost:        %s\n", state.GpuBoost)
					fmt.Printf("Max fan speed:    %s\n", state.MaxFanSpeed)
				}
				if info.Has(razer.FeatureLidLogo) {
					fmt.Printf("Logo mode:        %s\n", state.LogoMode)
				}
				if info.Has(razer.FeatureKbdBacklight) {
					fmt.Printf("Keyboard level:   %d\n", state.KeyboardBrightness)
				}
				if info.Has(razer.FeatureLightsAlwaysOn) {
					fmt.Printf("Lights always on: %s\n", state.LightsAlwaysOn)
				}
				if info.Has(razer.FeatureBatteryCare) {
					fmt.Printf("Battery care:     %s\n", state.BatteryCare)
				}
				return nil
			})
		},
	}
}

func perfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perf",
		Short: "Control performance modes",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "mode <balanced|silent|custom>",
		Short: "Set performance mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := razer.ParsePerfMode(args[0])
			if err != nil {
				return err
			}
			return withDevice(razer.FeaturePerf, func(d *razer.Device) error {
				return d.SetPerfMode(mode)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "cpu <low|medium|high|boost|overclock>",
		Short: "Set CPU boost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boost, err := razer.ParseCpuBoost(args[0])
			if err != nil {
				return err
			}
			return withDevice(razer.FeaturePerf, func(d *razer.Device) error {
				return d.SetCpuBoost(boost)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "gpu <low|medium|high>",
		Short: "Set GPU boost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boost, err := razer.ParseGpuBoost(args[0])
			if err != nil {
				return err
			}
			return withDevice(razer.FeaturePerf, func(d *razer.Device) error {
				return d.SetGpuBoost(boost)
			})
		},
	})
	return cmd
}

func fanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fan",
		Short: "Control fan",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "auto",
		Short: "Set fan mode to auto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(razer.FeatureFan, func(d *razer.Device) error {
				return d.SetFanMode(razer.FanModeAuto)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "manual",
		Short: "Set fan mode to manual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(razer.FeatureFan, func(d *razer.Device) error {
				return d.SetFanMode(razer.FanModeManual)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rpm <2000-5000>",
		Short: "Set fan rpm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rpm, err := strconv.ParseUint(args[0], 10, 16)
			if err != nil {
				return fmt.Errorf("invalid rpm %q", args[0])
			}
			return withDevice(razer.FeatureFan, func(d *razer.Device) error {
				return d.SetFanRpm(uint16(rpm))
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "max <enable|disable>",
		Short: "Control max fan speed mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := razer.ParseMaxFanSpeedMode(args[0])
			if err != nil {
				return err
			}
			return withDevice(razer.FeatureFan, func(d *razer.Device) error {
				return d.SetMaxFanSpeedMode(mode)
			})
		},
	})
	return cmd
}

func logoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logo <off|static|breathing>",
		Short: "Set lid logo mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := razer.ParseLogoMode(args[0])
			if err != nil {
				return err
			}
			return withDevice(razer.FeatureLidLogo, func(d *razer.Device) error {
				return d.SetLogoMode(mode)
			})
		},
	}
}

func kbdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kbd <0-255>",
		Short: "Set keyboard backlight brightness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.ParseUint(args[0], 10, 8)
			if err != nil {
				return fmt.Errorf("invalid brightness %q", args[0])
			}
			return withDevice(razer.FeatureKbdBacklight, func(d *razer.Device) error {
				return d.SetKeyboardBrightness(byte(level))
			})
		},
	}
}

func lightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lights <enable|disable>",
		Short: "Keep lights on while idle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := razer.ParseLightsAlwaysOn(args[0])
			if err != nil {
				return err
			}
			return withDevice(razer.FeatureLightsAlwaysOn, func(d *razer.Device) error {
				return d.SetLightsAlwaysOn(mode)
			})
		},
	}
}

func batteryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "battery <enable|disable>",
		Short: "Enable or disable battery care",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := razer.ParseBatteryCare(args[0])
			if err != nil {
				return err
			}
			return withDevice(razer.FeatureBatteryCare, func(d *razer.Device) error {
				return d.SetBatteryCare(mode)
			})
		},
	}
}

func customCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmd <command> [args...]",
		Short: "Run custom command [WARNING: use at your own risk]",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := maybeHex(args[0])
			if err != nil {
				return err
			}
			payload := make([]byte, 0, len(args)-1)
			for _, a := range args[1:] {
				b, err := maybeHex(a)
				if err != nil {
					return err
				}
				if b > 0xff {
					return fmt.Errorf("argument %q does not fit a byte", a)
				}
				payload = append(payload, byte(b))
			}
			return withDevice("", func(d *razer.Device) error {
				fmt.Printf("Running custom command 0x%04x %v\n", command, payload)
				resp, err := d.CustomCommand(command, payload)
				if err != nil {
					return err
				}
				fmt.Printf("Response args: %x\n", resp)
				return nil
			})
		},
	}
}

func stateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Save or restore the full device state",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Snapshot current device state to disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice("", func(d *razer.Device) error {
				state, err := d.ReadState()
				if err != nil {
					return err
				}
				store, err := settings.NewStore()
				if err != nil {
					return err
				}
				if err := store.Save(state); err != nil {
					return err
				}
				fmt.Printf("State saved to %s\n", store.Path())
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "restore",
		Short: "Apply the last saved state to the device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := settings.NewStore()
			if err != nil {
				return err
			}
			state, err := store.Load()
			if err != nil {
				return err
			}
			return withDevice("", func(d *razer.Device) error {
				return d.ApplyState(state)
			})
		},
	})
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "razerctl",
		Short:         "Control Razer laptop firmware settings over USB HID",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().StringVarP(&flagPID, "pid", "p", "",
		"open this product id instead of auto-detecting (all features enabled, many might not work)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log frame exchanges")

	root.AddCommand(
		enumerateCmd(),
		infoCmd(),
		perfCmd(),
		fanCmd(),
		logoCmd(),
		kbdCmd(),
		lightsCmd(),
		batteryCmd(),
		customCmd(),
		stateCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
