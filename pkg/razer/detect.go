package razer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tdakhran/razer-ctl/internal/hid"
	"github.com/tdakhran/razer-ctl/internal/sku"
)

// Enumerate lists the distinct product ids of connected devices with the
// vendor id, together with the BIOS-reported model number.
func Enumerate() ([]uint16, string, error) {
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, "", err
	}

	infos, err := mgr.List(VendorID)
	if err != nil {
		return nil, "", err
	}
	if len(infos) == 0 {
		return nil, "", fmt.Errorf("no devices with vendor id 0x%04X found", VendorID)
	}

	seen := make(map[uint16]bool)
	var pids []uint16
	for _, info := range infos {
		if !seen[info.ProductID] {
			seen[info.ProductID] = true
			pids = append(pids, info.ProductID)
		}
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	model, err := sku.ModelNumber()
	if err != nil {
		return nil, "", fmt.Errorf("detect model number: %w", err)
	}
	if !strings.HasPrefix(model, "RZ09-") {
		return nil, "", fmt.Errorf("model %s is not a Razer laptop", model)
	}

	return pids, model, nil
}

// Detect finds the connected supported laptop and opens it.
func Detect() (*Device, error) {
	pids, model, err := Enumerate()
	if err != nil {
		return nil, err
	}

	desc, ok := Lookup(model)
	if !ok {
		return nil, fmt.Errorf("model %s with PIDs %04x is not supported", model, pids)
	}
	return Open(desc)
}

// Open opens the device described by desc.
func Open(desc Descriptor) (*Device, error) {
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, err
	}
	dev, err := mgr.OpenVIDPID(VendorID, desc.PID)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", desc.Name, err)
	}
	return NewDevice(dev, desc), nil
}

// OpenPID opens an arbitrary product id with every feature enabled. Meant
// for experimentation on uncatalogued units; many operations may fail.
func OpenPID(pid uint16) (*Device, error) {
	return Open(Descriptor{
		ModelNumberPrefix: "Unknown",
		Name:              fmt.Sprintf("Unknown device 0x%04x", pid),
		PID:               pid,
		Features:          AllFeatures,
	})
}
