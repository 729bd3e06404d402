//go:build windows

package hid

import (
	"fmt"
	"time"

	hidapi "github.com/sstallion/go-hid"
)

type hidapiManager struct{}

func newManager() (Manager, error) {
	if err := hidapi.Init(); err != nil {
		return nil, err
	}
	return &hidapiManager{}, nil
}

func (m *hidapiManager) List(vendorID uint16) ([]Info, error) {
	var out []Info
	err := hidapi.Enumerate(vendorID, hidapi.ProductIDAny, func(info *hidapi.DeviceInfo) error {
		out = append(out, Info{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Product:      info.ProductStr,
			Manufacturer: info.MfrStr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type hidapiDevice struct{ d *hidapi.Device }

func (m *hidapiManager) Open(info Info) (Device, error) {
	d, err := hidapi.OpenPath(info.Path)
	if err != nil {
		return nil, err
	}
	return &hidapiDevice{d}, nil
}

// OpenVIDPID opens the first matching device that accepts a feature report.
// Several HID interfaces share the laptop's product id, and only the control
// interface answers feature reports.
func (m *hidapiManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	infos, err := m.List(vendorID)
	if err != nil {
		return nil, err
	}

	for _, info := range infos {
		if info.ProductID != productID {
			continue
		}
		dev, err := m.Open(info)
		if err != nil {
			continue
		}
		if _, err := dev.(*hidapiDevice).d.SendFeatureReport([]byte{0x00, 0x00}); err == nil {
			return dev, nil
		}
		dev.Close()
	}
	return nil, fmt.Errorf("no device with VID 0x%04X PID 0x%04X accepts feature reports", vendorID, productID)
}

func (d *hidapiDevice) Exchange(request []byte) ([]byte, error) {
	// Report id 0 prefixes both directions; hidapi includes it in the
	// buffers, so strip it before handing bytes back.
	report := make([]byte, 1+len(request))
	copy(report[1:], request)

	time.Sleep(time.Millisecond)
	if _, err := d.d.SendFeatureReport(report); err != nil {
		return nil, fmt.Errorf("send feature report: %w", err)
	}

	time.Sleep(2 * time.Millisecond)
	buf := make([]byte, 1+len(request))
	n, err := d.d.GetFeatureReport(buf)
	if err != nil {
		return nil, fmt.Errorf("get feature report: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("empty feature report response")
	}
	return buf[1:n], nil
}

func (d *hidapiDevice) Close() error { return d.d.Close() }
