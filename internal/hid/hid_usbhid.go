//go:build !windows

package hid

import (
	"fmt"
	"time"

	usbhid "rafaelmartins.com/p/usbhid"
)

type usbManager struct{}

func newManager() (Manager, error) { return &usbManager{}, nil }

func (m *usbManager) List(vendorID uint16) ([]Info, error) {
	devs, err := usbhid.Enumerate(func(d *usbhid.Device) bool {
		return vendorID == 0 || d.VendorId() == vendorID
	})
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}
	return out, nil
}

type usbDevice struct{ d *usbhid.Device }

func (m *usbManager) Open(info Info) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == info.Path
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbDevice{d}, nil
}

// OpenVIDPID opens the first matching device that accepts a feature report.
// Several HID interfaces share the laptop's product id, and only the control
// interface answers feature reports.
func (m *usbManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
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
		if err := dev.(*usbDevice).d.SetFeatureReport(0, []byte{0x00}); err == nil {
			return dev, nil
		}
		dev.Close()
	}
	return nil, fmt.Errorf("no device with VID 0x%04X PID 0x%04X accepts feature reports", vendorID, productID)
}

func (d *usbDevice) Exchange(request []byte) ([]byte, error) {
	// The firmware needs a short breather between feature reports or it
	// responds with stale data.
	time.Sleep(time.Millisecond)
	if err := d.d.SetFeatureReport(0, request); err != nil {
		return nil, fmt.Errorf("send feature report: %w", err)
	}

	time.Sleep(2 * time.Millisecond)
	buf, err := d.d.GetFeatureReport(0)
	if err != nil {
		return nil, fmt.Errorf("get feature report: %w", err)
	}
	return buf, nil
}

func (d *usbDevice) Close() error { return d.d.Close() }
