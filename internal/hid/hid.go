// Package hid abstracts the feature-report capable HID backends used to
// reach the laptop's embedded controller. One device handle owns one
// physical connection; callers serialize access themselves.
package hid

// Device represents an opened HID device exchanging one feature report per
// call. Exchange sends request as a feature report and reads back a
// response report of the same length. The leading report-id byte is
// consumed and produced here; callers never see it.
type Device interface {
	Exchange(request []byte) ([]byte, error)
	Close() error
}

// Info describes an enumerated HID device.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List(vendorID uint16) ([]Info, error)
	Open(info Info) (Device, error)
	OpenVIDPID(vendorID, productID uint16) (Device, error)
}

// NewManager returns the OS-specific HID manager.
func NewManager() (Manager, error) {
	return newManager()
}
