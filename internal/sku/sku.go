// Package sku reads the BIOS-reported model number (SMBIOS system SKU)
// used to match a unit against the device catalog.
package sku

// ModelNumber returns the platform SKU string, clipped to the 10-character
// model number scheme the vendor documents.
func ModelNumber() (string, error) {
	s, err := readSystemSKU()
	if err != nil {
		return "", err
	}
	if len(s) > 10 {
		s = s[:10]
	}
	return s, nil
}
