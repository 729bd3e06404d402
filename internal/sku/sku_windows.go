package sku

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

func readSystemSKU() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open BIOS registry key: %w", err)
	}
	defer k.Close()

	s, _, err := k.GetStringValue("SystemSKU")
	if err != nil {
		return "", fmt.Errorf("read SystemSKU: %w", err)
	}
	return s, nil
}
