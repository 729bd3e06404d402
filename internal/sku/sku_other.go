//go:build !linux && !windows

package sku

import "errors"

func readSystemSKU() (string, error) {
	return "", errors.New("model detection is not implemented for this platform")
}
