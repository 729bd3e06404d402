package sku

import (
	"fmt"
	"os"
	"strings"
)

const productSkuPath = "/sys/class/dmi/id/product_sku"

func readSystemSKU() (string, error) {
	b, err := os.ReadFile(productSkuPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", productSkuPath, err)
	}
	return strings.TrimSpace(string(b)), nil
}
