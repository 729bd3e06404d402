package razer

import "strings"

// VendorID is the USB vendor id shared by all supported laptops.
const VendorID uint16 = 0x1532

// Feature names a controllable capability of a model. The wire protocol is
// model-agnostic; which operations are legal for a given unit is decided by
// the resolved descriptor's feature set, checked by the calling layer.
type Feature string

const (
	FeatureBatteryCare    Feature = "battery-care"
	FeatureFan            Feature = "fan"
	FeatureKbdBacklight   Feature = "kbd-backlight"
	FeatureLidLogo        Feature = "lid-logo"
	FeatureLightsAlwaysOn Feature = "lights-always-on"
	FeaturePerf           Feature = "perf"
)

// AllFeatures lists every capability, used when a device is opened manually
// by product id without a catalog match.
var AllFeatures = []Feature{
	FeatureBatteryCare,
	FeatureFan,
	FeatureKbdBacklight,
	FeatureLidLogo,
	FeatureLightsAlwaysOn,
	FeaturePerf,
}

// Descriptor is a supported model: the BIOS model-number prefix it is
// recognized by, a display name, its product id and the capabilities
// enabled for it. Descriptors are immutable static data.
type Descriptor struct {
	ModelNumberPrefix string
	Name              string
	PID               uint16
	Features          []Feature
}

// Has reports whether the model supports a capability.
func (d Descriptor) Has(f Feature) bool {
	for _, have := range d.Features {
		if have == f {
			return true
		}
	}
	return false
}

// Supported is the static catalog of known models. Model number prefixes
// follow the vendor's RZ09 scheme printed on the unit.
var Supported = []Descriptor{
	{
		ModelNumberPrefix: "RZ09-0483",
		Name:              "Razer Blade 16” (2023) Black",
		PID:               0x029f,
		Features: []Feature{
			FeatureBatteryCare,
			FeatureFan,
			FeatureKbdBacklight,
			FeatureLidLogo,
			FeatureLightsAlwaysOn,
			FeaturePerf,
		},
	},
	{
		ModelNumberPrefix: "RZ09-0482",
		Name:              "Razer Blade 14” (2023) Mercury",
		PID:               0x029d,
		Features: []Feature{
			FeatureBatteryCare,
			FeatureFan,
			FeatureKbdBacklight,
			FeatureLightsAlwaysOn,
			FeaturePerf,
		},
	},
}

// Lookup matches a BIOS-reported model number against the catalog.
func Lookup(modelNumber string) (Descriptor, bool) {
	for _, d := range Supported {
		if strings.HasPrefix(modelNumber, d.ModelNumberPrefix) {
			return d, true
		}
	}
	return Descriptor{}, false
}
