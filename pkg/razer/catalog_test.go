package razer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupByModelNumberPrefix(t *testing.T) {
	desc, ok := Lookup("RZ09-04830")
	require.True(t, ok)
	assert.Equal(t, uint16(0x029f), desc.PID)

	desc, ok = Lookup("RZ09-0482x")
	require.True(t, ok)
	assert.Equal(t, uint16(0x029d), desc.PID)

	_, ok = Lookup("RZ09-9999")
	assert.False(t, ok)

	_, ok = Lookup("RZ09")
	assert.False(t, ok, "shorter than any prefix")
}

func TestFeatureGating(t *testing.T) {
	blade16, ok := Lookup("RZ09-0483")
	require.True(t, ok)
	assert.True(t, blade16.Has(FeatureLidLogo))

	blade14, ok := Lookup("RZ09-0482")
	require.True(t, ok)
	assert.False(t, blade14.Has(FeatureLidLogo), "the 14 inch model has no lid logo")
	assert.True(t, blade14.Has(FeatureBatteryCare))
}
