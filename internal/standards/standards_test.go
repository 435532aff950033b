package standards_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diffimp/internal/standards"
)

func TestAll_DisplayOrder(t *testing.T) {
	all := standards.All()
	require.Len(t, all, 12)
	assert.Equal(t, "PCI Express (PCIe, Gen1-6)", all[0].Interface)
	assert.Equal(t, "Profibus DP", all[len(all)-1].Interface)

	all[0].Interface = "changed"
	assert.Equal(t, "PCI Express (PCIe, Gen1-6)", standards.All()[0].Interface)
}

func TestLookup(t *testing.T) {
	cases := map[string]string{
		"usb2":         "USB 2.0",
		"USB 2.0":      "USB 2.0",
		"usb 3.x":      "USB 3.0 / 3.x",
		"RS-485":       "RS-485",
		"pcie":         "PCI Express (PCIe, Gen1-6)",
		"MIL-STD-1553": "MIL-STD-1553",
		"CAN Bus":      "CAN Bus",
		"can":          "CAN Bus",
	}
	for in, want := range cases {
		s, ok := standards.Lookup(in)
		require.True(t, ok, in)
		assert.Equal(t, want, s.Interface, in)
	}

	for _, in := range []string{"", "  ", "firewire"} {
		_, ok := standards.Lookup(in)
		assert.False(t, ok, in)
	}
}

func TestPreset_TakesFirstNumber(t *testing.T) {
	cases := map[string]standards.Preset{
		"pcie":     {Target: "100", TolerancePct: "10"},
		"usb3":     {Target: "90", TolerancePct: "10"},
		"rs422":    {Target: "100", TolerancePct: "20"},
		"mil1553":  {Target: "78", TolerancePct: "10"},
		"profibus": {Target: "150", TolerancePct: "10"},
	}
	for key, want := range cases {
		s, ok := standards.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, want, s.Preset(), key)
	}
}
