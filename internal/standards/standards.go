// Package standards lists the nominal differential impedances of common
// serial interfaces, for use as calculation targets.
package standards

import (
	"regexp"
	"slices"
	"strings"
)

// Standard is one interface row as published: nominal and tolerance are
// kept as text because several are ranges.
type Standard struct {
	Key       string
	Aliases   []string
	Interface string
	Nominal   string // ohms
	Tolerance string // ± percent
	Notes     string
}

var table = []Standard{
	{"pcie", []string{"pciexpress"}, "PCI Express (PCIe, Gen1-6)", "100 (or 85 for Gen2+)", "10",
		"PCI-SIG specification; 100Ω targeted for PCB, 85Ω may be preferred in low-loss designs."},
	{"ethernet", []string{"1000baset", "gbe"}, "Ethernet (1000BASE-T)", "100", "10",
		"IEEE 802.3; compatible with twisted pair cables, ±5% tighter tolerance possible."},
	{"usb2", []string{"usb20"}, "USB 2.0", "90", "15",
		"USB-IF specification; single-ended 45Ω."},
	{"usb3", []string{"usb30", "usb3x"}, "USB 3.0 / 3.x", "90", "10-15",
		"USB-IF; for SuperSpeed pairs, ±15% common."},
	{"can", []string{"canbus"}, "CAN Bus", "120", "10-20",
		"ISO 11898; ±20% for cable, ±10% recommended for PCB; common in automotive."},
	{"rs485", nil, "RS-485", "120", "20",
		"EIA/TIA-485; standard for twisted pair cables, matched with termination resistor; industrial networks."},
	{"rs422", nil, "RS-422", "100-120", "20",
		"EIA/TIA-422; generally 120Ω cables are used, 100Ω may be acceptable on PCB; for multi-drop."},
	{"lvds", nil, "LVDS", "100", "10",
		"TIA/EIA-644A; for general high-speed video/signal interfaces (e.g., display connections)."},
	{"hdmi", nil, "HDMI", "100", "10",
		"HDMI specification; for TMDS (Transition-Minimized Differential Signaling) pairs."},
	{"ethercat", nil, "EtherCAT", "100", "10",
		"ETG specification; industrial Ethernet, based on twisted-pair."},
	{"mil1553", []string{"milstd1553", "1553"}, "MIL-STD-1553", "78", "10",
		"US military standard; avionics data bus, used in DO-254 compliant designs."},
	{"profibus", []string{"profibusdp"}, "Profibus DP", "150", "10-20",
		"IEC 61158; industrial automation, RS-485 based."},
}

// All returns the table in display order.
func All() []Standard {
	out := make([]Standard, len(table))
	copy(out, table)
	return out
}

// Preset is a calculation target taken from a Standard.
type Preset struct {
	Target       string
	TolerancePct string
}

var leadingNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Preset returns the first nominal value and the first tolerance value, so
// "100 (or 85 for Gen2+)" targets 100 and "10-15" allows ±10%.
func (s Standard) Preset() Preset {
	return Preset{
		Target:       leadingNumber.FindString(s.Nominal),
		TolerancePct: leadingNumber.FindString(s.Tolerance),
	}
}

// Lookup finds a standard by key, alias or interface name, ignoring case,
// spaces and punctuation ("USB 2.0", "usb2" and "RS-485" all match).
func Lookup(name string) (Standard, bool) {
	want := squash(name)
	if want == "" {
		return Standard{}, false
	}
	for _, s := range table {
		if s.Key == want || squash(s.Interface) == want || slices.Contains(s.Aliases, want) {
			return s, true
		}
	}
	return Standard{}, false
}

func squash(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
