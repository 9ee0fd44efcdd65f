package ealconfig

import (
	"github.com/packetplane/rtebind/core/hwinfo"
	"go.uber.org/zap"
)

// DeviceConfig contains device related configuration.
type DeviceConfig struct {
	// PciDevices is the allowlist of PCI devices.
	// Each should be a PCI address such as "0000:5e:00.0".
	// If empty, all unclaimed PCI devices may be probed.
	PciDevices []string `json:"pciDevices,omitempty"`

	// AllPciDevices, if set, clears the PCI allowlist so that every PCI device
	// is probed. This takes precedence over PciDevices.
	AllPciDevices bool `json:"allPciDevices,omitempty"`

	// VirtualDevices is a list of virtual device creation arguments,
	// such as "net_ring0" or "net_af_packet1,iface=eth1".
	VirtualDevices []string `json:"virtualDevices,omitempty"`

	// NoPci, if set, disables the PCI bus entirely.
	NoPci bool `json:"noPci,omitempty"`

	// DeviceFlags is device-related flags passed to DPDK.
	// This replaces all other options.
	DeviceFlags string `json:"deviceFlags,omitempty"`
}

func (cfg DeviceConfig) args(hwInfo hwinfo.Provider) (args []string, e error) {
	if cfg.DeviceFlags != "" {
		return shellSplit("DeviceFlags", cfg.DeviceFlags)
	}

	switch {
	case cfg.NoPci:
		args = append(args, "--no-pci")
		if len(cfg.PciDevices) > 0 {
			logger.Warn("PciDevices ignored because NoPci is set",
				zap.Strings("pciDevices", cfg.PciDevices),
			)
		}
	case cfg.AllPciDevices:
	default:
		for _, dev := range cfg.PciDevices {
			args = append(args, "-a", dev)
		}
	}

	for _, vdev := range cfg.VirtualDevices {
		args = append(args, "--vdev", vdev)
	}

	return args, nil
}
