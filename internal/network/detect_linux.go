//go:build linux
// +build linux

package network

import (
	"fmt"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// DetectHardware scans for available network interfaces.
func DetectHardware() (*DetectedHardware, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	hw := &DetectedHardware{
		Interfaces: make([]InterfaceInfo, 0),
	}

	for _, link := range links {
		name := link.Attrs().Name

		if shouldExclude(name) {
			continue
		}

		info := InterfaceInfo{
			Name:      name,
			MAC:       link.Attrs().HardwareAddr.String(),
			LinkUp:    link.Attrs().OperState == netlink.OperUp,
			IsVirtual: isVirtualInterface(name),
		}

		addrs, err := netlink.AddrList(link, unix.AF_INET)
		if err == nil {
			for _, addr := range addrs {
				info.IPs = append(info.IPs, addr.IPNet.String())
			}
		}

		hw.Interfaces = append(hw.Interfaces, info)
	}

	return hw, nil
}
