// Package network detects the host's network interfaces so setup can pick a
// capture interface and suggest a HOME_NET range without asking the user.
package network

import (
	"fmt"
	"net"
	"strings"
)

// InterfaceInfo contains detected information about a network interface.
type InterfaceInfo struct {
	Name      string   `json:"name"`
	MAC       string   `json:"mac"`
	LinkUp    bool     `json:"link_up"`
	IPs       []string `json:"ips,omitempty"`
	IsVirtual bool     `json:"is_virtual"`
}

// DetectedHardware contains all detected network interfaces.
type DetectedHardware struct {
	Interfaces []InterfaceInfo `json:"interfaces"`
}

// excludedPrefixes are interfaces that are never capture candidates.
var excludedPrefixes = []string{
	"lo", "docker", "veth", "br-", "virbr", "tun", "tap", "wg", "tailscale",
}

func shouldExclude(name string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func isVirtualInterface(name string) bool {
	virtualPrefixes := []string{"veth", "virbr", "vnet", "tun", "tap", "dummy"}
	for _, prefix := range virtualPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// PickCaptureInterface returns the best capture candidate: up, physical,
// and holding an IPv4 address, in detection order.
func (hw *DetectedHardware) PickCaptureInterface() (*InterfaceInfo, error) {
	var fallback *InterfaceInfo

	for i := range hw.Interfaces {
		info := &hw.Interfaces[i]
		if info.IsVirtual {
			continue
		}
		if info.LinkUp && len(info.IPs) > 0 {
			return info, nil
		}
		if fallback == nil && info.LinkUp {
			fallback = info
		}
	}

	if fallback != nil {
		return fallback, nil
	}
	return nil, fmt.Errorf("no suitable capture interface detected")
}

// SuggestHomeNet derives a HOME_NET expression from the interface's IPv4
// networks, e.g. "[192.168.1.0/24]".
func (info *InterfaceInfo) SuggestHomeNet() string {
	var nets []string
	for _, cidr := range info.IPs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil || ipNet.IP.To4() == nil {
			continue
		}
		nets = append(nets, ipNet.String())
	}
	if len(nets) == 0 {
		// RFC1918 catch-all when nothing concrete was found
		return "[192.168.0.0/16,10.0.0.0/8,172.16.0.0/12]"
	}
	return "[" + strings.Join(nets, ",") + "]"
}
