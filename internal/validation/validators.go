// Package validation provides input validators for values that end up in
// the Suricata configuration or in shell commands.
package validation

import (
	"fmt"
	"net"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// Valid interface name: alphanumeric, dash, underscore, dot (for VLANs), max 15 chars
	interfaceNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,15}$`)

	// Valid rule file name: basename with the .rules suffix
	ruleFileRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+\.rules$`)

	// Dangerous characters that should never appear in values we interpolate
	dangerousChars = []string{";", "|", "&", "$", "`", "(", ")", "<", ">", "\\", "\"", "'", "\n", "\r"}
)

// ValidateInterfaceName validates a network interface name
func ValidateInterfaceName(name string) error {
	if name == "" {
		return fmt.Errorf("interface name cannot be empty")
	}

	if len(name) > 15 {
		return fmt.Errorf("interface name too long (max 15 characters): %s", name)
	}

	if !interfaceNameRegex.MatchString(name) {
		return fmt.Errorf("invalid interface name: %s (must be alphanumeric with -_.)", name)
	}

	for _, char := range dangerousChars {
		if strings.Contains(name, char) {
			return fmt.Errorf("interface name contains dangerous character: %s", char)
		}
	}

	return nil
}

// ValidateRuleFileName validates the basename of a rule file.
func ValidateRuleFileName(name string) error {
	if name == "" {
		return fmt.Errorf("rule file name cannot be empty")
	}

	if name != filepath.Base(name) {
		return fmt.Errorf("rule file name must be a basename: %s", name)
	}

	if !ruleFileRegex.MatchString(name) {
		return fmt.Errorf("invalid rule file name: %s (must end in .rules)", name)
	}

	return nil
}

// ValidatePath validates a file path against an allowlist of permitted directories
func ValidatePath(path string, allowedDirs []string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	cleanPath := filepath.Clean(path)

	if filepath.IsAbs(cleanPath) {
		allowed := false
		for _, allowedDir := range allowedDirs {
			if strings.HasPrefix(cleanPath, filepath.Clean(allowedDir)) {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("path not in allowed directories: %s", cleanPath)
		}
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("path traversal not allowed: %s", path)
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("null byte in path")
	}

	return nil
}

// ValidateIPOrCIDR validates an IP address or CIDR range
func ValidateIPOrCIDR(s string) error {
	if s == "" {
		return fmt.Errorf("IP/CIDR cannot be empty")
	}

	if strings.Contains(s, "/") {
		_, _, err := net.ParseCIDR(s)
		if err != nil {
			return fmt.Errorf("invalid CIDR: %w", err)
		}
		return nil
	}

	ip := net.ParseIP(s)
	if ip == nil {
		return fmt.Errorf("invalid IP address: %s", s)
	}

	return nil
}

// ValidateHomeNet validates a HOME_NET expression: either a single IP/CIDR or
// a bracketed, comma-separated group like "[192.168.0.0/16,10.0.0.0/8]".
func ValidateHomeNet(s string) error {
	if s == "" {
		return fmt.Errorf("HOME_NET cannot be empty")
	}

	if s == "any" {
		return nil
	}

	inner := s
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return fmt.Errorf("unbalanced brackets in HOME_NET: %s", s)
		}
		inner = s[1 : len(s)-1]
	}

	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		negated := strings.TrimPrefix(part, "!")
		if err := ValidateIPOrCIDR(negated); err != nil {
			return fmt.Errorf("invalid HOME_NET element %q: %w", part, err)
		}
	}

	return nil
}

// SanitizeString removes dangerous characters from a string (for display purposes)
func SanitizeString(s string) string {
	for _, char := range dangerousChars {
		s = strings.ReplaceAll(s, char, "")
	}
	return s
}
