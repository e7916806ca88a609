package validation

import (
	"strings"
	"testing"
)

func TestValidateInterfaceName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// Happy paths
		{"simple", "eth0", false},
		{"with dash", "eth-0", false},
		{"with underscore", "eth_0", false},
		{"with dot (vlan)", "eth0.100", false},
		{"max length", "eth0123456789ab", false}, // 15 chars

		// Sad paths
		{"empty", "", true},
		{"too long", "eth01234567890123", true}, // 17 chars
		{"space", "eth 0", true},
		{"semicolon injection", "eth0;rm", true},
		{"pipe injection", "eth0|cat", true},
		{"dollar sign", "eth0$USER", true},
		{"backtick", "eth0`whoami`", true},
		{"newline", "eth0\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInterfaceName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInterfaceName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRuleFileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "suricata.rules", false},
		{"emerging", "emerging-exploit.rules", false},
		{"dotted", "local.custom.rules", false},

		{"empty", "", true},
		{"wrong suffix", "suricata.conf", true},
		{"path component", "rules/suricata.rules", true},
		{"traversal", "../suricata.rules", true},
		{"injection", "a;b.rules", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRuleFileName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRuleFileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	allowed := []string{"/etc/suricata", "/var/lib/suricata"}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"config dir", "/etc/suricata/suricata.yaml", false},
		{"rule dir", "/var/lib/suricata/rules/a.rules", false},
		{"relative", "rules/a.rules", false},

		{"empty", "", true},
		{"outside allowlist", "/etc/passwd", true},
		{"traversal", "/etc/suricata/../passwd", true},
		{"null byte", "/etc/suricata/a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHomeNet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"any", "any", false},
		{"single cidr", "192.168.1.0/24", false},
		{"single ip", "10.0.0.1", false},
		{"group", "[192.168.0.0/16,10.0.0.0/8,172.16.0.0/12]", false},
		{"negated member", "[192.168.0.0/16,!192.168.1.1]", false},

		{"empty", "", true},
		{"unbalanced", "[192.168.0.0/16", true},
		{"garbage member", "[192.168.0.0/16,notanip]", true},
		{"bad cidr", "192.168.0.0/99", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHomeNet(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHomeNet(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	in := "eth0; rm -rf `boom` $(x)"
	out := SanitizeString(in)
	for _, c := range []string{";", "`", "$", "(", ")"} {
		if strings.Contains(out, c) {
			t.Errorf("SanitizeString left dangerous character %q in %q", c, out)
		}
	}
}
