// Package brand provides centralized naming and path constants for the tool.
// The identity is loaded from brand.json at compile time via go:embed so
// other tooling (packaging scripts, docs) can read the same file.
package brand

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
)

//go:embed brand.json
var brandJSON []byte

// Brand holds all naming and default-path information.
type Brand struct {
	Name             string `json:"name"`
	LowerName        string `json:"lowerName"`
	Vendor           string `json:"vendor"`
	Repository       string `json:"repository"`
	Description      string `json:"description"`
	ConfigEnvPrefix  string `json:"configEnvPrefix"`
	DefaultConfigDir string `json:"defaultConfigDir"`
	DefaultRuleDir   string `json:"defaultRuleDir"`
	DefaultLogDir    string `json:"defaultLogDir"`
	BinaryName       string `json:"binaryName"`
	ServiceName      string `json:"serviceName"`
	ValidatorBinary  string `json:"validatorBinary"`
	ConfigFileName   string `json:"configFileName"`
}

var b Brand

func init() {
	if err := json.Unmarshal(brandJSON, &b); err != nil {
		panic("failed to parse brand.json: " + err.Error())
	}

	Name = b.Name
	LowerName = b.LowerName
	Vendor = b.Vendor
	Repository = b.Repository
	Description = b.Description
	ConfigEnvPrefix = b.ConfigEnvPrefix
	DefaultConfigDir = b.DefaultConfigDir
	DefaultRuleDir = b.DefaultRuleDir
	DefaultLogDir = b.DefaultLogDir
	BinaryName = b.BinaryName
	ServiceName = b.ServiceName
	ValidatorBinary = b.ValidatorBinary
	ConfigFileName = b.ConfigFileName
}

// Exported variables for convenience
var (
	Name             string
	LowerName        string
	Vendor           string
	Repository       string
	Description      string
	ConfigEnvPrefix  string
	DefaultConfigDir string
	DefaultRuleDir   string
	DefaultLogDir    string
	BinaryName       string
	ServiceName      string
	ValidatorBinary  string
	ConfigFileName   string

	// Version is set at build time via -ldflags
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Get returns the full Brand struct.
func Get() Brand {
	return b
}

// GetConfigDir returns the config directory, checking env vars first.
// Priority: SURICATA_SETUP_CONFIG_DIR > SURICATA_SETUP_PREFIX/config > DefaultConfigDir
func GetConfigDir() string {
	if dir := os.Getenv(ConfigEnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	if prefix := os.Getenv(ConfigEnvPrefix + "_PREFIX"); prefix != "" {
		return filepath.Join(prefix, "config")
	}
	return DefaultConfigDir
}

// GetRuleDir returns the rule directory, checking env vars first.
// Priority: SURICATA_SETUP_RULE_DIR > SURICATA_SETUP_PREFIX/rules > DefaultRuleDir
func GetRuleDir() string {
	if dir := os.Getenv(ConfigEnvPrefix + "_RULE_DIR"); dir != "" {
		return dir
	}
	if prefix := os.Getenv(ConfigEnvPrefix + "_PREFIX"); prefix != "" {
		return filepath.Join(prefix, "rules")
	}
	return DefaultRuleDir
}

// GetConfigPath returns the full path to the managed configuration file.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), ConfigFileName)
}
