// Package config manages on-disk copies of the Suricata configuration:
// versioned backups with metadata sidecars, and the pristine original kept
// from before the first ever mutation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/clock"
)

// BackupManager handles versioned configuration backups.
type BackupManager struct {
	configPath string
	backupDir  string
	maxBackups int
}

// BackupInfo contains metadata about a backup.
type BackupInfo struct {
	Version     int       `json:"version"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	IsAuto      bool      `json:"is_auto"` // Auto-backup vs manual
	Pinned      bool      `json:"pinned"`  // Pinned backups are never auto-pruned
}

// NewBackupManager creates a new backup manager.
func NewBackupManager(configPath string, maxBackups int) *BackupManager {
	if maxBackups <= 0 {
		maxBackups = 20 // Keep last 20 backups by default
	}

	backupDir := filepath.Join(filepath.Dir(configPath), "backups")

	return &BackupManager{
		configPath: configPath,
		backupDir:  backupDir,
		maxBackups: maxBackups,
	}
}

// ensureBackupDir creates the backup directory if it doesn't exist.
func (b *BackupManager) ensureBackupDir() error {
	return os.MkdirAll(b.backupDir, 0755)
}

// CreateBackup creates a new versioned backup of the current config.
func (b *BackupManager) CreateBackup(description string, isAuto bool) (*BackupInfo, error) {
	if err := b.ensureBackupDir(); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := os.ReadFile(b.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Get next version number
	backups, _ := b.ListBackups()
	version := 1
	if len(backups) > 0 {
		version = backups[0].Version + 1
	}

	timestamp := clock.Now()
	filename := fmt.Sprintf("suricata.%d.%s.yaml", version, timestamp.Format("20060102-150405"))
	backupPath := filepath.Join(b.backupDir, filename)

	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write backup: %w", err)
	}

	info := &BackupInfo{
		Version:     version,
		Timestamp:   timestamp,
		Description: description,
		Path:        backupPath,
		Size:        int64(len(data)),
		IsAuto:      isAuto,
	}

	metaPath := backupPath + ".meta.json"
	metaData, _ := json.MarshalIndent(info, "", "  ")
	os.WriteFile(metaPath, metaData, 0644)

	b.pruneOldBackups()

	return info, nil
}

// ListBackups returns all backups sorted by version (newest first).
func (b *BackupManager) ListBackups() ([]BackupInfo, error) {
	if err := b.ensureBackupDir(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(b.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		backupPath := filepath.Join(b.backupDir, entry.Name())
		metaPath := backupPath + ".meta.json"

		var info BackupInfo

		if metaData, err := os.ReadFile(metaPath); err == nil {
			json.Unmarshal(metaData, &info)
		}

		// Fill in missing info from file
		if info.Path == "" {
			info.Path = backupPath
		}

		if fileInfo, err := entry.Info(); err == nil {
			if info.Timestamp.IsZero() {
				info.Timestamp = fileInfo.ModTime()
			}
			if info.Size == 0 {
				info.Size = fileInfo.Size()
			}
		}

		// Parse version from filename if not in metadata
		if info.Version == 0 {
			var v int
			fmt.Sscanf(entry.Name(), "suricata.%d.", &v)
			info.Version = v
		}

		backups = append(backups, info)
	}

	// Sort by version descending (newest first)
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Version > backups[j].Version
	})

	return backups, nil
}

// GetBackup returns a specific backup by version.
func (b *BackupManager) GetBackup(version int) (*BackupInfo, error) {
	backups, err := b.ListBackups()
	if err != nil {
		return nil, err
	}

	for _, backup := range backups {
		if backup.Version == version {
			return &backup, nil
		}
	}

	return nil, fmt.Errorf("backup version %d not found", version)
}

// GetBackupContent returns the content of a specific backup.
func (b *BackupManager) GetBackupContent(version int) ([]byte, error) {
	backup, err := b.GetBackup(version)
	if err != nil {
		return nil, err
	}

	return os.ReadFile(backup.Path)
}

// RestoreBackup restores a specific backup version, creating a backup of
// the current config first.
func (b *BackupManager) RestoreBackup(version int) error {
	content, err := b.GetBackupContent(version)
	if err != nil {
		return err
	}

	b.CreateBackup("Auto-backup before restore", true)

	if err := os.WriteFile(b.configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to restore config: %w", err)
	}

	return nil
}

// GetLatestBackup returns the most recent backup.
func (b *BackupManager) GetLatestBackup() (*BackupInfo, error) {
	backups, err := b.ListBackups()
	if err != nil {
		return nil, err
	}

	if len(backups) == 0 {
		return nil, fmt.Errorf("no backups found")
	}

	return &backups[0], nil
}

// pruneOldBackups removes auto-backups beyond maxBackups limit.
// Pinned (user-initiated) backups are never pruned.
func (b *BackupManager) pruneOldBackups() {
	backups, err := b.ListBackups()
	if err != nil {
		return
	}

	var unpinnedBackups []BackupInfo
	for _, backup := range backups {
		if !backup.Pinned {
			unpinnedBackups = append(unpinnedBackups, backup)
		}
	}

	if len(unpinnedBackups) <= b.maxBackups {
		return
	}

	for i := b.maxBackups; i < len(unpinnedBackups); i++ {
		os.Remove(unpinnedBackups[i].Path)
		os.Remove(unpinnedBackups[i].Path + ".meta.json")
	}
}

// DeleteBackup removes a specific backup.
func (b *BackupManager) DeleteBackup(version int) error {
	backup, err := b.GetBackup(version)
	if err != nil {
		return err
	}

	os.Remove(backup.Path)
	os.Remove(backup.Path + ".meta.json")

	return nil
}

// CompareWithCurrent returns a unified diff between a backup and the
// current config, or "No differences".
func (b *BackupManager) CompareWithCurrent(version int) (string, error) {
	backupContent, err := b.GetBackupContent(version)
	if err != nil {
		return "", err
	}

	currentContent, err := os.ReadFile(b.configPath)
	if err != nil {
		return "", fmt.Errorf("failed to read current config: %w", err)
	}

	if string(backupContent) == string(currentContent) {
		return "No differences", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(backupContent)),
		B:        difflib.SplitLines(string(currentContent)),
		FromFile: fmt.Sprintf("backup v%d", version),
		ToFile:   "current",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("failed to generate diff: %w", err)
	}
	return text, nil
}

// PinBackup marks a backup as pinned (won't be auto-pruned).
func (b *BackupManager) PinBackup(version int) error {
	return b.setBackupPinned(version, true)
}

// UnpinBackup removes the pinned status from a backup.
func (b *BackupManager) UnpinBackup(version int) error {
	return b.setBackupPinned(version, false)
}

// setBackupPinned updates the pinned status of a backup.
func (b *BackupManager) setBackupPinned(version int, pinned bool) error {
	backup, err := b.GetBackup(version)
	if err != nil {
		return err
	}

	backup.Pinned = pinned

	metaPath := backup.Path + ".meta.json"
	metaData, _ := json.MarshalIndent(backup, "", "  ")
	if err := os.WriteFile(metaPath, metaData, 0644); err != nil {
		return fmt.Errorf("failed to update backup metadata: %w", err)
	}

	return nil
}

// OriginalBackupPath returns the path of the pristine pre-first-mutation copy.
func OriginalBackupPath(configPath string) string {
	return configPath + ".orig"
}

// EnsureOriginalBackup writes a pristine copy of the config next to it,
// exactly once. If the copy already exists it is never overwritten.
func EnsureOriginalBackup(configPath string) error {
	origPath := OriginalBackupPath(configPath)
	if _, err := os.Stat(origPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat original backup: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config for original backup: %w", err)
	}

	if err := os.WriteFile(origPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write original backup: %w", err)
	}

	return nil
}
