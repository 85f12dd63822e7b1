//go:build !windows

package cmd

import (
	"errors"
	"os"
)

// cleanupBackup removes the backup binary left behind by a swap.
func cleanupBackup(backupPath string) error {
	if backupPath == "" {
		return nil
	}
	if err := os.Remove(backupPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
