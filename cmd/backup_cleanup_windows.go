//go:build windows

package cmd

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

// cleanupBackup removes the backup binary left behind by a swap.
//
// Antivirus scanners and indexers can keep a handle on the file for a few
// seconds after the old process exits, so removal is retried briefly and
// then deferred to the next reboot via MoveFileEx.
func cleanupBackup(backupPath string) error {
	if backupPath == "" {
		return nil
	}

	var lastErr error
	for attempt := 0; attempt < 15; attempt++ {
		err := os.Remove(backupPath)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		lastErr = err
		time.Sleep(200 * time.Millisecond)
	}

	p, err := windows.UTF16PtrFromString(backupPath)
	if err != nil {
		return lastErr
	}
	if err := windows.MoveFileEx(p, nil, windows.MOVEFILE_DELAY_UNTIL_REBOOT); err != nil {
		return lastErr
	}
	return nil
}
