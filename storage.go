// FILE: lixenwraith/bwdebug/storage.go
package bwdebug

import (
	"os"
)

// appendFile appends data to path with a single write under an exclusive lock,
// creating the file and its parent directories if missing
func appendFile(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmtErrorf("failed to open/create log file '%s': %w", path, err)
	}

	writeErr := writeLocked(file, data, false)
	if err := file.Close(); err != nil {
		writeErr = combineErrors(writeErr, fmtErrorf("failed to close log file '%s': %w", path, err))
	}
	if writeErr != nil {
		return fmtErrorf("failed to append to '%s': %w", path, writeErr)
	}
	return nil
}

// replaceFile overwrites path with data under an exclusive lock. The file is truncated only
// after the lock is held so concurrent readers never see a half-written file from this writer.
func replaceFile(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmtErrorf("failed to open/create '%s': %w", path, err)
	}

	writeErr := writeLocked(file, data, true)
	if err := file.Close(); err != nil {
		writeErr = combineErrors(writeErr, fmtErrorf("failed to close '%s': %w", path, err))
	}
	if writeErr != nil {
		return fmtErrorf("failed to write '%s': %w", path, writeErr)
	}
	return nil
}

// writeLocked performs one write to file while holding its lock
func writeLocked(file *os.File, data []byte, truncate bool) (err error) {
	if err := lockFile(file); err != nil {
		return fmtErrorf("failed to lock '%s': %w", file.Name(), err)
	}
	defer func() {
		if unlockErr := unlockFile(file); unlockErr != nil {
			err = combineErrors(err, fmtErrorf("failed to unlock '%s': %w", file.Name(), unlockErr))
		}
	}()

	if truncate {
		if err := file.Truncate(0); err != nil {
			return err
		}
	}

	n, err := file.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmtErrorf("short write to '%s': %d of %d bytes", file.Name(), n, len(data))
	}
	return nil
}

// fileIsEmpty reports whether path is missing or has no content
func fileIsEmpty(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.Size() == 0
}
