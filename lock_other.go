//go:build windows || plan9 || js || wasip1

package bwdebug

import "os"

// lockFile is a no-op where flock is unavailable; appends are still single writes.
func lockFile(_ *os.File) error { return nil }

func unlockFile(_ *os.File) error { return nil }
