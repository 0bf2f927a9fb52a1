//go:build !windows

package main

import (
	"errors"

	"golang.org/x/sys/unix"
)

// lockMemory pins current and future pages into RAM so that secret
// material cannot be paged out to swap.
func lockMemory() error {
	return unix.Mlockall(unix.MCL_CURRENT | unix.MCL_FUTURE)
}

// lockMemoryHint maps the usual mlockall failures onto actionable advice.
func lockMemoryHint(err error) string {
	switch {
	case errors.Is(err, unix.ENOMEM):
		return "ENOMEM, try to adjust RLIMIT_MEMLOCK"
	case errors.Is(err, unix.EPERM):
		return "EPERM, try UID 0"
	case errors.Is(err, unix.ENOSYS):
		return "ENOSYS, kernel doesn't allow page locking"
	}
	return ""
}
