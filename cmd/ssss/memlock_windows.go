//go:build windows

package main

import "errors"

func lockMemory() error {
	return errors.New("memory locking is not supported on this platform")
}

func lockMemoryHint(err error) string {
	return ""
}
