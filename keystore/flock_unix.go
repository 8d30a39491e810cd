//go:build !windows

package keystore

import "syscall"

// flockLock takes an exclusive lock on the keystore lock file. Blocks until
// any other process writing the secrets file releases it.
func flockLock(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_EX)
}

// flockUnlock releases the lock taken by flockLock.
func flockUnlock(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_UN)
}
