package fileutil

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// FileLock is an exclusive advisory lock held on a lock file.
// FileLock 是在锁文件上持有的排他咨询锁。
type FileLock struct {
	f *os.File
}

// TryLock takes an exclusive, non-blocking flock on path, creating the file if needed.
// It fails immediately if another process holds the lock.
// TryLock 以非阻塞方式对 path 加排他锁（必要时创建文件），若已被其他进程持有则立即失败。
func TryLock(path string) (*FileLock, error) {
	safePath := filepath.Clean(path)
	f, err := os.OpenFile(safePath, os.O_CREATE|os.O_RDWR, 0644) // #nosec G304 // path is sanitized with filepath.Clean
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, err
	}
	return &FileLock{f: f}, nil
}

// Unlock releases the lock. The lock file itself is left in place.
// Unlock 释放锁，锁文件本身保留。
func (l *FileLock) Unlock() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	if cerr := l.f.Close(); err == nil {
		err = cerr
	}
	l.f = nil
	return err
}
