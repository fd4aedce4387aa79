package fileutil_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/livp123/blockledger/internal/utils/fileutil"
)

// TestAtomicWriteFile tests atomic file writing
// TestAtomicWriteFile 测试原子文件写入
func TestAtomicWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "events.csv")
	testData := []byte("2024/02/01 08:00:00,10.0.0.1,10.0.0.2,scan,2\n")

	if err := fileutil.AtomicWriteFile(testFile, testData, 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if !bytes.Equal(content, testData) {
		t.Errorf("Content mismatch: got %s, want %s", string(content), string(testData))
	}

	// Test overwrite
	// 测试覆盖写入
	newData := []byte("new content")
	if err := fileutil.AtomicWriteFile(testFile, newData, 0600); err != nil {
		t.Fatalf("AtomicWriteFile overwrite failed: %v", err)
	}
	content, err = os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if !bytes.Equal(content, newData) {
		t.Errorf("Content mismatch after overwrite: got %s, want %s", string(content), string(newData))
	}
	if mode := fileutil.FileMode(testFile, 0); mode != 0600 {
		t.Errorf("Mode mismatch: got %v, want %v", mode, os.FileMode(0600))
	}
}

// TestAtomicWrite_FailureKeepsOriginal tests that a failed write leaves the target untouched
// TestAtomicWrite_FailureKeepsOriginal 测试写入失败时原文件保持不变
func TestAtomicWrite_FailureKeepsOriginal(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "events.csv")
	original := []byte("original\n")
	if err := os.WriteFile(testFile, original, 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	boom := errors.New("disk full")
	err := fileutil.AtomicWrite(testFile, 0644, func(w io.Writer) error {
		if _, err := w.Write([]byte("partial")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}

	content, _ := os.ReadFile(testFile)
	if !bytes.Equal(content, original) {
		t.Errorf("Original was modified: got %q", content)
	}

	// No temp files left behind
	// 不应残留临时文件
	entries, _ := os.ReadDir(tmpDir)
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

// TestFileMode_Missing tests the default mode for missing files
// TestFileMode_Missing 测试文件不存在时返回默认权限
func TestFileMode_Missing(t *testing.T) {
	if mode := fileutil.FileMode(filepath.Join(t.TempDir(), "nope"), 0644); mode != 0644 {
		t.Errorf("got %v, want 0644", mode)
	}
}

// TestTryLock tests exclusive locking
// TestTryLock 测试排他锁
func TestTryLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "events.csv.lock")

	first, err := fileutil.TryLock(lockPath)
	if err != nil {
		t.Fatalf("TryLock failed: %v", err)
	}

	if _, err := fileutil.TryLock(lockPath); err == nil {
		t.Fatal("second TryLock should fail while the first is held")
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	// Unlock is idempotent
	// Unlock 可重复调用
	if err := first.Unlock(); err != nil {
		t.Fatalf("second Unlock failed: %v", err)
	}

	again, err := fileutil.TryLock(lockPath)
	if err != nil {
		t.Fatalf("TryLock after Unlock failed: %v", err)
	}
	_ = again.Unlock()
}
