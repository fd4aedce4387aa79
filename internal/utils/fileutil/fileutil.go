package fileutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// AtomicWrite streams content into a temporary file next to filename and renames it over filename.
// A failure at any step leaves the original file untouched.
// AtomicWrite 将内容写入同目录下的临时文件，然后重命名为目标文件。任一步骤失败时原文件保持不变。
func AtomicWrite(filename string, perm os.FileMode, write func(w io.Writer) error) error {
	dir := filepath.Dir(filename) // #nosec G703 // Safe: filepath.Dir cleans the path preventing traversal
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile.Name()) // Clean up if something fails

	bw := bufio.NewWriter(tmpFile)
	if err := write(bw); err != nil {
		tmpFile.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Chmod(perm); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpFile.Name(), filename) // #nosec G703 // filename is validated by caller
}

// AtomicWriteFile writes data to a temporary file and then renames it to the target file.
// AtomicWriteFile 将数据写入临时文件，然后将其重命名为目标文件。
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	return AtomicWrite(filename, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// FileMode returns the permission bits of path, or def if it cannot be read.
// FileMode 返回 path 的权限位，读取失败时返回 def。
func FileMode(path string, def os.FileMode) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return def
	}
	return info.Mode().Perm()
}
