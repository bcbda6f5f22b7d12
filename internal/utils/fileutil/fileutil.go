package fileutil

import (
	"os"
	"path/filepath"
)

// AtomicWriteFile writes data to a temporary file and then renames it to the target file.
// AtomicWriteFile 将数据写入临时文件，然后将其重命名为目标文件。
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename) // #nosec G703 // Safe: filepath.Dir cleans the path preventing traversal
	tmpFile, err := os.CreateTemp(dir, "atomic-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile.Name()) // Clean up if something fails

	if _, err := tmpFile.Write(data); err != nil {
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

// ReadAll reads the whole file at filePath after cleaning the path.
// ReadAll 清理路径后读取整个文件。
func ReadAll(filePath string) ([]byte, error) {
	safePath := filepath.Clean(filePath) // Sanitize path to prevent directory traversal
	return os.ReadFile(safePath)         // #nosec G304 // filePath is sanitized with filepath.Clean
}

// CreateTruncate creates filePath, truncating it if it already exists.
// CreateTruncate 创建文件，如已存在则截断。
func CreateTruncate(filePath string) (*os.File, error) {
	safePath := filepath.Clean(filePath)
	return os.Create(safePath) // #nosec G304 // filePath is sanitized with filepath.Clean
}

// Exists reports whether filePath exists.
func Exists(filePath string) bool {
	_, err := os.Stat(filepath.Clean(filePath))
	return err == nil
}

// SamePath reports whether a and b refer to the same file, either by cleaned
// absolute path or, when both exist, by os.SameFile.
// SamePath 判断 a 和 b 是否指向同一个文件。
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	if errA != nil || errB != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}
