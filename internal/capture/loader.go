package capture

import (
	"unicode/utf8"

	"github.com/livp123/wallfetch/internal/utils/fileutil"
	apperrors "github.com/livp123/wallfetch/pkg/errors"
)

// Load reads the complete capture file at path and returns it as text.
// No trimming or normalization is applied.
// Load 读取完整的抓包文件并以文本返回，不做裁剪或规范化。
func Load(path string) (string, error) {
	if path == "" {
		return "", apperrors.NewInputError(path, apperrors.NewFilePathError(path))
	}
	data, err := fileutil.ReadAll(path)
	if err != nil {
		return "", apperrors.NewInputError(path, err)
	}
	if !utf8.Valid(data) {
		return "", apperrors.NewInputError(path, apperrors.ErrInvalidEncoding)
	}
	return string(data), nil
}
