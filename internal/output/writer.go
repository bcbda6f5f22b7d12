package output

import (
	"bufio"
	"io"

	"github.com/livp123/wallfetch/internal/model"
	"github.com/livp123/wallfetch/internal/utils/fileutil"
	apperrors "github.com/livp123/wallfetch/pkg/errors"
)

// Write renders recs to w in order and returns how many records were rendered.
// Write 按顺序将记录渲染到 w，返回已渲染的记录数。
func Write(w io.Writer, recs []model.Record, r Renderer) (int, error) {
	written := 0
	for _, rec := range recs {
		if err := r.Render(w, rec); err != nil {
			return written, err
		}
		written++
	}
	if err := r.Finish(w); err != nil {
		return written, err
	}
	return written, nil
}

// WriteFile creates or truncates path and writes recs through r. Any failure
// wraps ErrOutputAccess; records already flushed stay in the file.
// WriteFile 创建或截断 path 并写入记录。失败时包装为 ErrOutputAccess，已刷新的记录保留在文件中。
func WriteFile(path string, recs []model.Record, r Renderer) (written int, err error) {
	if path == "" {
		return 0, apperrors.NewOutputError(path, apperrors.NewFilePathError(path))
	}
	f, err := fileutil.CreateTruncate(path)
	if err != nil {
		return 0, apperrors.NewOutputError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = apperrors.NewOutputError(path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	written, err = Write(bw, recs, r)
	if err != nil {
		_ = bw.Flush()
		return written, apperrors.NewOutputError(path, err)
	}
	if err = bw.Flush(); err != nil {
		return written, apperrors.NewOutputError(path, err)
	}
	return written, nil
}
