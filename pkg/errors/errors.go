package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInputAccess     = errors.New("input not accessible")
	ErrOutputAccess    = errors.New("output not accessible")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrConfigNotFound  = errors.New("config not found")
	ErrConfigInvalid   = errors.New("invalid configuration")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrInvalidFilter   = errors.New("invalid filter expression")
	ErrAlreadyExists   = errors.New("file already exists")
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
)

// NewInputError reports that the capture file at path could not be read.
// NewInputError 表示无法读取 path 处的抓包文件。
func NewInputError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrInputAccess, path, cause)
}

// NewOutputError reports that the output file at path could not be created or written.
// NewOutputError 表示无法创建或写入 path 处的输出文件。
func NewOutputError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrOutputAccess, path, cause)
}

func NewFilePathError(path string) error {
	return fmt.Errorf("%w: %q", ErrInvalidFilePath, path)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

func NewFormatError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func NewFilterError(src string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidFilter, src, cause)
}
