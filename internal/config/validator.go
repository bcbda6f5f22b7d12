package config

import (
	"fmt"
	"strings"

	"github.com/livp123/wallfetch/internal/filter"
	"github.com/livp123/wallfetch/internal/output"
	"github.com/livp123/wallfetch/internal/utils/fileutil"
	"github.com/livp123/wallfetch/internal/utils/logger"
	apperrors "github.com/livp123/wallfetch/pkg/errors"
)

// ValidationError represents a single validation error.
// ValidationError 表示单个验证错误。
type ValidationError struct {
	Field   string `json:"field"`   // Field path (e.g., "token.from")
	Message string `json:"message"` // Error message
	Value   any    `json:"value"`   // The invalid value (optional)
}

// ValidationWarning represents a potential issue that's not critical.
// ValidationWarning 表示非关键的潜在问题。
type ValidationWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

// ValidationResult contains all validation errors and warnings.
// ValidationResult 包含所有验证错误和警告。
type ValidationResult struct {
	Valid    bool                `json:"valid"`
	Errors   []ValidationError   `json:"errors"`
	Warnings []ValidationWarning `json:"warnings"`
}

// AddError adds a validation error.
// AddError 添加验证错误。
func (r *ValidationResult) AddError(field, message string, value any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	})
	r.Valid = false
}

// AddWarning adds a validation warning.
// AddWarning 添加验证警告。
func (r *ValidationResult) AddWarning(field, message string, value any) {
	r.Warnings = append(r.Warnings, ValidationWarning{
		Field:   field,
		Message: message,
		Value:   value,
	})
}

// Err folds the errors into one error wrapping ErrConfigInvalid, or nil.
// Err 将所有错误合并为一个包装 ErrConfigInvalid 的错误，无错误时返回 nil。
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrConfigInvalid, strings.Join(msgs, "; "))
}

// Validate checks cfg for errors that would make a run fail or clobber data.
// Validate 检查会导致运行失败或破坏数据的配置错误。
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{Valid: true, Errors: []ValidationError{}, Warnings: []ValidationWarning{}}

	if strings.TrimSpace(c.Input) == "" {
		result.AddError("input", "input file is required", c.Input)
	}
	if strings.TrimSpace(c.Output) == "" {
		result.AddError("output", "output file is required", c.Output)
	}
	// 输入与输出相同会在读取前截断抓包文件
	if c.Input != "" && c.Output != "" && fileutil.SamePath(c.Input, c.Output) {
		result.AddError("output", "output must not be the input file", c.Output)
	}

	if !output.IsKnownFormat(c.Format) {
		result.AddError("format",
			fmt.Sprintf("unknown format (supported: %s)", strings.Join(output.Formats(), ", ")), c.Format)
	}

	if c.Token.From == "" {
		result.AddError("token.from", "token to replace must not be empty", c.Token.From)
	} else if c.Token.From == c.Token.To {
		result.AddWarning("token.to", "token.to equals token.from, URLs pass through unchanged", c.Token.To)
	}

	if c.Filter != "" {
		if _, err := filter.New(c.Filter); err != nil {
			result.AddError("filter", err.Error(), c.Filter)
		}
	}

	if c.Aspect != "" && strings.EqualFold(c.Format, output.FormatRecords) {
		result.AddWarning("aspect", "aspect is only written by the json and yaml formats", c.Aspect)
	}

	if !logger.IsKnownLevel(c.Logging.Level) {
		result.AddWarning("logging.level", "unknown level, using info", c.Logging.Level)
	}
	if c.Logging.Enabled && c.Logging.Path == "" {
		result.AddWarning("logging.path", "file logging enabled without a path, logging to stdout", c.Logging.Path)
	}

	return result
}
