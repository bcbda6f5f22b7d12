package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/livp123/wallfetch/internal/output"
	"github.com/livp123/wallfetch/internal/rewrite"
	"github.com/livp123/wallfetch/internal/utils/fileutil"
	"github.com/livp123/wallfetch/internal/utils/logger"
	apperrors "github.com/livp123/wallfetch/pkg/errors"
)

// TokenConfig is the resolution token substitution.
// TokenConfig 定义分辨率标记的替换。
type TokenConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Config is the full wallfetch configuration.
// Config 是完整的 wallfetch 配置。
type Config struct {
	Input       string               `yaml:"input"`
	Output      string               `yaml:"output"`
	Format      string               `yaml:"format"`
	Token       TokenConfig          `yaml:"token"`
	Filter      string               `yaml:"filter"`
	Aspect      string               `yaml:"aspect"`
	MetricsFile string               `yaml:"metrics_file"`
	Logging     logger.LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
// Default 返回内置默认配置。
func Default() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Format: output.FormatRecords,
		Token: TokenConfig{
			From: rewrite.DefaultFrom,
			To:   rewrite.DefaultTo,
		},
		Logging: logger.DefaultLoggingConfig(),
	}
}

// Load reads the YAML file at path over the defaults. A missing file wraps
// ErrConfigNotFound.
// Load 在默认值基础上读取 YAML 配置，文件不存在时返回 ErrConfigNotFound。
func Load(path string) (*Config, error) {
	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrConfigNotFound, path)
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrConfigInvalid, path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields the defaults.
// LoadOrDefault 与 Load 相同，但文件不存在时返回默认配置。
func LoadOrDefault(path string) (*Config, error) {
	if !fileutil.Exists(path) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes cfg to path atomically.
// Save 原子地将配置写入 path。
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	header := []byte("# wallfetch configuration\n# wallfetch 配置文件\n")
	return fileutil.AtomicWriteFile(path, append(header, data...), 0644)
}
