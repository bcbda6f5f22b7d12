package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/livp123/wallfetch/internal/config"
	"github.com/livp123/wallfetch/internal/model"
	"github.com/livp123/wallfetch/internal/utils/logger"
	apperrors "github.com/livp123/wallfetch/pkg/errors"
)

// getTestContext creates a context with a silent test logger
// getTestContext 创建一个带有静默测试日志记录器的上下文
func getTestContext() context.Context {
	return logger.WithContext(context.Background(), zap.NewNop().Sugar())
}

// newTestConfig points input and output into a temp dir and writes the capture.
// newTestConfig 将输入和输出指向临时目录并写入抓包内容。
func newTestConfig(t *testing.T, capture string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Input = filepath.Join(dir, config.DefaultInput)
	cfg.Output = filepath.Join(dir, config.DefaultOutput)
	require.NoError(t, os.WriteFile(cfg.Input, []byte(capture), 0644))
	return cfg
}

func readOutput(t *testing.T, cfg *config.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	return string(data)
}

// TestConvert_Scenario tests the two-URL example end to end
// TestConvert_Scenario 端到端测试两条 URL 的示例
func TestConvert_Scenario(t *testing.T) {
	cfg := newTestConfig(t, `fetch("https://x/a-s240-w240-h135-b.jpg", {...}); fetch("https://x/c.jpg", {...});`)

	res, err := Convert(getTestContext(), cfg)
	require.NoError(t, err)

	want := `  {
    "url": "https://x/a-s1920-w1920-h1080-b.jpg",
  },
  {
    "url": "https://x/c.jpg",
  },
`
	assert.Equal(t, want, readOutput(t, cfg))
	assert.Equal(t, 2, res.Captured)
	assert.Equal(t, 2, res.Written)
	assert.Equal(t, 1, res.Rewritten)
	assert.Zero(t, res.Filtered)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "records", res.Format)
}

func TestConvert_EmptyInput(t *testing.T) {
	cfg := newTestConfig(t, "")

	res, err := Convert(getTestContext(), cfg)
	require.NoError(t, err)
	assert.Zero(t, res.Written)

	info, err := os.Stat(cfg.Output)
	require.NoError(t, err, "output file must exist")
	assert.Zero(t, info.Size())
}

func TestConvert_NoMatches(t *testing.T) {
	cfg := newTestConfig(t, `XMLHttpRequest("https://x/a.jpg"); fetch('https://x/b.jpg');`)

	res, err := Convert(getTestContext(), cfg)
	require.NoError(t, err)
	assert.Zero(t, res.Captured)
	assert.Empty(t, readOutput(t, cfg))
}

// TestConvert_MissingInputLeavesOutputUntouched tests the input is read before the output is created
// TestConvert_MissingInputLeavesOutputUntouched 测试在创建输出之前读取输入
func TestConvert_MissingInputLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Input = filepath.Join(dir, "missing.txt")
	cfg.Output = filepath.Join(dir, "urls.txt")

	_, err := Convert(getTestContext(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInputAccess)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr), "output must not be created")

	// 已存在的输出文件也不能被截断
	require.NoError(t, os.WriteFile(cfg.Output, []byte("previous run\n"), 0644))
	_, err = Convert(getTestContext(), cfg)
	require.Error(t, err)
	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, "previous run\n", string(data))
}

func TestConvert_UnwritableOutput(t *testing.T) {
	cfg := newTestConfig(t, `fetch("https://x/c.jpg")`)
	cfg.Output = filepath.Join(filepath.Dir(cfg.Input), "no-such-dir", "urls.txt")

	res, err := Convert(getTestContext(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrOutputAccess)
	require.NotNil(t, res)
	assert.Zero(t, res.Written)
}

func TestConvert_InvalidConfig(t *testing.T) {
	cfg := newTestConfig(t, `fetch("https://x/c.jpg")`)
	cfg.Format = "xml"

	_, err := Convert(getTestContext(), cfg)
	assert.ErrorIs(t, err, apperrors.ErrConfigInvalid)
	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr))
}

// TestConvert_CountAndOrder checks record N corresponds to match N, duplicates included.
// TestConvert_CountAndOrder 检查第 N 条记录对应第 N 个匹配（包括重复项）。
func TestConvert_CountAndOrder(t *testing.T) {
	var b strings.Builder
	var want []string
	for i := 0; i < 50; i++ {
		u := fmt.Sprintf("https://x/%d.jpg", i%7)
		if i%3 == 0 {
			u = fmt.Sprintf("https://x/%d=s240-w240-h135", i%7)
		}
		fmt.Fprintf(&b, "fetch(%q, {\n  \"method\": \"GET\"\n});\n", u)
		want = append(want, strings.ReplaceAll(u, "s240-w240-h135", "s1920-w1920-h1080"))
	}
	cfg := newTestConfig(t, b.String())
	cfg.Format = "json"

	res, err := Convert(getTestContext(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Captured)
	assert.Equal(t, 50, res.Written)
	assert.Equal(t, 17, res.Rewritten)

	var recs []model.Record
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &recs))
	require.Len(t, recs, len(want))
	for i, rec := range recs {
		assert.Equal(t, want[i], rec.URL, "record %d", i)
	}
}

func TestConvert_FilterAndAspect(t *testing.T) {
	cfg := newTestConfig(t, `
fetch("https://lh3.googleusercontent.com/a=s240-w240-h135", {});
fetch("https://chromecastbg.alexmeub.com/main.css", {});
fetch("https://lh3.googleusercontent.com/b=s240-w240-h135", {});
`)
	cfg.Format = "json"
	cfg.Aspect = config.ChromecastAspect
	cfg.Filter = `host endsWith "googleusercontent.com"`

	res, err := Convert(getTestContext(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Captured)
	assert.Equal(t, 1, res.Filtered)
	assert.Equal(t, 2, res.Written)

	var recs []model.Record
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &recs))
	assert.Equal(t, []model.Record{
		{URL: "https://lh3.googleusercontent.com/a=s1920-w1920-h1080", Aspect: "1.78"},
		{URL: "https://lh3.googleusercontent.com/b=s1920-w1920-h1080", Aspect: "1.78"},
	}, recs)
}

func TestConvert_MetricsFile(t *testing.T) {
	cfg := newTestConfig(t, `fetch("https://x/a=s240-w240-h135"); fetch("https://x/b.jpg");`)
	cfg.MetricsFile = filepath.Join(filepath.Dir(cfg.Input), "wallfetch.prom")

	_, err := Convert(getTestContext(), cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wallfetch_captured_urls_total 2")
	assert.Contains(t, string(data), "wallfetch_rewritten_urls_total 1")
}

func TestConvert_CanceledContext(t *testing.T) {
	cfg := newTestConfig(t, `fetch("https://x/c.jpg")`)
	ctx, cancel := context.WithCancel(getTestContext())
	cancel()

	_, err := Convert(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr))
}
