package capture

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/livp123/wallfetch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// devtoolsCapture mimics the shape of a "Copy all as fetch" export.
const devtoolsCapture = `fetch("https://lh3.googleusercontent.com/abc=s240-w240-h135-p-k-no-nd-mv", {
  "referrer": "https://chromecastbg.alexmeub.com/",
  "referrerPolicy": "strict-origin-when-cross-origin",
  "body": null,
  "method": "GET",
  "mode": "cors",
  "credentials": "omit"
});
fetch("https://chromecastbg.alexmeub.com/main.css", {
  "body": null,
  "method": "GET"
});
fetch("https://lh3.googleusercontent.com/abc=s240-w240-h135-p-k-no-nd-mv", {
  "method": "GET"
});`

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "no fetch statements",
			text: `console.log("hello"); xhr("https://x/a.jpg")`,
			want: []string{},
		},
		{
			name: "concrete scenario",
			text: `fetch("https://x/a-s240-w240-h135-b.jpg", {...}); fetch("https://x/c.jpg", {...});`,
			want: []string{"https://x/a-s240-w240-h135-b.jpg", "https://x/c.jpg"},
		},
		{
			name: "devtools export keeps order and duplicates",
			text: devtoolsCapture,
			want: []string{
				"https://lh3.googleusercontent.com/abc=s240-w240-h135-p-k-no-nd-mv",
				"https://chromecastbg.alexmeub.com/main.css",
				"https://lh3.googleusercontent.com/abc=s240-w240-h135-p-k-no-nd-mv",
			},
		},
		{
			name: "space before quote is not a match",
			text: `fetch( "https://x/a.jpg")`,
			want: []string{},
		},
		{
			name: "single quotes are not a match",
			text: `fetch('https://x/a.jpg')`,
			want: []string{},
		},
		{
			name: "escaped quote stays inside the capture",
			text: `fetch("https://x/a\"b.jpg", {})`,
			want: []string{`https://x/a\"b.jpg`},
		},
		{
			name: "empty url",
			text: `fetch("", {})`,
			want: []string{""},
		},
		{
			name: "capture does not span lines",
			text: "fetch(\"https://x/a\nb\"); fetch(\"https://x/c.jpg\")",
			want: []string{"https://x/c.jpg"},
		},
		{
			name: "adjacent statements without separator",
			text: `fetch("a")fetch("b")`,
			want: []string{"a", "b"},
		},
		{
			name: "not a url is passed through",
			text: `fetch("not a url at all")`,
			want: []string{"not a url at all"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.text)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want), Count(tc.text))
		})
	}
}

// TestExtractIsPure checks repeated runs over the same text give identical sequences.
// TestExtractIsPure 检查对同一文本重复提取得到相同结果。
func TestExtractIsPure(t *testing.T) {
	first := Extract(devtoolsCapture)
	second := Extract(devtoolsCapture)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new_chromecast_photos_as_fetch.txt")
	require.NoError(t, os.WriteFile(path, []byte(devtoolsCapture+"\n\n"), 0644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, devtoolsCapture+"\n\n", text, "content must not be trimmed")
}

func TestLoad_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Empty(t, Extract(text))
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	badUTF8 := filepath.Join(dir, "latin1.txt")
	require.NoError(t, os.WriteFile(badUTF8, []byte{'f', 0xff, 0xfe}, 0644))

	tests := []struct {
		name  string
		path  string
		cause error
	}{
		{"missing file", filepath.Join(dir, "missing.txt"), os.ErrNotExist},
		{"directory", dir, nil},
		{"empty path", "", apperrors.ErrInvalidFilePath},
		{"invalid encoding", badUTF8, apperrors.ErrInvalidEncoding},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInputAccess)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}
