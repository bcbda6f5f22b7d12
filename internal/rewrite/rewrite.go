package rewrite

import "strings"

const (
	// DefaultFrom is the thumbnail resolution token found in captured URLs.
	// DefaultFrom 是抓取到的 URL 中的缩略图分辨率标记。
	DefaultFrom = "s240-w240-h135"

	// DefaultTo is the display resolution token written to the output.
	// DefaultTo 是写入输出的显示分辨率标记。
	DefaultTo = "s1920-w1920-h1080"
)

// Rewriter replaces a fixed resolution token inside URLs.
// Rewriter 替换 URL 中固定的分辨率标记。
type Rewriter struct {
	From string
	To   string
}

// New returns a Rewriter, falling back to the default tokens for empty values.
func New(from, to string) *Rewriter {
	if from == "" {
		from = DefaultFrom
	}
	if to == "" {
		to = DefaultTo
	}
	return &Rewriter{From: from, To: to}
}

// Default returns the thumbnail to 1920x1080 rewriter.
func Default() *Rewriter {
	return New(DefaultFrom, DefaultTo)
}

// Apply replaces every occurrence of From with To. URLs without the token
// are returned unchanged.
// Apply 将所有 From 替换为 To，不包含该标记的 URL 原样返回。
func (r *Rewriter) Apply(url string) string {
	if r.From == "" {
		return url
	}
	return strings.ReplaceAll(url, r.From, r.To)
}

// Matches reports whether url contains the token Apply would replace.
func (r *Rewriter) Matches(url string) bool {
	return r.From != "" && strings.Contains(url, r.From)
}
