package capture

import "regexp"

// fetchPattern matches the literal `fetch(` followed immediately by a
// double-quoted string and captures its contents up to the next unescaped
// quote. Escape sequences are kept as written and a capture never crosses a
// line break, the same as a lazy `"(.*?)"` would for DevTools output.
// fetchPattern 匹配 `fetch(` 后紧跟的双引号字符串，捕获到下一个未转义的引号为止。
var fetchPattern = regexp.MustCompile(`fetch\("((?:[^"\\\n]|\\.)*)"`)

// Extract returns every captured fetch URL in document order. Matches do not
// overlap and duplicates are kept. No matches yields an empty slice.
// Extract 按文档顺序返回所有捕获的 URL，保留重复项。
func Extract(text string) []string {
	matches := fetchPattern.FindAllStringSubmatch(text, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		urls = append(urls, m[1])
	}
	return urls
}

// Count returns the number of fetch statements Extract would capture.
func Count(text string) int {
	return len(fetchPattern.FindAllStringIndex(text, -1))
}
