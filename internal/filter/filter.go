package filter

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	apperrors "github.com/livp123/wallfetch/pkg/errors"
)

// Env is the evaluation environment of a filter expression.
// Env 是过滤表达式的求值环境。
type Env struct {
	URL   string `expr:"url"`
	Host  string `expr:"host"`
	Path  string `expr:"path"`
	Ext   string `expr:"ext"`   // lower-case extension without the dot
	Index int    `expr:"index"` // position of the capture in the input
}

// NewEnv derives the expression environment for one captured URL.
// Unparseable URLs still expose url and index.
func NewEnv(index int, raw string) Env {
	env := Env{URL: raw, Index: index}
	u, err := url.Parse(raw)
	if err != nil {
		return env
	}
	env.Host = u.Hostname()
	env.Path = u.Path
	env.Ext = strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
	return env
}

// Filter selects which captured URLs become records.
// An empty expression keeps everything.
// Filter 决定哪些捕获的 URL 会生成记录，空表达式保留全部。
type Filter struct {
	src     string
	program *vm.Program
}

// New compiles src. Compile errors wrap ErrInvalidFilter.
// New 编译表达式，编译错误包装为 ErrInvalidFilter。
func New(src string) (*Filter, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return &Filter{}, nil
	}
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, apperrors.NewFilterError(src, err)
	}
	return &Filter{src: src, program: program}, nil
}

// Enabled reports whether an expression is configured.
func (f *Filter) Enabled() bool {
	return f != nil && f.program != nil
}

// String returns the source expression.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.src
}

// Keep evaluates the expression for the capture at index.
func (f *Filter) Keep(index int, raw string) (bool, error) {
	if !f.Enabled() {
		return true, nil
	}
	out, err := expr.Run(f.program, NewEnv(index, raw))
	if err != nil {
		return false, apperrors.NewFilterError(f.src, err)
	}
	keep, ok := out.(bool)
	if !ok {
		return false, apperrors.NewFilterError(f.src, fmt.Errorf("result is %T, not bool", out))
	}
	return keep, nil
}

// Apply returns the kept URLs in their original order.
// Apply 按原顺序返回被保留的 URL。
func (f *Filter) Apply(urls []string) ([]string, error) {
	if !f.Enabled() {
		return urls, nil
	}
	kept := make([]string, 0, len(urls))
	for i, u := range urls {
		ok, err := f.Keep(i, u)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, u)
		}
	}
	return kept, nil
}
