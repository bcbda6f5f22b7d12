package model

import "time"

// Record is one entry of the generated URL list.
// Record 是生成的 URL 列表中的一条记录。
type Record struct {
	URL    string `json:"url" yaml:"url"`
	Aspect string `json:"asp,omitempty" yaml:"asp,omitempty"` // aspect ratio hint read by the photo source
}

// Result summarizes one conversion run.
// Result 汇总一次转换运行的结果。
type Result struct {
	RunID     string        `json:"run_id"`
	Input     string        `json:"input"`
	Output    string        `json:"output"`
	Format    string        `json:"format"`
	Captured  int           `json:"captured"`  // fetch statements matched in the input
	Filtered  int           `json:"filtered"`  // captures dropped by the filter expression
	Rewritten int           `json:"rewritten"` // URLs whose resolution token was replaced
	Written   int           `json:"written"`   // records written to the output file
	Duration  time.Duration `json:"duration"`
}
