package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/livp123/wallfetch/internal/capture"
	"github.com/livp123/wallfetch/internal/config"
	"github.com/livp123/wallfetch/internal/filter"
	"github.com/livp123/wallfetch/internal/metrics"
	"github.com/livp123/wallfetch/internal/model"
	"github.com/livp123/wallfetch/internal/output"
	"github.com/livp123/wallfetch/internal/rewrite"
	"github.com/livp123/wallfetch/internal/utils/logger"
	apperrors "github.com/livp123/wallfetch/pkg/errors"
)

/**
 * Convert runs one conversion: load the capture, extract fetch URLs, apply the
 * optional filter, rewrite the resolution token and write the records.
 * The input is fully read before the output file is touched, so a missing
 * input never truncates an existing output.
 * Convert 执行一次转换：加载抓包、提取 fetch URL、可选过滤、替换分辨率标记并写出记录。
 * 在触碰输出文件之前先完整读取输入，因此输入缺失不会截断已有的输出。
 */
func Convert(ctx context.Context, cfg *config.Config) (*model.Result, error) {
	validation := cfg.Validate()
	if err := validation.Err(); err != nil {
		return nil, err
	}

	res := &model.Result{
		RunID:  uuid.NewString(),
		Input:  cfg.Input,
		Output: cfg.Output,
		Format: cfg.Format,
	}
	log := logger.Get(ctx).With("run_id", res.RunID)
	for _, w := range validation.Warnings {
		log.Warnf("[WARN]  %s: %s (value: %v)", w.Field, w.Message, w.Value)
	}

	renderer, err := output.NewRenderer(cfg.Format)
	if err != nil {
		return nil, err
	}
	urlFilter, err := filter.New(cfg.Filter)
	if err != nil {
		return nil, err
	}
	rewriter := rewrite.New(cfg.Token.From, cfg.Token.To)
	start := time.Now()

	// 1. Load / 加载
	text, err := capture.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	log.Infow("loaded input", "path", cfg.Input, "bytes", len(text))

	// 2. Extract and filter / 提取并过滤
	urls := capture.Extract(text)
	res.Captured = len(urls)
	kept, err := urlFilter.Apply(urls)
	if err != nil {
		return nil, err
	}
	res.Filtered = len(urls) - len(kept)
	log.Infow("processed input", "captured", res.Captured, "filtered", res.Filtered)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3. Rewrite and write / 替换并写出
	recs := make([]model.Record, 0, len(kept))
	for _, u := range kept {
		if rewriter.Matches(u) {
			res.Rewritten++
		}
		recs = append(recs, model.Record{URL: rewriter.Apply(u), Aspect: cfg.Aspect})
	}

	res.Written, err = output.WriteFile(cfg.Output, recs, renderer)
	res.Duration = time.Since(start)
	if err != nil {
		log.Errorf("[ERROR] Wrote %d of %d records before failure: %v", res.Written, len(recs), err)
		return res, err
	}
	log.Infow("done", "output", cfg.Output, "format", renderer.Name(), "written", res.Written, "rewritten", res.Rewritten)

	if cfg.MetricsFile != "" {
		collector := metrics.NewCollector()
		collector.Observe(res)
		if err := collector.WriteTextfile(cfg.MetricsFile); err != nil {
			return res, apperrors.NewOutputError(cfg.MetricsFile, err)
		}
		log.Debugf("[METRICS] Wrote %s", cfg.MetricsFile)
	}

	return res, nil
}
