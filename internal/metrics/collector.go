package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/livp123/wallfetch/internal/model"
)

// Collector holds the counters of a conversion run on a private registry so
// they can be dumped to a node_exporter textfile.
// Collector 在独立的 registry 上保存一次转换运行的指标，可导出为 node_exporter 文本文件。
type Collector struct {
	registry *prometheus.Registry

	CapturedTotal  prometheus.Counter
	FilteredTotal  prometheus.Counter
	RewrittenTotal prometheus.Counter
	WrittenTotal   prometheus.Counter
	RunDuration    prometheus.Gauge
	LastSuccess    prometheus.Gauge
}

// NewCollector registers the wallfetch metrics on a new registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		CapturedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "wallfetch_captured_urls_total",
			Help: "Fetch statements matched in the capture file",
		}),
		FilteredTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "wallfetch_filtered_urls_total",
			Help: "Captured URLs dropped by the filter expression",
		}),
		RewrittenTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "wallfetch_rewritten_urls_total",
			Help: "URLs whose resolution token was replaced",
		}),
		WrittenTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "wallfetch_written_records_total",
			Help: "Records written to the output file",
		}),
		RunDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wallfetch_run_duration_seconds",
			Help: "Wall time of the last conversion run",
		}),
		LastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wallfetch_last_success_timestamp_seconds",
			Help: "Unix time of the last successful conversion run",
		}),
	}
}

// Observe records the counters of a finished run.
// Observe 记录一次已完成运行的计数。
func (c *Collector) Observe(res *model.Result) {
	c.CapturedTotal.Add(float64(res.Captured))
	c.FilteredTotal.Add(float64(res.Filtered))
	c.RewrittenTotal.Add(float64(res.Rewritten))
	c.WrittenTotal.Add(float64(res.Written))
	c.RunDuration.Set(res.Duration.Seconds())
	c.LastSuccess.SetToCurrentTime()
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// WriteTextfile 以文本格式将所有指标写入 path。
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
