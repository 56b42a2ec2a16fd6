package main

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/sirupsen/logrus"
)

// Stats counts what a run did to the messages it saw. Safe for concurrent
// use.
type Stats struct {
	scanned            atomic.Uint64
	invalid            atomic.Uint64
	gsm                atomic.Uint64
	ucs2               atomic.Uint64
	conversionFailures atomic.Uint64
	published          atomic.Uint64
}

func (s *Stats) countEncoding(gsm bool) {
	if gsm {
		s.gsm.Add(1)
	} else {
		s.ucs2.Add(1)
	}
}

// MetricExporter exposes Stats as Prometheus metrics.
type MetricExporter struct {
	desc  map[string]*prometheus.Desc
	id    string
	stats *Stats
}

// NewMetricExporter initializes the MetricExporter with descriptions for each metric.
func NewMetricExporter(id string, stats *Stats) *MetricExporter {
	metricDesc := map[string]*prometheus.Desc{
		"messages_scanned":    prometheus.NewDesc("smsjson_messages_scanned", "Message bodies scanned", []string{"instance"}, nil),
		"messages_invalid":    prometheus.NewDesc("smsjson_messages_invalid", "Message bodies with invalid UTF-16 sequences", []string{"instance"}, nil),
		"messages_encoding":   prometheus.NewDesc("smsjson_messages_encoding", "Messages by transport alphabet", []string{"instance", "encoding"}, nil),
		"conversion_failures": prometheus.NewDesc("smsjson_conversion_failures", "Transcoding failures", []string{"instance"}, nil),
		"records_published":   prometheus.NewDesc("smsjson_records_published", "Records published to the queue", []string{"instance"}, nil),
	}

	return &MetricExporter{
		desc:  metricDesc,
		id:    id,
		stats: stats,
	}
}

// Describe sends all metric descriptions to the Prometheus channel.
func (e *MetricExporter) Describe(ch chan<- *prometheus.Desc) {
	for _, desc := range e.desc {
		ch <- desc
	}
}

// Collect reads the current counter values.
func (e *MetricExporter) Collect(ch chan<- prometheus.Metric) {
	s := e.stats
	counter := func(name string, v uint64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(e.desc[name], prometheus.CounterValue, float64(v), append([]string{e.id}, labels...)...)
	}

	counter("messages_scanned", s.scanned.Load())
	counter("messages_invalid", s.invalid.Load())
	counter("messages_encoding", s.gsm.Load(), "gsm7")
	counter("messages_encoding", s.ucs2.Load(), "ucs2")
	counter("conversion_failures", s.conversionFailures.Load())
	counter("records_published", s.published.Load())
}

// pushMetrics sends the run's counters to a Prometheus pushgateway.
func pushMetrics(cfg Config, exporter *MetricExporter) error {
	logf := LoggingFormat{Type: LogType.Metrics, Function: "pushMetrics"}

	err := push.New(cfg.MetricsPushURL, cfg.MetricsJob).Collector(exporter).Push()
	if err != nil {
		logf.Level = logrus.ErrorLevel
		logf.Message = "failed to push metrics"
		logf.Error = err
		return logf.ToError()
	}

	logf.Level = logrus.DebugLevel
	logf.Message = "metrics pushed"
	logf.AddField("url", cfg.MetricsPushURL)
	logf.Print()
	return nil
}
