// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package metrics counts chain segmentation operations with [Prometheus]
// collectors kept on a private registry.
//
// [Prometheus]: https://prometheus.io
package metrics

import (
	"errors"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	x509chain "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/chain"
)

// Operation names used as the "operation" label.
const (
	OpFindRoot             = "find_root"
	OpSegmentIntermediates = "segment_intermediates"
	OpOrderChain           = "order_chain"
)

// Result labels, see [Result].
const (
	ResultOK              = "ok"
	ResultInvalidArgument = "invalid_argument"
	ResultNotFound        = "not_found"
	ResultError           = "error"
)

// Reporter records the outcome of segmentation operations.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Reporter interface {
	// RecordOperation counts one call of op that ended with result.
	RecordOperation(op, result string)
	// ObserveChainLength records the length of a walked chain.
	ObserveChainLength(n int)
}

// Sample is one flattened metric value.
type Sample struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels,omitempty"`
	Value  float64           `json:"value"`
}

// Prometheus implements Reporter with collectors registered on its own
// registry, so several instances never collide.
type Prometheus struct {
	registry    *prometheus.Registry
	operations  *prometheus.CounterVec
	chainLength prometheus.Histogram
}

// NewPrometheus creates a Reporter backed by a fresh registry.
func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Prometheus{
		registry: registry,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "x509_segmenter_operations_total",
			Help: "Total number of chain segmentation operations",
		}, []string{"operation", "result"}),
		chainLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "x509_segmenter_chain_length",
			Help:    "Number of certificates in walked chains",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 16},
		}),
	}
}

// RecordOperation counts one operation.
func (p *Prometheus) RecordOperation(op, result string) {
	p.operations.WithLabelValues(op, result).Inc()
}

// ObserveChainLength records the length of a walked chain.
func (p *Prometheus) ObserveChainLength(n int) {
	p.chainLength.Observe(float64(n))
}

// Registry exposes the underlying registry, for example to serve it over HTTP.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Snapshot gathers every collector and flattens the result. Histograms
// contribute a _count and a _sum sample. Samples are sorted by name and
// then by label values.
func (p *Prometheus) Snapshot() ([]Sample, error) {
	families, err := p.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, family := range families {
		for _, m := range family.GetMetric() {
			labels := labelMap(m.GetLabel())
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				samples = append(samples, Sample{Name: family.GetName(), Labels: labels, Value: m.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				samples = append(samples, Sample{Name: family.GetName(), Labels: labels, Value: m.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				samples = append(samples,
					Sample{Name: family.GetName() + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: family.GetName() + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return LabelString(samples[i].Labels) < LabelString(samples[j].Labels)
	})

	return samples, nil
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	labels := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		labels[pair.GetName()] = pair.GetValue()
	}
	return labels
}

// LabelString renders labels as name=value pairs sorted by name.
func LabelString(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}

	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = name + "=" + labels[name]
	}
	return strings.Join(pairs, ",")
}

// Result maps an operation error to its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, x509chain.ErrInvalidArgument):
		return ResultInvalidArgument
	case errors.Is(err, x509chain.ErrNotFound):
		return ResultNotFound
	default:
		return ResultError
	}
}
