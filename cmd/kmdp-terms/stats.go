package main

import (
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/API4KBs/kmdp-models-sub004/metric"
	"github.com/API4KBs/kmdp-models-sub004/pkg/cache"
)

// sample is one labelled series of a metric family.
type sample struct {
	Labels map[string]string `json:"labels,omitempty"`
	Value  float64           `json:"value"`
	Count  uint64            `json:"count,omitempty"`
}

type cacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Evictions int64 `json:"evictions"`
	Size      int64 `json:"size"`
}

type statsReport struct {
	Catalogue map[string]int      `json:"catalogue"`
	Decode    *cacheStats         `json:"decode_cache,omitempty"`
	Encode    *cacheStats         `json:"encode_cache,omitempty"`
	Metrics   map[string][]sample `json:"metrics,omitempty"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [TAG...]",
		Short: "Decode the given tags and report catalogue, cache and metric counters",
		Long: `Report catalogue sizes, codec cache counters and the module's Prometheus
metrics. Tags given as arguments are decoded first, so their effect shows up
in the report.

Examples:
  kmdp-terms stats "model/dmn-v13+xml" "model/dmn-v13+xml" "model/unknown+xml"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// one worker keeps the cache counters independent of scheduling
			if _, err := a.decodeAll(cmd.Context(), args, false, 1); err != nil {
				return err
			}

			report := statsReport{Catalogue: map[string]int{}}
			for _, kind := range a.registry.Kinds() {
				report.Catalogue[kind.String()] = a.registry.Len(kind)
			}
			report.Decode = toCacheStats(a.codec.DecodeStats())
			report.Encode = toCacheStats(a.codec.EncodeStats())

			if a.cfg.Metrics.Enabled {
				families, err := a.metrics.PrometheusRegistry().Gather()
				if err != nil {
					return err
				}
				report.Metrics = samples(families)
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
}

func toCacheStats(s *cache.Statistics) *cacheStats {
	if s == nil {
		return nil
	}
	return &cacheStats{
		Hits:      s.Hits(),
		Misses:    s.Misses(),
		Sets:      s.Sets(),
		Evictions: s.Evictions(),
		Size:      s.CurrentSize(),
	}
}

// samples flattens the module's metric families. Runtime collectors are
// left out.
func samples(families []*dto.MetricFamily) map[string][]sample {
	out := make(map[string][]sample)
	for _, mf := range families {
		name := mf.GetName()
		if !strings.HasPrefix(name, metric.Namespace+"_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			s := sample{}
			if pairs := m.GetLabel(); len(pairs) > 0 {
				s.Labels = make(map[string]string, len(pairs))
				for _, lp := range pairs {
					s.Labels[lp.GetName()] = lp.GetValue()
				}
			}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.Value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				s.Value = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				s.Value = m.GetHistogram().GetSampleSum()
				s.Count = m.GetHistogram().GetSampleCount()
			default:
				continue
			}
			out[name] = append(out[name], s)
		}
		sort.SliceStable(out[name], func(i, j int) bool {
			return labelKey(out[name][i]) < labelKey(out[name][j])
		})
	}
	return out
}

func labelKey(s sample) string {
	keys := make([]string, 0, len(s.Labels))
	for k, v := range s.Labels {
		keys = append(keys, k+"="+v)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
