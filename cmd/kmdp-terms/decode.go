package main

import (
	"context"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/API4KBs/kmdp-models-sub004/representation"
	"github.com/API4KBs/kmdp-models-sub004/pkg/worker"
)

func newDecodeCmd(a *app) *cobra.Command {
	var strict bool
	var workers int
	cmd := &cobra.Command{
		Use:   "decode TAG...",
		Short: "Decode representation tags into descriptors",
		Long: `Decode each argument against the catalogue. Unknown tokens are dropped
unless --strict is set, in which case a tag outside the grammar fails the
command.

Examples:
  kmdp-terms decode "model/dmn-v13+xml"
  kmdp-terms decode --strict "model/owl-v2[owl2-el]+turtle+{snomed-ct}"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.decodeAll(cmd.Context(), args, strict, workers)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on text outside the grammar")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Concurrent decoders")
	return cmd
}

// decodeAll decodes texts concurrently, keeping input order. In strict mode
// the first failing text, by position, fails the batch.
func (a *app) decodeAll(ctx context.Context, texts []string, strict bool, workers int) ([]encodeResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var opts []worker.Option[worker.Job[string]]
	if a.cfg.Metrics.Enabled {
		opts = append(opts, worker.WithMetricsRegistry[worker.Job[string]](a.metrics, "decode_pool"))
	}

	results := make([]encodeResult, len(texts))
	errs, err := worker.Each(ctx, workers, texts, func(_ context.Context, job worker.Job[string]) error {
		var d representation.Descriptor
		matched := true
		if strict {
			var err error
			if d, err = a.codec.DecodeStrict(job.Item); err != nil {
				return err
			}
		} else {
			d, matched = a.codec.Decode(job.Item)
		}
		results[job.Index] = encodeResult{Text: job.Item, Descriptor: d, Matched: &matched}
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
