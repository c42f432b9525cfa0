package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/API4KBs/kmdp-models-sub004/catalogue"
	"github.com/API4KBs/kmdp-models-sub004/config"
	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/metric"
	"github.com/API4KBs/kmdp-models-sub004/representation"
	"github.com/API4KBs/kmdp-models-sub004/resolver"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary/known"
)

// rootOptions are the persistent flags.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	catalogues []string
	noDefaults bool
}

// app holds what every command works with, built once per invocation.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *metric.MetricsRegistry
	registry *vocabulary.Registry
	codec    *representation.MemoCodec
	resolver *resolver.Resolver
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Encode representation tags, version URIs and resolve catalogue terms",
		Long: `kmdp-terms works with the KMDP term catalogue.

Representation tags have the form
  model/<lang>[-<ver>][<[profile]>](+<serialization>|+<format>)[+{lex1,lex2,...}]

Examples:
  kmdp-terms decode "model/dmn-v13+xml"
  kmdp-terms encode --language owl-v2 --serialization turtle --lexicon snomed-ct
  kmdp-terms uri apply http://example.org/x/ 1.0.0 --position 0
  kmdp-terms resolve --kind concept --uri urn:uuid:<id> --version 20210401`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Configuration file (JSON or YAML)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format (json, text)")
	flags.StringSliceVar(&opts.catalogues, "catalogue", nil, "Additional catalogue documents")
	flags.BoolVar(&opts.noDefaults, "no-defaults", false, "Do not include the default catalogue")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newURICmd(a),
		newResolveCmd(a),
		newConceptCmd(a),
		newVersionOfCmd(a),
		newCatalogueCmd(a),
		newStatsCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the catalogue
// and the services on top of it.
func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Logging.Format = opts.logFormat
	}
	cfg.Catalogue.Paths = append(cfg.Catalogue.Paths, opts.catalogues...)
	if opts.noDefaults {
		cfg.Catalogue.IncludeDefaults = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = setupLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(a.logger)

	a.registry, err = buildRegistry(cfg.Catalogue, a.logger)
	if err != nil {
		return err
	}

	a.metrics = metric.NewMetricsRegistry()
	var core *metric.Metrics
	var cacheMetrics *metric.MetricsRegistry
	if cfg.Metrics.Enabled {
		core = a.metrics.CoreMetrics()
		cacheMetrics = a.metrics
		for _, kind := range a.registry.Kinds() {
			core.RecordCatalogueSize(kind.String(), a.registry.Len(kind))
		}
	}

	codec := representation.NewCodec(a.registry,
		representation.WithLogger(a.logger),
		representation.WithMetrics(core))
	a.codec, err = representation.NewMemoCodec(codec, cfg.Codec.Cache, cacheMetrics)
	if err != nil {
		return err
	}

	a.resolver = resolver.New(a.registry,
		resolver.WithLogger(a.logger),
		resolver.WithMetrics(core))

	a.logger.Debug("Catalogue ready",
		"kinds", len(a.registry.Kinds()),
		"include_defaults", cfg.Catalogue.IncludeDefaults,
		"documents", len(cfg.Catalogue.Paths))
	return nil
}

func buildRegistry(cfg config.CatalogueConfig, logger *slog.Logger) (*vocabulary.Registry, error) {
	reg := vocabulary.NewRegistry()
	if cfg.IncludeDefaults {
		if err := known.Register(reg); err != nil {
			return nil, errors.Wrap(err, "kmdp-terms", "buildRegistry", "default catalogue")
		}
	}
	for _, path := range cfg.Paths {
		if err := catalogue.LoadFile(reg, path); err != nil {
			return nil, err
		}
		logger.Debug("Loaded catalogue document", "path", path)
	}
	reg.Freeze()
	return reg, nil
}
