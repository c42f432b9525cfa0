package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/API4KBs/kmdp-models-sub004/catalogue"
	"github.com/API4KBs/kmdp-models-sub004/config"
	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/pkg/worker"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary/known"
)

// entry is one registry entry in listing output.
type entry struct {
	Term     *vocabulary.Term   `json:"term"`
	Versions []*vocabulary.Term `json:"versions,omitempty"`
}

type validation struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Terms int    `json:"terms,omitempty"`
	Error string `json:"error,omitempty"`
}

func newCatalogueCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogue",
		Short: "Inspect and validate term catalogues",
	}
	cmd.AddCommand(
		newCatalogueListCmd(a),
		newCatalogueValidateCmd(a),
		newCatalogueSchemaCmd(),
	)
	return cmd
}

func newCatalogueListCmd(a *app) *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered terms by kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := a.registry.Kinds()
			if kindName != "" {
				kind, err := vocabulary.ParseKind(kindName)
				if err != nil {
					return err
				}
				kinds = []vocabulary.Kind{kind}
			}

			out := make(map[vocabulary.Kind][]entry, len(kinds))
			for _, kind := range kinds {
				entries := []entry{}
				for _, v := range a.registry.Variants(kind) {
					entries = append(entries, entry{Term: v.Term(), Versions: v.Versions()})
				}
				out[kind] = entries
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "", "Only list this kind")
	return cmd
}

func newCatalogueValidateCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate catalogue documents against the schema and the default catalogue",
		Long: `Each document is checked against the JSON schema, then applied to a
scratch registry holding the default catalogue (unless disabled) so that
ancestor and series references are checked too.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]validation, len(args))
			_, err := worker.Each(cmd.Context(), workers, args, func(_ context.Context, job worker.Job[string]) error {
				results[job.Index] = validateDocument(job.Item, a.cfg.Catalogue.IncludeDefaults)
				return nil
			})
			if err != nil {
				return err
			}

			failed := 0
			for _, result := range results {
				if !result.Valid {
					failed++
					a.logger.Warn("Catalogue document rejected", "path", result.Path, "error", result.Error)
				}
			}
			if err := printJSON(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if failed > 0 {
				return errors.WrapInvalid(fmt.Errorf("%w: %d of %d documents", errors.ErrInvalidCatalogue, failed, len(args)),
					"kmdp-terms", "validate", "catalogue validation")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Documents validated concurrently")
	return cmd
}

func validateDocument(path string, withDefaults bool) validation {
	data, err := config.SafeReadFile(path, ".yaml", ".yml", ".json")
	if err != nil {
		return validation{Path: path, Error: err.Error()}
	}
	doc, err := catalogue.Parse(data)
	if err != nil {
		return validation{Path: path, Error: err.Error()}
	}

	reg := vocabulary.NewRegistry()
	if withDefaults {
		if err := known.Register(reg); err != nil {
			return validation{Path: path, Error: err.Error()}
		}
	}
	if err := doc.Apply(reg); err != nil {
		return validation{Path: path, Error: err.Error()}
	}
	return validation{Path: path, Valid: true, Terms: doc.Len()}
}

func newCatalogueSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of catalogue documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(catalogue.Schema())
			return err
		},
	}
}
