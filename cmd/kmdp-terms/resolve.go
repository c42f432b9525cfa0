package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/resolver"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

type resolveOptions struct {
	kind      string
	id        string
	uri       string
	namespace string
	version   string
}

func (o *resolveOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.kind, "kind", string(vocabulary.KindConcept), "Term kind")
	cmd.Flags().StringVar(&o.id, "uuid", "", "Term or series UUID")
	cmd.Flags().StringVar(&o.uri, "uri", "", "URI whose last segment is a UUID or a tag")
	cmd.Flags().StringVar(&o.namespace, "namespace", "", "Namespace of the identifier, defaults to the series namespace")
	cmd.Flags().StringVar(&o.version, "version", "", "Version of the identifier")
	cmd.MarkFlagsOneRequired("uuid", "uri")
	cmd.MarkFlagsMutuallyExclusive("uuid", "uri")
}

// resolve runs a resolution from the flags. A missing term is not an error.
func (o *resolveOptions) resolve(r *resolver.Resolver) (resolver.Result, error) {
	kind, err := vocabulary.ParseKind(o.kind)
	if err != nil {
		return resolver.Result{}, err
	}

	if o.uri != "" {
		result, _ := r.ResolveURI(kind, o.uri, o.version)
		return result, nil
	}

	id, err := uuid.Parse(o.id)
	if err != nil {
		return resolver.Result{}, errors.WrapInvalid(fmt.Errorf("uuid %q: %w", o.id, err),
			"kmdp-terms", "resolve", "parse uuid")
	}
	result, _ := r.Resolve(kind, vocabulary.Identifier{
		Namespace: o.namespace,
		UUID:      id,
		Version:   o.version,
	})
	return result, nil
}

func newResolveCmd(a *app) *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a term by identifier and version",
		Long: `Resolve a term from a UUID or URI. Series terms are matched by version;
a SNAPSHOT version without an exact match resolves to the latest version.

Examples:
  kmdp-terms resolve --kind concept --uri https://terms.kmdp.org/taxonomy/assettype/decision-model
  kmdp-terms resolve --kind concept --uuid <series-uuid> --version 20190801`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := opts.resolve(a.resolver)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	opts.register(cmd)
	return cmd
}

func newVersionOfCmd(a *app) *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "version-of BASE_URI",
		Short: "Report the single version tag of the terms under a base URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := vocabulary.ParseKind(kindName)
			if err != nil {
				return err
			}
			version, found, err := a.resolver.VersionOf(kind, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"base":    args[0],
				"found":   found,
				"version": version,
			})
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", string(vocabulary.KindConcept), "Term kind")
	return cmd
}
