package main

import (
	"github.com/spf13/cobra"

	"github.com/API4KBs/kmdp-models-sub004/resolver"
)

type conceptResult struct {
	resolver.ConceptDescriptor
	Outcome resolver.Outcome `json:"outcome"`
}

func newConceptCmd(a *app) *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "concept",
		Short: "Resolve a term with its ancestors and closure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := opts.resolve(a.resolver)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), conceptResult{
				ConceptDescriptor: resolver.ToConcept(result.Term),
				Outcome:           result.Outcome,
			})
		},
	}
	opts.register(cmd)
	return cmd
}
