package main

import (
	"github.com/spf13/cobra"

	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

type uriResult struct {
	Input  string `json:"input"`
	Result string `json:"result"`
}

func newURICmd(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uri",
		Short: "Compose and decompose versioned URIs",
	}
	cmd.AddCommand(
		newURIApplyCmd(),
		newURIStripCmd(),
		newURIIDCmd(),
		newURINormalizeCmd(),
	)
	return cmd
}

func newURIApplyCmd() *cobra.Command {
	var position int
	var separator string
	cmd := &cobra.Command{
		Use:   "apply URI VERSION",
		Short: "Insert a version segment into a URI",
		Long: `Insert VERSION as a path segment. Without --position the version is
appended. Negative positions count from the end; positions out of range
append. URNs always use ":".

Examples:
  kmdp-terms uri apply http://example.org/a/b 1.0.0
  kmdp-terms uri apply http://example.org/a/b 1.0.0 --position 0
  kmdp-terms uri apply urn:uuid:1234 v2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos := vocabulary.AppendPosition
			if cmd.Flags().Changed("position") {
				pos = position
			}
			out := vocabulary.ApplyVersionWith(args[0], args[1], pos, separator)
			return printJSON(cmd.OutOrStdout(), uriResult{Input: args[0], Result: out})
		},
	}
	cmd.Flags().IntVar(&position, "position", 0, "Segment index for the version")
	cmd.Flags().StringVar(&separator, "separator", vocabulary.DefaultSeparator, "Segment separator")
	return cmd
}

func newURIStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip VERSIONED_URI BASE_URI",
		Short: "Extract the version tag from a versioned URI",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := vocabulary.StripVersion(args[0], args[1])
			return printJSON(cmd.OutOrStdout(), uriResult{Input: args[0], Result: out})
		},
	}
}

func newURIIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id URI",
		Short: "Extract the local identifier of a URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := vocabulary.ExtractIdentifier(args[0])
			return printJSON(cmd.OutOrStdout(), uriResult{Input: args[0], Result: out})
		},
	}
}

func newURINormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize URI",
		Short: "Normalize a URI for comparison",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := vocabulary.NormalizeURI(args[0])
			return printJSON(cmd.OutOrStdout(), uriResult{Input: args[0], Result: out})
		},
	}
}
