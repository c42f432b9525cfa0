package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/representation"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

type encodeOptions struct {
	language      string
	profile       string
	serialization string
	format        string
	lexicon       []string
	noVersion     bool
}

// encodeResult is the JSON shape of encode and decode.
type encodeResult struct {
	Text       string                    `json:"text"`
	Descriptor representation.Descriptor `json:"descriptor"`
	Matched    *bool                     `json:"matched,omitempty"`
}

func newEncodeCmd(a *app) *cobra.Command {
	opts := &encodeOptions{}
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a representation descriptor from catalogue tags",
		Long: `Build a descriptor from term tags and print its representation tag.

Examples:
  kmdp-terms encode --language dmn-v13 --serialization xml
  kmdp-terms encode --language owl-v2 --profile owl2-el --serialization turtle --lexicon snomed-ct,loinc
  kmdp-terms encode --language fhir-r4 --format json-v1 --no-version`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.descriptor(a.registry)
			if err != nil {
				return err
			}
			includeVersion := a.cfg.Codec.IncludeVersion && !opts.noVersion
			text, err := a.codec.Encode(d, includeVersion)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), encodeResult{Text: text, Descriptor: d})
		},
	}

	cmd.Flags().StringVar(&opts.language, "language", "", "Language tag (required)")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "Profile tag")
	cmd.Flags().StringVar(&opts.serialization, "serialization", "", "Serialization tag")
	cmd.Flags().StringVar(&opts.format, "format", "", "Format tag")
	cmd.Flags().StringSliceVar(&opts.lexicon, "lexicon", nil, "Lexicon tags")
	cmd.Flags().BoolVar(&opts.noVersion, "no-version", false, "Omit the language version")
	_ = cmd.MarkFlagRequired("language")
	return cmd
}

// descriptor looks up every flag value in reg.
func (o *encodeOptions) descriptor(reg *vocabulary.Registry) (representation.Descriptor, error) {
	var d representation.Descriptor
	var err error

	if d.Language, err = lookupTag(reg, vocabulary.KindLanguage, o.language); err != nil {
		return d, err
	}
	if d.Profile, err = lookupTag(reg, vocabulary.KindProfile, o.profile); err != nil {
		return d, err
	}
	if d.Serialization, err = lookupTag(reg, vocabulary.KindSerialization, o.serialization); err != nil {
		return d, err
	}
	if d.Format, err = lookupTag(reg, vocabulary.KindFormat, o.format); err != nil {
		return d, err
	}
	for _, tag := range o.lexicon {
		lex, err := lookupTag(reg, vocabulary.KindLexicon, tag)
		if err != nil {
			return d, err
		}
		d.Lexicon = append(d.Lexicon, lex)
	}
	return d, d.Validate()
}

// lookupTag returns nil for an empty tag.
func lookupTag(reg *vocabulary.Registry, kind vocabulary.Kind, tag string) (*vocabulary.Term, error) {
	if tag == "" {
		return nil, nil
	}
	t, ok := reg.Lookup(kind, tag)
	if !ok {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %s %q", errors.ErrUnknownTerm, kind, tag),
			"kmdp-terms", "lookupTag", "catalogue lookup")
	}
	return t, nil
}
