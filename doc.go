// Package kmdp maintains versioned semantic identifiers ("terms") and a
// compact textual encoding of representation descriptors.
//
// # Overview
//
// Knowledge artifacts are described by the language they are written in,
// an optional profile of that language, the serialization or format used
// to write them and the lexicons (controlled vocabularies) they reference.
// Each of those is a term of a catalogue. This module provides:
//
//   - the catalogue itself: terms, kinds, single and series entries and a
//     concurrent read-mostly registry (package vocabulary)
//   - a default catalogue of well known languages, serializations, formats,
//     lexicons and a versioned asset type taxonomy (package vocabulary/known)
//   - YAML catalogue documents validated against an embedded JSON schema
//     (package catalogue)
//   - the representation codec (package representation)
//   - URI version composition (package vocabulary)
//   - the versioned term resolver (package resolver)
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│          kmdp-terms CLI             │  encode, decode, uri,
//	│      (cobra, viper config)          │  resolve, catalogue, stats
//	└─────────────────────────────────────┘
//	           ↓ uses
//	┌──────────────────┐ ┌────────────────┐
//	│  representation  │ │    resolver    │  Codec, MemoCodec,
//	│  (grammar codec) │ │ (series, SNAP) │  Resolver, Concept
//	└──────────────────┘ └────────────────┘
//	           ↓ read through Catalogue interfaces
//	┌─────────────────────────────────────┐
//	│         vocabulary.Registry         │  known defaults +
//	│  (terms, variants, URI composer)    │  catalogue documents
//	└─────────────────────────────────────┘
//
// # Representation tags
//
// A descriptor is written as
//
//	model/<lang>[-<ver>][<[profile]>](+<serialization>|+<format>)[+{lex1,lex2,...}]
//
// for example "model/dmn-v13+xml" or
// "model/owl-v2[owl2-el]+turtle+{snomed-ct,loinc}". Decoding never fails on
// unknown tokens: they are dropped, logged at debug level and counted.
//
// # Versioned identifiers
//
// Series terms group the published versions of a scheme. Each version
// lives under the series namespace with the version tag inserted as a path
// segment:
//
//	vocabulary.ApplyVersion("https://terms.kmdp.org/taxonomy/assettype/", "20210401")
//	// https://terms.kmdp.org/taxonomy/assettype/20210401/
//
// Resolving a series identifier selects the version whose namespace matches;
// a SNAPSHOT version without an exact match resolves to the latest one.
//
// # Ambient stack
//
//   - errors: classified errors (invalid, fatal) wrapped with component context
//   - metric: Prometheus registry and core codec/resolver metrics
//   - config: viper backed configuration with KMDP_* overrides
//   - pkg/cache: memo caches with statistics
//   - pkg/worker: bounded worker pool for batch decoding and validation
package kmdp
