// Package representation encodes syntactic representation descriptors to
// and from their compact textual form:
//
//	model/<lang>[-<ver>][<[profile]>](+<serialization>|+<format>)[+{lex1,lex2,...}]
//
// For example "model/dmn-v13+xml" is DMN 1.3 serialized as XML, and
// "model/owl-v2[owl2-el]+turtle+{snomed-ct,loinc}" is an OWL 2 EL ontology in
// Turtle that uses two clinical lexicons.
//
// The format is a persisted compatibility boundary: the grammar is built once
// and every string produced by Encode matches it.
//
// # Encoding
//
// Encode is a pure function. A result that does not match the grammar is a
// programming error and is reported as a fatal-class ErrGrammarViolation, never
// truncated:
//
//	text, err := representation.Encode(d, true)
//
// # Decoding
//
// Decoding resolves tokens against a Catalogue. Text that does not match the
// grammar decodes to nothing. Tokens without a catalogue entry are dropped
// silently, except the "+code" segment: when it names no serialization it
// resolves as a format, falling back to plain text.
//
//	codec := representation.NewCodec(known.Catalogue())
//	d, ok := codec.Decode("model/dmn-v13+xml")
//
// MemoCodec memoizes both directions with pkg/cache.
package representation
