// Package catalogue loads catalogue documents into a vocabulary.Registry.
//
// A catalogue document is YAML (JSON is accepted as a subset) with two lists,
// both applied in document order:
//
//	terms:
//	  - kind: language
//	    tag: dmn-v13
//	    version: "1.3"
//	    uri: https://www.omg.org/spec/DMN/1.3/
//	  - kind: concept
//	    tag: decision-model
//	    namespace: https://example.org/assettype/2/
//	    ancestors: [computable-knowledge]
//	series:
//	  - kind: concept
//	    tag: assettype
//	    namespace: https://example.org/assettype/
//	    versions:
//	      - version: "1"
//	      - version: "2"
//
// Documents are validated against an embedded JSON schema before they are
// decoded. Ancestors name terms of the same kind registered earlier, by this
// document or before it. A series entry whose tag is already registered as a
// series appends its versions to it.
package catalogue
