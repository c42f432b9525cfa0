package testutil

// ValidDescriptors are fixture descriptor strings that decode without drops.
var ValidDescriptors = []string{
	"model/",
	"model/alpha-v1",
	"model/alpha-v2[strict]+xml",
	"model/alpha-v2+compact",
	"model/beta+json+{lex-a,lex-b}",
	"model/+xml-v1",
	"model/+{lex-c}",
	"model/alpha-v10[lax]+txt+{lex-c,lex-a}",
}

// MalformedDescriptors do not match the descriptor grammar.
var MalformedDescriptors = []string{
	"",
	"model",
	"mod/alpha",
	"model/alpha/v1",
	"model/alpha[strict",
	"model/alpha+{lex-a",
	"model/alpha+{}",
	"model/-v1",
	"model/alpha v1",
	"model/[a][b]",
	" model/alpha",
}

// CatalogueYAML is a catalogue document extending the fixture kinds.
const CatalogueYAML = `terms:
  - kind: language
    tag: gamma-v1
    label: Gamma 1
    version: "1.0.0"
    uri: http://example.org/lang/gamma/1.0.0
  - kind: concept
    tag: top
    label: Top
    namespace: http://example.org/doc/1/
    ancestors: []
  - kind: concept
    tag: bottom
    label: Bottom
    namespace: http://example.org/doc/1/
    ancestors: [top]
series:
  - kind: concept
    tag: doc-scheme
    label: Document Scheme
    namespace: http://example.org/doc-scheme/
    versions:
      - version: "1"
      - version: "2"
        label: Document Scheme 2
`
