package known

import "github.com/API4KBs/kmdp-models-sub004/vocabulary"

func serialization(tag, label, uri string) *vocabulary.Term {
	return vocabulary.MustTerm(vocabulary.KindSerialization, tag,
		vocabulary.WithLabel(label),
		vocabulary.WithURI(uri))
}

// Serializations. Language specific ones carry the language tag as prefix,
// which the encoder elides.
var (
	XMLSerialization    = serialization("xml", "XML", vocabulary.W3cXML)
	JSONSerialization   = serialization("json", "JSON", vocabulary.IetfJSON)
	RDFXML              = serialization("rdf-xml", "RDF/XML", vocabulary.W3cRDFXML)
	Turtle              = serialization("turtle", "Turtle", vocabulary.W3cTurtle)
	OWLManchester       = serialization("owl-v2-manchester", "OWL 2 Manchester Syntax", vocabulary.W3cOWL2+"#manchester")
	OWLFunctionalSyntax = serialization("owl-v2-functional", "OWL 2 Functional Syntax", vocabulary.W3cOWL2+"#functional")
)

// Serializations lists the default serializations.
func Serializations() []*vocabulary.Term {
	return []*vocabulary.Term{XMLSerialization, JSONSerialization, RDFXML, Turtle, OWLManchester, OWLFunctionalSyntax}
}

func format(tag, version, label, uri string) *vocabulary.Term {
	return vocabulary.MustTerm(vocabulary.KindFormat, tag,
		vocabulary.WithVersion(version),
		vocabulary.WithLabel(label),
		vocabulary.WithURI(uri))
}

// Concrete formats. Their tags never collide with serialization tags.
var (
	XML11  = format("xml-v11", "1.1", "XML 1.1", vocabulary.W3cXML)
	JSON1  = format("json-v1", "1", "JSON", vocabulary.IetfJSON)
	YAML12 = format("yaml-v12", "1.2", "YAML 1.2", vocabulary.YamlSpec)
	// TXT is the default format of an unresolvable code segment.
	TXT = format("txt", "", "Plain Text", "https://www.rfc-editor.org/rfc/rfc2046#section-4.1.3")
)

// DefaultFormatTag names the plain text format.
const DefaultFormatTag = "txt"

// Formats lists the default formats.
func Formats() []*vocabulary.Term {
	return []*vocabulary.Term{XML11, JSON1, YAML12, TXT}
}
