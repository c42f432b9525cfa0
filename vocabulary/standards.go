package vocabulary

// Standard Vocabulary IRIs
//
// These constants provide the W3C and OMG IRIs the catalogue refers to. The
// annotation properties are used by Term.Properties to export a term as an
// RDF-style property map; the specification IRIs are the URIs of the default
// languages in package known.
//
// References:
// - SKOS: https://www.w3.org/TR/skos-reference/
// - OWL: https://www.w3.org/TR/owl2-overview/
// - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/

// SKOS (Simple Knowledge Organization System) Standard IRIs
const (
	// SkosConcept is the class of terms exported by Properties.
	SkosConcept = "http://www.w3.org/2004/02/skos/core#Concept"

	// SkosPrefLabel carries the term label.
	SkosPrefLabel = "http://www.w3.org/2004/02/skos/core#prefLabel"

	// SkosNotation carries the term tag, the code used in encoded strings.
	SkosNotation = "http://www.w3.org/2004/02/skos/core#notation"

	// SkosBroader links a term to its direct ancestors.
	SkosBroader = "http://www.w3.org/2004/02/skos/core#broader"

	// SkosBroaderTransitive links a term to every member of its closure.
	SkosBroaderTransitive = "http://www.w3.org/2004/02/skos/core#broaderTransitive"

	// SkosInScheme links a term to its (versioned) namespace.
	SkosInScheme = "http://www.w3.org/2004/02/skos/core#inScheme"

	// SkosExactMatch links a term to its referent.
	SkosExactMatch = "http://www.w3.org/2004/02/skos/core#exactMatch"
)

// RDF and OWL Standard IRIs
const (
	RdfType        = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	OwlVersionInfo = "http://www.w3.org/2002/07/owl#versionInfo"
)

// Dublin Core Metadata Terms Standard IRIs
const (
	// DcIdentifier carries the term UUID.
	DcIdentifier = "http://purl.org/dc/terms/identifier"
)

// Specification IRIs of the default languages
const (
	OmgDMN11  = "https://www.omg.org/spec/DMN/1.1/"
	OmgDMN12  = "https://www.omg.org/spec/DMN/1.2/"
	OmgDMN13  = "https://www.omg.org/spec/DMN/1.3/"
	OmgBPMN20 = "https://www.omg.org/spec/BPMN/2.0/"
	OmgCMMN11 = "https://www.omg.org/spec/CMMN/1.1/"
	W3cOWL2   = "https://www.w3.org/TR/owl2-overview/"
	W3cSPARQL = "https://www.w3.org/TR/sparql11-query/"
	W3cHTML   = "https://html.spec.whatwg.org/"
	W3cXML    = "https://www.w3.org/TR/xml11/"
	W3cRDFXML = "https://www.w3.org/TR/rdf-syntax-grammar/"
	W3cTurtle = "https://www.w3.org/TR/turtle/"
	HL7FHIR3  = "http://hl7.org/fhir/STU3/"
	HL7FHIR4  = "http://hl7.org/fhir/R4/"
	IetfJSON  = "https://www.rfc-editor.org/rfc/rfc8259"
	YamlSpec  = "https://yaml.org/spec/1.2/spec.html"
)

// Properties exports the term as a property map keyed by standard IRIs.
// Multi-valued properties are string slices; absent values are omitted.
func (t *Term) Properties() map[string]any {
	props := map[string]any{
		RdfType:       SkosConcept,
		DcIdentifier:  t.id.String(),
		SkosNotation:  t.tag,
		SkosPrefLabel: t.label,
	}
	if t.version != "" {
		props[OwlVersionInfo] = t.version
	}
	if t.namespace != "" {
		props[SkosInScheme] = t.namespace
	}
	if t.referent != "" {
		props[SkosExactMatch] = t.referent
	}
	if t.hasClosure {
		props[SkosBroader] = termRefs(t.ancestors)
		props[SkosBroaderTransitive] = termRefs(t.closure)
	}
	return props
}

// termRefs prefers URIs and falls back to tags.
func termRefs(terms []*Term) []string {
	refs := make([]string, 0, len(terms))
	for _, a := range terms {
		if a.uri != "" {
			refs = append(refs, a.uri)
			continue
		}
		refs = append(refs, a.tag)
	}
	return refs
}
