package known

import "github.com/API4KBs/kmdp-models-sub004/vocabulary"

// LanguageNamespace scopes the language scheme.
const LanguageNamespace = vocabulary.BaseURI + "language/"

func language(tag, version, label, uri string) *vocabulary.Term {
	return vocabulary.MustTerm(vocabulary.KindLanguage, tag,
		vocabulary.WithVersion(version),
		vocabulary.WithLabel(label),
		vocabulary.WithURI(uri),
		vocabulary.WithReferent(LanguageNamespace+tag),
		vocabulary.WithNamespace(LanguageNamespace))
}

// Knowledge representation languages
var (
	DMN11    = language("dmn-v11", "1.1", "Decision Model and Notation 1.1", vocabulary.OmgDMN11)
	DMN12    = language("dmn-v12", "1.2", "Decision Model and Notation 1.2", vocabulary.OmgDMN12)
	DMN13    = language("dmn-v13", "1.3", "Decision Model and Notation 1.3", vocabulary.OmgDMN13)
	BPMN2    = language("bpmn-v2", "2.0", "Business Process Model and Notation 2.0", vocabulary.OmgBPMN20)
	CMMN11   = language("cmmn-v11", "1.1", "Case Management Model and Notation 1.1", vocabulary.OmgCMMN11)
	OWL2     = language("owl-v2", "2", "Web Ontology Language 2", vocabulary.W3cOWL2)
	SPARQL11 = language("sparql-v11", "1.1", "SPARQL 1.1", vocabulary.W3cSPARQL)
	FHIRSTU3 = language("fhir-stu3", "3.0.2", "HL7 FHIR STU3", vocabulary.HL7FHIR3)
	FHIRR4   = language("fhir-r4", "4.0.1", "HL7 FHIR R4", vocabulary.HL7FHIR4)
	HTML     = language("html", "", "HTML", vocabulary.W3cHTML)
)

// Languages lists the default languages in registration order.
func Languages() []*vocabulary.Term {
	return []*vocabulary.Term{DMN11, DMN12, DMN13, BPMN2, CMMN11, OWL2, SPARQL11, FHIRSTU3, FHIRR4, HTML}
}

func profile(tag, label string) *vocabulary.Term {
	return vocabulary.MustTerm(vocabulary.KindProfile, tag,
		vocabulary.WithLabel(label),
		vocabulary.WithURI(vocabulary.W3cOWL2+"#"+tag))
}

// OWL 2 profiles
var (
	OWL2EL = profile("owl2-el", "OWL 2 EL")
	OWL2QL = profile("owl2-ql", "OWL 2 QL")
	OWL2RL = profile("owl2-rl", "OWL 2 RL")
	OWL2DL = profile("owl2-dl", "OWL 2 DL")
)

// Profiles lists the default language profiles.
func Profiles() []*vocabulary.Term {
	return []*vocabulary.Term{OWL2EL, OWL2QL, OWL2RL, OWL2DL}
}
