package known

import "github.com/API4KBs/kmdp-models-sub004/vocabulary"

func lexicon(tag, label, uri string) *vocabulary.Term {
	return vocabulary.MustTerm(vocabulary.KindLexicon, tag,
		vocabulary.WithLabel(label),
		vocabulary.WithURI(uri))
}

// Clinical and general purpose lexicons
var (
	SNOMEDCT = lexicon("snomed-ct", "SNOMED CT", "http://snomed.info/sct")
	LOINC    = lexicon("loinc", "LOINC", "http://loinc.org")
	RxNorm   = lexicon("rxnorm", "RxNorm", "http://www.nlm.nih.gov/research/umls/rxnorm")
	ICD10    = lexicon("icd10", "ICD-10", "http://hl7.org/fhir/sid/icd-10")
	PCV      = lexicon("pcv", "Platform Controlled Vocabulary", vocabulary.BaseURI+"pcv")
	SKOS     = lexicon("skos", "SKOS", "http://www.w3.org/2004/02/skos/core")
)

// Lexicons lists the default lexicons.
func Lexicons() []*vocabulary.Term {
	return []*vocabulary.Term{SNOMEDCT, LOINC, RxNorm, ICD10, PCV, SKOS}
}
