package known

import (
	"strings"

	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

// AssetTypeNamespace is the unversioned namespace of the asset type scheme.
const AssetTypeNamespace = vocabulary.BaseURI + "taxonomy/assettype/"

// Published versions of the asset type scheme, oldest first.
const (
	AssetTypeV1 = "20190801"
	AssetTypeV2 = "20210401"
)

// AssetType is the series owning every published version of the scheme.
var AssetType = vocabulary.MustTerm(vocabulary.KindConcept, "assettype",
	vocabulary.WithLabel("Knowledge Asset Type"),
	vocabulary.WithURI(strings.TrimSuffix(AssetTypeNamespace, "/")),
	vocabulary.WithNamespace(AssetTypeNamespace))

// AssetTypeVersions are the concrete versions of AssetType.
var AssetTypeVersions = []*vocabulary.Term{
	schemeVersion(AssetTypeV1),
	schemeVersion(AssetTypeV2),
}

func schemeVersion(version string) *vocabulary.Term {
	ns := vocabulary.ApplyVersion(AssetTypeNamespace, version)
	return vocabulary.MustTerm(vocabulary.KindConcept, AssetType.Tag()+"-"+version,
		vocabulary.WithUUID(AssetType.UUID()),
		vocabulary.WithVersion(version),
		vocabulary.WithLabel(AssetType.Label()+" "+version),
		vocabulary.WithURI(strings.TrimSuffix(ns, "/")),
		vocabulary.WithNamespace(ns))
}

func assetType(tag, label string, ancestors ...*vocabulary.Term) *vocabulary.Term {
	ns := vocabulary.ApplyVersion(AssetTypeNamespace, AssetTypeV2)
	return vocabulary.MustTerm(vocabulary.KindConcept, tag,
		vocabulary.WithVersion(AssetTypeV2),
		vocabulary.WithLabel(label),
		vocabulary.WithURI(strings.TrimSuffix(ns, "/")+"#"+tag),
		vocabulary.WithReferent(vocabulary.BaseURI+"ontology/"+tag),
		vocabulary.WithNamespace(ns),
		vocabulary.WithAncestors(ancestors...))
}

// Asset types of the current scheme version, ancestors first.
var (
	KnowledgeAsset       = assetType("knowledge-asset", "Knowledge Asset")
	ComputableKnowledge  = assetType("computable-knowledge", "Computable Knowledge", KnowledgeAsset)
	DecisionModel        = assetType("decision-model", "Decision Model", ComputableKnowledge)
	ClinicalRule         = assetType("clinical-rule", "Clinical Rule", ComputableKnowledge)
	ClinicalDecisionRule = assetType("clinical-decision-rule", "Clinical Decision Rule", DecisionModel, ClinicalRule)
	CareProcessModel     = assetType("care-process-model", "Care Process Model", ComputableKnowledge)
	TermsDefinition      = assetType("terms-definition", "Terms Definition", KnowledgeAsset)
)

// AssetTypes lists the single concepts of the scheme.
func AssetTypes() []*vocabulary.Term {
	return []*vocabulary.Term{
		KnowledgeAsset, ComputableKnowledge, DecisionModel, ClinicalRule,
		ClinicalDecisionRule, CareProcessModel, TermsDefinition,
	}
}
