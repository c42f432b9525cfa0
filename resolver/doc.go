// Package resolver reconciles (namespace, uuid, version) identifiers against
// the catalogue.
//
// Each Resolve call runs a small state machine:
//
//	Searching-By-UUID -> Not-Found
//	                  -> Found-Entity (single term, or series without version)
//	                  -> Searching-Series -> Found-Version
//	                                      -> Found-Default (snapshot fallback)
//	                                      -> Not-Found
//
// Within a series the comparison key is the normalized versioned namespace,
// so "http://A/x/1/" and "http://a/x/1" select the same version. A version
// tag containing "-" is a snapshot: when no version matches it, the most
// recently registered version is returned instead.
//
// ToConcept projects a term with its ancestors and closure. VersionOf finds
// the version published for a base URI and fails loudly when the catalogue
// publishes more than one.
package resolver
