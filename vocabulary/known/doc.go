// Package known declares the default catalogue: the languages, profiles,
// serializations, formats, lexicons and concept series that every KMDP
// representation tag may refer to.
//
// Each token is a package-level Term that enumerates itself into the
// catalogue; nothing is discovered at run time. Catalogue returns the shared,
// frozen registry built on first use. Register copies the defaults into a
// registry that is still being built, so that catalogue documents can extend
// them:
//
//	reg := vocabulary.NewRegistry()
//	if err := known.Register(reg); err != nil {
//	    return err
//	}
//	// load more terms, then
//	reg.Freeze()
package known
