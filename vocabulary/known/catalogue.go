package known

import (
	"sync"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

var (
	catalogueOnce sync.Once
	catalogue     *vocabulary.Registry
)

// Catalogue returns the frozen default catalogue, built on first use.
func Catalogue() *vocabulary.Registry {
	catalogueOnce.Do(func() {
		reg := vocabulary.NewRegistry()
		if err := Register(reg); err != nil {
			panic(err)
		}
		reg.Freeze()
		catalogue = reg
	})
	return catalogue
}

// Register adds every default token to reg.
func Register(reg *vocabulary.Registry) error {
	groups := [][]*vocabulary.Term{
		Languages(), Profiles(), Serializations(), Formats(), Lexicons(),
	}
	for _, group := range groups {
		for _, t := range group {
			if err := reg.Register(t); err != nil {
				return errors.Wrap(err, "known", "Register", "register "+t.String())
			}
		}
	}

	if err := reg.RegisterSeries(AssetType, AssetTypeVersions...); err != nil {
		return errors.Wrap(err, "known", "Register", "register "+AssetType.String())
	}
	for _, t := range AssetTypes() {
		if err := reg.Register(t); err != nil {
			return errors.Wrap(err, "known", "Register", "register "+t.String())
		}
	}
	return nil
}
