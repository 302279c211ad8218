// Package content populates the definition catalogs at process start.
// Catalogs come either from a TOML content file, where the order of the
// array-of-tables entries is the catalog order, or from the compiled-in
// default set. Both peers of a connection must load identical content;
// the codec cannot detect a mismatch beyond out-of-range references.
package content

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/mquist/gamewire/catalog"
	"github.com/mquist/gamewire/packet"
)

// entry is one catalog entry in the content file. Keys beyond the name
// (art references, rarity tiers) belong to the rendering layer and are
// ignored here.
type entry struct {
	Name string `toml:"name"`
}

type contentFile struct {
	Skins  []entry `toml:"skins"`
	Badges []entry `toml:"badges"`
	Emotes []entry `toml:"emotes"`
	Items  []entry `toml:"items"`
}

// Load reads a TOML content file and builds the catalog set.
func Load(path string) (*packet.Catalogs, error) {
	var file contentFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", path, err)
	}
	return build(file)
}

func build(file contentFile) (*packet.Catalogs, error) {
	cats := &packet.Catalogs{}
	for _, c := range []struct {
		name    string
		entries []entry
		dst     **catalog.Catalog
	}{
		{"skins", file.Skins, &cats.Skins},
		{"badges", file.Badges, &cats.Badges},
		{"emotes", file.Emotes, &cats.Emotes},
		{"items", file.Items, &cats.Items},
	} {
		names := make([]string, len(c.entries))
		for i, e := range c.entries {
			names[i] = e.Name
		}
		cat, err := catalog.New(c.name, names)
		if err != nil {
			return nil, err
		}
		*c.dst = cat
	}
	return cats, nil
}

// Default returns the compiled-in content set used by tests and the
// demo binary. The order here is wire order; append only.
func Default() *packet.Catalogs {
	return &packet.Catalogs{
		Skins: catalog.MustNew("skins", []string{
			"classic", "aurora", "ember", "tide", "meadow", "nebula",
		}),
		Badges: catalog.MustNew("badges", []string{
			"bronze", "silver", "gold", "mentor", "streak-7", "streak-30",
		}),
		Emotes: catalog.MustNew("emotes", []string{
			"wave", "dance", "cry", "laugh", "bow", "cheer", "facepalm", "sleep",
		}),
		Items: catalog.MustNew("items", []string{
			"gauze", "potion", "scroll", "apple", "torch",
		}),
	}
}
