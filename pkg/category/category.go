// Package category defines the closed set of beverage categories a record can carry.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// Info describes how a category is keyed, labelled and drawn.
type Info struct {
	Key     string
	Label   string
	Meaning string
	Color   string
	Aliases []string
}

// Category is one of the beverage kinds. The declaration order is significant:
// statistics break ties by it.
type Category int

const (
	Beer Category = iota
	Sake
	RedWine
	WhiteWine
	Whiskey
	Shochu
	Cocktail
	Other
)

// ErrUnknown is returned when a value does not name a category.
var ErrUnknown = errors.New("category: unknown")

var infos = []Info{
	{Key: "beer", Label: "ビール", Meaning: "beer", Color: "#FFA500", Aliases: []string{"ale", "lager", "ipa"}},
	{Key: "sake", Label: "日本酒", Meaning: "sake", Color: "#E6E6FA", Aliases: []string{"nihonshu"}},
	{Key: "red-wine", Label: "赤ワイン", Meaning: "red wine", Color: "#8B0000", Aliases: []string{"red", "redwine"}},
	{Key: "white-wine", Label: "白ワイン", Meaning: "white wine", Color: "#F5F5DC", Aliases: []string{"white", "whitewine"}},
	{Key: "whiskey", Label: "ウイスキー", Meaning: "whiskey", Color: "#D2691E", Aliases: []string{"whisky", "bourbon", "scotch"}},
	{Key: "shochu", Label: "焼酎", Meaning: "shochu", Color: "#98FB98", Aliases: []string{"soju"}},
	{Key: "cocktail", Label: "カクテル", Meaning: "cocktail", Color: "#FF69B4", Aliases: []string{"mixed"}},
	{Key: "other", Label: "その他", Meaning: "other", Color: "#C0C0C0", Aliases: []string{"misc"}},
}

// All returns every category in declaration order.
func All() []Category {
	all := make([]Category, len(infos))
	for i := range infos {
		all[i] = Category(i)
	}
	return all
}

// Valid reports whether c is a declared category.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(infos)
}

// Info returns the metadata for c. Invalid values map to Other.
func (c Category) Info() Info {
	if !c.Valid() {
		return infos[Other]
	}
	return infos[c]
}

func (c Category) Key() string {
	return c.Info().Key
}

func (c Category) Label() string {
	return c.Info().Label
}

// Color is the marker color as a #RRGGBB hex string.
func (c Category) Color() string {
	return c.Info().Color
}

func (c Category) String() string {
	return c.Info().Meaning
}

// Parse resolves a key, alias, label or meaning to a category.
func Parse(s string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return Other, fmt.Errorf("%w: empty value", ErrUnknown)
	}
	for i, info := range infos {
		if needle == info.Key || needle == info.Label || needle == info.Meaning {
			return Category(i), nil
		}
		for _, alias := range info.Aliases {
			if needle == alias {
				return Category(i), nil
			}
		}
	}
	return Other, fmt.Errorf("%w: %q", ErrUnknown, s)
}

// Keys lists the category keys in declaration order, for flag help and completions.
func Keys() []string {
	keys := make([]string, len(infos))
	for i, info := range infos {
		keys[i] = info.Key
	}
	return keys
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown, int(c))
	}
	return []byte(c.Key()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
