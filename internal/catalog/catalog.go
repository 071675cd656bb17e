package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

// Category is one of the fixed sound categories.
type Category string

const (
	Animals   Category = "animals"
	Vehicles  Category = "vehicles"
	Nature    Category = "nature"
	Household Category = "household"
	Human     Category = "human"
)

// Categories returns the fixed category order used for display and reporting.
func Categories() []Category {
	return []Category{Animals, Vehicles, Nature, Household, Human}
}

// ParseCategory validates a category name.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", name)
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	switch c {
	case Animals, Vehicles, Nature, Household, Human:
		return true
	}
	return false
}

// Item is a single catalog sound.
type Item struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Sound       string   `json:"sound"`
	Emoji       string   `json:"emoji"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Catalog is a read-only view over the built-in sounds with sound paths
// prefixed by a base URL.
type Catalog struct {
	items      []Item
	byCategory map[Category][]Item
	byID       map[int]Item
}

// New builds a catalog. baseURL is prepended to every sound path.
func New(baseURL string) *Catalog {
	base := strings.TrimRight(baseURL, "/")
	cat := &Catalog{
		byCategory: make(map[Category][]Item),
		byID:       make(map[int]Item),
	}
	for _, c := range Categories() {
		for _, it := range builtin[c] {
			it.Category = c
			it.Sound = base + it.Sound
			cat.items = append(cat.items, it)
			cat.byCategory[c] = append(cat.byCategory[c], it)
			cat.byID[it.ID] = it
		}
	}
	return cat
}

// Default is the catalog with unprefixed sound paths.
var Default = New("")

// All returns every item in category order.
func (c *Catalog) All() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory returns the items of one category, or nil for an unknown one.
func (c *Catalog) ByCategory(category Category) []Item {
	items := c.byCategory[category]
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Lookup finds an item by id.
func (c *Catalog) Lookup(id int) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Random picks a uniformly random item from a category.
func (c *Catalog) Random(rng *rand.Rand, category Category) (Item, bool) {
	items := c.byCategory[category]
	if len(items) == 0 {
		return Item{}, false
	}
	return items[rng.Intn(len(items))], true
}
