package catalog

import (
	"errors"
	"myPotionMaker/domain"
	"sort"

	"github.com/agnivade/levenshtein"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

// Catalog is the read-only ingredient lookup table. It is safe to share across
// goroutines once built.
type Catalog struct {
	ingredients []domain.Ingredient
	byID        map[string]int
	byName      map[string]int
}

// New builds a catalog from raw rows. Rows without an id are skipped, a repeated
// id keeps its first row and a repeated display name resolves to its first row.
func New(rows []domain.IngredientRow) *Catalog {
	c := &Catalog{
		ingredients: make([]domain.Ingredient, 0, len(rows)),
		byID:        make(map[string]int, len(rows)),
		byName:      make(map[string]int, len(rows)),
	}

	for _, row := range rows {
		ing := parseRow(row)
		if ing.ID == "" {
			continue
		}
		if _, dup := c.byID[ing.ID]; dup {
			continue
		}
		idx := len(c.ingredients)
		c.ingredients = append(c.ingredients, ing)
		c.byID[ing.ID] = idx
		if _, dup := c.byName[ing.DisplayName]; !dup {
			c.byName[ing.DisplayName] = idx
		}
	}

	return c
}

func (c *Catalog) Len() int {
	return len(c.ingredients)
}

// Resolve returns value itself when it is a known id, otherwise the id of the
// first ingredient whose display name equals value.
func (c *Catalog) Resolve(value string) (string, bool) {
	if _, ok := c.byID[value]; ok {
		return value, true
	}
	if idx, ok := c.byName[value]; ok {
		return c.ingredients[idx].ID, true
	}
	return "", false
}

func (c *Catalog) Get(id string) (domain.Ingredient, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Ingredient{}, false
	}
	return c.ingredients[idx], true
}

func (c *Catalog) FindByName(name string) (domain.Ingredient, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return domain.Ingredient{}, false
	}
	return c.ingredients[idx], true
}

// IDByName is FindByName reduced to the id, empty when there is no such row.
func (c *Catalog) IDByName(name string) string {
	ing, ok := c.FindByName(name)
	if !ok {
		return ""
	}
	return ing.ID
}

// All returns a copy of every ingredient in catalog order.
func (c *Catalog) All() []domain.Ingredient {
	out := make([]domain.Ingredient, len(c.ingredients))
	copy(out, c.ingredients)
	return out
}

// Names lists display names in catalog order, duplicates included.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.ingredients))
	for _, ing := range c.ingredients {
		out = append(out, ing.DisplayName)
	}
	return out
}

// Suggest returns up to n distinct display names closest to name by edit distance.
func (c *Catalog) Suggest(name string, n int) []string {
	if n <= 0 || len(c.byName) == 0 {
		return nil
	}

	type candidate struct {
		name string
		dist int
		idx  int
	}

	cands := make([]candidate, 0, len(c.byName))
	for dn, idx := range c.byName {
		cands = append(cands, candidate{
			name: dn,
			dist: levenshtein.ComputeDistance(fold.String(name), fold.String(dn)),
			idx:  idx,
		})
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].idx < cands[j].idx
		}
		return cands[i].dist < cands[j].dist
	})

	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, 0, len(cands))
	for _, cand := range cands {
		out = append(out, cand.name)
	}
	return out
}
