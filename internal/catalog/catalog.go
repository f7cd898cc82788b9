// Package catalog expose le catalogue produits en lecture seule. Le catalogue est
// chargé une seule fois au démarrage puis injecté dans les composants qui en ont
// besoin (pricing, avis, handlers) — jamais muté ensuite.
package catalog

import "bhumi_back_end/internal/models"

type Catalog interface {
	Products() []models.Product
	Find(id string) (models.Product, bool)
}

// static : catalogue en mémoire, base des sources fichier/Scylla et des tests.
type static struct {
	products []models.Product
	byID     map[string]models.Product
}

// NewStatic construit un catalogue figé à partir d'une liste de produits.
func NewStatic(products []models.Product) Catalog {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &static{products: products, byID: byID}
}

func (c *static) Products() []models.Product { return c.products }

func (c *static) Find(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}
