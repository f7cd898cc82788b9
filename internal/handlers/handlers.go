// Package handlers : la couche de présentation HTTP. Les handlers se contentent
// de binder le JSON, d'appeler les managers et de rendre la réponse — toute la
// logique vit dans les packages du cœur.
package handlers

import (
	"bhumi_back_end/internal/cart"
	"bhumi_back_end/internal/catalog"
	"bhumi_back_end/internal/config"
	"bhumi_back_end/internal/review"
	"bhumi_back_end/internal/wishlist"
)

type Handler struct {
	Config   config.StoreConfig
	Catalog  catalog.Catalog
	Cart     *cart.Manager
	Wishlist *wishlist.Manager
	Reviews  *review.Manager
}

func New(cfg config.StoreConfig, cat catalog.Catalog, c *cart.Manager, w *wishlist.Manager, r *review.Manager) *Handler {
	return &Handler{Config: cfg, Catalog: cat, Cart: c, Wishlist: w, Reviews: r}
}
