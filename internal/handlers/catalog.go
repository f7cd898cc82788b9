package handlers

import (
	"math/rand"
	"net/http"

	"bhumi_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetProducts liste tout le catalogue
func (h *Handler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.Catalog.Products()})
}

// GetProduct retourne la fiche d'un produit avec ses produits associés résolus
func (h *Handler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	p, ok := h.Catalog.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": p,
		"related": h.relatedProducts(p),
	})
}

// relatedProducts résout les produits associés d'une fiche. Si la fiche n'en
// déclare aucun, on en pioche jusqu'à 5 au hasard parmi le reste du catalogue.
func (h *Handler) relatedProducts(p models.Product) []models.Product {
	ids := p.Related
	if len(ids) == 0 {
		others := []models.Product{}
		for _, other := range h.Catalog.Products() {
			if other.ID != p.ID {
				others = append(others, other)
			}
		}
		rand.Shuffle(len(others), func(i, j int) {
			others[i], others[j] = others[j], others[i]
		})
		if len(others) > 5 {
			others = others[:5]
		}
		return others
	}

	related := []models.Product{}
	for _, id := range ids {
		if rp, ok := h.Catalog.Find(id); ok {
			related = append(related, rp)
		}
	}
	return related
}
