package handlers

import (
	"log"
	"net/http"

	"bhumi_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetWishlist retourne la wishlist avec les fiches produit résolues
func (h *Handler) GetWishlist(c *gin.Context) {
	ids := h.Wishlist.IDs(c.Request.Context())

	// Un identifiant qui ne résout plus au catalogue est simplement ignoré à l'affichage
	items := []models.Product{}
	for _, id := range ids {
		if p, ok := h.Catalog.Find(id); ok {
			items = append(items, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ids":   ids,
		"items": items,
	})
}

//
// ⭐ POST /api/wishlist/toggle
//
func (h *Handler) ToggleWishlist(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	added, err := h.Wishlist.Toggle(c.Request.Context(), input.ProductID)
	if err != nil {
		log.Printf("❌ Erreur persistance wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour wishlist"})
		return
	}

	if added {
		log.Printf("⭐ Produit %s ajouté à la wishlist", input.ProductID)
	} else {
		log.Printf("🗑️ Produit %s retiré de la wishlist", input.ProductID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Wishlist mise à jour",
		"product_id": input.ProductID,
		"added":      added,
	})
}
