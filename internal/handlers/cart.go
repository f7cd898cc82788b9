package handlers

import (
	"log"
	"net/http"

	"bhumi_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetCart retourne le panier courant
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.Cart.Items(c.Request.Context())})
}

//
// 🛒 POST /api/cart/add
//
func (h *Handler) AddToCart(c *gin.Context) {
	var input struct {
		ProductID     string            `json:"productId" binding:"required"`
		Qty           int               `json:"qty"`
		Variations    map[string]string `json:"variations"`
		Customization string            `json:"customization"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Qty < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	// 🧩 Titre et prix figés depuis le catalogue au moment de l'ajout
	p, ok := h.Catalog.Find(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	// Une sélection par groupe de variations : la première option par défaut
	selections := map[string]string{}
	for _, group := range p.Variations {
		if chosen, ok := input.Variations[group.Name]; ok && chosen != "" {
			selections[group.Name] = chosen
		} else if len(group.Options) > 0 {
			selections[group.Name] = group.Options[0]
		}
	}

	item := models.CartItem{
		ProductID:     p.ID,
		Title:         p.Title,
		Price:         p.Price,
		Qty:           input.Qty,
		Variations:    selections,
		Customization: input.Customization,
	}

	if err := h.Cart.Add(c.Request.Context(), item); err != nil {
		log.Printf("❌ Erreur persistance panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'ajout au panier"})
		return
	}

	items := h.Cart.Items(c.Request.Context())
	log.Printf("🛒 Produit %s ajouté au panier (×%d)", p.ID, input.Qty)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   items,
	})
}

//
// 🧹 DELETE /api/cart
//
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.Cart.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier vidé avec succès",
	})
}
