package handlers

import (
	"log"
	"net/http"

	"bhumi_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetProductReviews récupère les avis d'un produit : avis embarqués du catalogue
// d'abord, avis des visiteurs ensuite
func (h *Handler) GetProductReviews(c *gin.Context) {
	productID := c.Param("id")

	if _, ok := h.Catalog.Find(productID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	reviews := h.Reviews.For(c.Request.Context(), productID)

	// Calculer la moyenne
	var totalRating int
	for _, r := range reviews {
		totalRating += r.Rating
	}
	var averageRating float64
	if len(reviews) > 0 {
		averageRating = float64(totalRating) / float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"total_reviews":  len(reviews),
		"average_rating": averageRating,
	})
}

// CreateReview enregistre un avis visiteur sur un produit
func (h *Handler) CreateReview(c *gin.Context) {
	productID := c.Param("id")

	var req struct {
		Name   string `json:"name"`
		Rating int    `json:"rating" binding:"required,min=1,max=5"`
		Text   string `json:"text"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if _, ok := h.Catalog.Find(productID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	review := models.Review{
		Name:   req.Name,
		Rating: req.Rating,
		Text:   req.Text,
	}

	if err := h.Reviews.Submit(c.Request.Context(), productID, review); err != nil {
		log.Printf("❌ Erreur création avis: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création avis"})
		return
	}

	log.Printf("⭐ Avis créé pour le produit %s (note: %d/5)", productID, req.Rating)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Avis créé avec succès",
	})
}
