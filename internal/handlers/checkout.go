package handlers

import (
	"fmt"
	"log"
	"net/http"

	"bhumi_back_end/internal/payment"
	"bhumi_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetQuote retourne le panier et le détail des montants. Un panier vide est
// quand même chiffré (emballage + livraison de base) plutôt que refusé.
func (h *Handler) GetQuote(c *gin.Context) {
	items := h.Cart.Items(c.Request.Context())
	quote := pricing.Compute(items, h.Catalog, h.Config)

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"quote": quote,
	})
}

//
// 💳 POST /api/checkout/pay
//
func (h *Handler) Pay(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address" binding:"required"`
		Note    string `json:"note"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse de livraison requise"})
		return
	}

	items := h.Cart.Items(c.Request.Context())
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	if req.Name == "" {
		req.Name = "Customer"
	}

	quote := pricing.Compute(items, h.Catalog, h.Config)

	orderID := uuid.New().String()
	tn := fmt.Sprintf("Order from %s - %s", h.Config.Name, req.Name)
	link := payment.BuildUPILink(h.Config.UPIID, h.Config.Name, quote.Total, tn)

	qr, err := payment.QRDataURL(link)
	if err != nil {
		log.Printf("⚠️ Erreur génération QR: %v", err)
		// le lien seul suffit pour payer, on ne bloque pas la commande
	}

	log.Printf("💳 Intention de paiement %s créée (%.2f) pour %s", orderID, quote.Total, req.Name)

	c.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"upi_link": link,
		"qr":       qr,
		"upi_id":   h.Config.UPIID,
		"quote":    quote,
	})
}

// ConfirmPayment : l'acheteur déclare avoir payé, on vide le panier. Aucune
// vérification possible côté boutique — le paiement se confirme hors système.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	if err := h.Cart.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	log.Println("✅ Paiement déclaré, panier vidé")

	c.JSON(http.StatusOK, gin.H{
		"message": "Merci ! Votre commande sera préparée après vérification du paiement.",
	})
}
