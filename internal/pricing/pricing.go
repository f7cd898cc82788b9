// Package pricing calcule les montants d'une commande : sous-total, frais
// d'emballage fixes, frais de livraison basés sur la plus grande dimension des
// articles. Fonctions pures, déterministes, sans effet de bord.
package pricing

import (
	"bhumi_back_end/internal/catalog"
	"bhumi_back_end/internal/config"
	"bhumi_back_end/internal/models"
)

// Quote : le détail des montants affichés à l'acheteur au moment du paiement.
type Quote struct {
	Subtotal       float64 `json:"subtotal"`
	PackingCharge  float64 `json:"packingCharge"`
	MaxDimension   float64 `json:"maxDimension"`
	DeliveryBase   float64 `json:"deliveryBase"`
	DeliveryCharge float64 `json:"deliveryCharge"`
	Total          float64 `json:"total"`
}

// Compute calcule le devis complet pour un instantané du panier.
// Aucun montant retourné ne peut être négatif ; un champ numérique manquant
// vaut 0 au lieu de propager une valeur invalide.
func Compute(cart []models.CartItem, cat catalog.Catalog, cfg config.StoreConfig) Quote {
	maxDim := MaxDimension(cart, cat)
	q := Quote{
		Subtotal:       Subtotal(cart),
		PackingCharge:  clamp(cfg.PackingCharge),
		MaxDimension:   maxDim,
		DeliveryBase:   clamp(cfg.DeliveryBase),
		DeliveryCharge: clamp(maxDim + cfg.DeliveryBase),
	}
	q.Total = q.Subtotal + q.PackingCharge + q.DeliveryCharge
	return q
}

// Subtotal = Σ prix × quantité sur les lignes du panier. Le prix est celui figé
// à l'ajout, jamais relu depuis le catalogue.
func Subtotal(cart []models.CartItem) float64 {
	var sum float64
	for _, it := range cart {
		sum += clamp(it.Price) * float64(max(it.Qty, 0))
	}
	return sum
}

// MaxDimension retourne la plus grande valeur d'axe (largeur, hauteur ou
// profondeur) parmi les produits du panier. La quantité ne joue pas : la
// dimension est une propriété physique unitaire du produit. Panier vide ⇒ 0.
// Une ligne dont le produit n'est plus résolvable au catalogue compte pour 0
// — on ne livre pas de dimension pour un produit qu'on ne connaît plus.
func MaxDimension(cart []models.CartItem, cat catalog.Catalog) float64 {
	var maxDim float64
	for _, it := range cart {
		p, ok := cat.Find(it.ProductID)
		if !ok {
			continue
		}
		for _, axis := range []float64{p.Dimensions.Width, p.Dimensions.Height, p.Dimensions.Depth} {
			if axis > maxDim {
				maxDim = axis
			}
		}
	}
	return maxDim
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
