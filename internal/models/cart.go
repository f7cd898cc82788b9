package models

// CartItem : une ligne du panier. Titre et prix sont figés au moment de l'ajout —
// un changement de prix au catalogue ne modifie jamais une ligne déjà ajoutée.
type CartItem struct {
	ProductID     string            `json:"productId"`
	Title         string            `json:"title"`
	Price         float64           `json:"price"`
	Qty           int               `json:"qty"`
	Variations    map[string]string `json:"variations,omitempty"`
	Customization string            `json:"customization,omitempty"`
}
