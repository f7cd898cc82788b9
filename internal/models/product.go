package models

// Dimensions physiques d'un produit (unité libre mais cohérente sur toute la boutique)
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// VariationGroup : un groupe d'options au choix (ex: "Couleur" → ["Rouge", "Bleu"])
type VariationGroup struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type Product struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Images      []string         `json:"images"`
	Dimensions  Dimensions       `json:"dimensions"`
	Variations  []VariationGroup `json:"variations,omitempty"`
	Related     []string         `json:"related,omitempty"`
	Reviews     []Review         `json:"reviews,omitempty"` // avis embarqués dans le catalogue
}
