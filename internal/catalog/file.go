package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"bhumi_back_end/internal/models"
)

// LoadFile charge le catalogue depuis un fichier JSON de la forme
// {"products": [...]} — même format que le data/products.json historique.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture catalogue %s: %w", path, err)
	}

	var payload struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("décodage catalogue %s: %w", path, err)
	}

	log.Printf("✅ Catalogue chargé depuis %s (%d produits)", path, len(payload.Products))
	return NewStatic(payload.Products), nil
}
