package catalog

import (
	"encoding/json"
	"fmt"
	"log"

	"bhumi_back_end/internal/models"

	"github.com/gocql/gocql"
)

// LoadScylla charge tout le catalogue depuis la table products du keyspace
// produits. Variations et avis embarqués sont stockés en colonnes JSON texte.
// Un seul scan au démarrage : le catalogue reste figé ensuite.
func LoadScylla(session *gocql.Session) (Catalog, error) {
	iter := session.Query(`
		SELECT product_id, title, description, price, images,
		       dim_width, dim_height, dim_depth,
		       variations_json, related, reviews_json
		FROM products
	`).Iter()

	var products []models.Product
	var (
		id, title, description      string
		price                       float64
		images, related             []string
		width, height, depth        float64
		variationsJSON, reviewsJSON string
	)

	for iter.Scan(&id, &title, &description, &price, &images,
		&width, &height, &depth, &variationsJSON, &related, &reviewsJSON) {

		p := models.Product{
			ID:          id,
			Title:       title,
			Description: description,
			Price:       price,
			Images:      images,
			Dimensions:  models.Dimensions{Width: width, Height: height, Depth: depth},
			Related:     related,
		}
		if variationsJSON != "" {
			if err := json.Unmarshal([]byte(variationsJSON), &p.Variations); err != nil {
				log.Printf("⚠️ Variations illisibles pour le produit %s: %v", id, err)
			}
		}
		if reviewsJSON != "" {
			if err := json.Unmarshal([]byte(reviewsJSON), &p.Reviews); err != nil {
				log.Printf("⚠️ Avis embarqués illisibles pour le produit %s: %v", id, err)
			}
		}
		products = append(products, p)

		// Scan réutilise les mêmes variables : remise à zéro des slices
		images, related = nil, nil
		variationsJSON, reviewsJSON = "", ""
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("erreur lecture catalogue ScyllaDB: %v", err)
	}

	log.Printf("✅ Catalogue chargé depuis ScyllaDB (%d produits)", len(products))
	return NewStatic(products), nil
}
