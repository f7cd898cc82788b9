package main

import (
	"log"
	"os"
	"strings"

	"bhumi_back_end/internal/cart"
	"bhumi_back_end/internal/catalog"
	"bhumi_back_end/internal/config"
	"bhumi_back_end/internal/database"
	"bhumi_back_end/internal/handlers"
	"bhumi_back_end/internal/review"
	"bhumi_back_end/internal/routes"
	"bhumi_back_end/internal/store"
	"bhumi_back_end/internal/wishlist"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	cfg := config.Store()
	log.Printf("✅ Boutique configurée : %s (UPI: %s)", cfg.Name, cfg.UPIID)

	database.ConnectDatabases()
	defer database.CloseScylla()

	cat := loadCatalog()

	kv := store.NewRedisStore(database.Redis)
	h := handlers.New(cfg, cat,
		cart.NewManager(kv),
		wishlist.NewManager(kv),
		review.NewManager(kv, cat),
	)

	r := gin.Default()
	routes.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Bhumi lancé sur le port", port)
	r.Run(":" + port)
}

// loadCatalog charge le catalogue une fois pour toute la vie du processus,
// depuis ScyllaDB ou depuis le fichier JSON historique.
func loadCatalog() catalog.Catalog {
	if strings.ToLower(os.Getenv("CATALOG_SOURCE")) == "scylla" {
		session, err := database.GetProductsSession()
		if err != nil {
			log.Fatalf("❌ Échec accès session catalogue: %v", err)
		}
		cat, err := catalog.LoadScylla(session)
		if err != nil {
			log.Fatalf("❌ Échec chargement catalogue ScyllaDB: %v", err)
		}
		return cat
	}

	path := os.Getenv("CATALOG_FILE")
	if path == "" {
		path = "data/products.json"
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		log.Fatalf("❌ Échec chargement catalogue: %v", err)
	}
	return cat
}
