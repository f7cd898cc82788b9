package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// StoreConfig : identité et frais de la boutique. Valeur immuable, construite une
// fois au démarrage puis passée explicitement au moteur de prix et au générateur
// de lien UPI.
type StoreConfig struct {
	Name          string  // nom affiché (paramètre pn du lien UPI)
	UPIID         string  // identifiant du collecteur (paramètre pa)
	PackingCharge float64 // frais d'emballage fixes, indépendants du panier
	DeliveryBase  float64 // base fixe des frais de livraison
}

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Store construit la configuration boutique depuis l'environnement, avec les
// valeurs par défaut de Handmade By Bhumi.
func Store() StoreConfig {
	return StoreConfig{
		Name:          envString("STORE_NAME", "Handmade By Bhumi"),
		UPIID:         envString("STORE_UPI_ID", "bhumikhokhani-1@okdfcbank"),
		PackingCharge: envFloat("STORE_PACKING_CHARGE", 50),
		DeliveryBase:  envFloat("STORE_DELIVERY_BASE", 200),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("⚠️  Valeur invalide pour %s (%q) — valeur par défaut %.2f utilisée", key, v, fallback)
		return fallback
	}
	return f
}
