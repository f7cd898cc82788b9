package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"
)

// --- Variables Globales ---
var (
	Redis  *redis.Client
	scylla *gocql.Session
)

// ConnectDatabases initialise les connexions nécessaires au démarrage.
// ScyllaDB n'est ouvert que si le catalogue est configuré dessus (CATALOG_SOURCE=scylla).
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectRedis(ctx)

	if strings.ToLower(os.Getenv("CATALOG_SOURCE")) == "scylla" {
		if err := connectScylla(); err != nil {
			log.Fatalf("❌ Échec initialisation ScyllaDB: %v", err)
		}
	}

	log.Println("✅ Toutes les bases de données sont connectées")
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// =============================================
// SCYLLA DB (catalogue produits, lecture seule)
// =============================================
func connectScylla() error {
	keyspace := os.Getenv("SCYLLA_KS_PRODUCTS_KEYSPACE")
	if keyspace == "" {
		return fmt.Errorf("SCYLLA_KS_PRODUCTS_KEYSPACE non configuré")
	}

	cluster := gocql.NewCluster(strings.Split(os.Getenv("SCYLLA_HOSTS"), ",")...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 4
	cluster.ReconnectInterval = 1 * time.Second
	if user := os.Getenv("SCYLLA_KS_PRODUCTS_ROLE"); user != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: user,
			Password: os.Getenv("SCYLLA_KS_PRODUCTS_PASSWORD"),
		}
	}
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	session, err := cluster.CreateSession()
	if err != nil {
		return fmt.Errorf("erreur création session pour %s: %v", keyspace, err)
	}

	scylla = session
	log.Printf("✅ Nouvelle session ScyllaDB pour keyspace '%s'", keyspace)
	return nil
}

// GetProductsSession retourne la session du keyspace products
func GetProductsSession() (*gocql.Session, error) {
	if scylla == nil {
		return nil, fmt.Errorf("session ScyllaDB non initialisée")
	}
	return scylla, nil
}

// CloseScylla ferme la session ScyllaDB si elle est ouverte
func CloseScylla() {
	if scylla != nil {
		scylla.Close()
		log.Println("🔌 Session ScyllaDB fermée")
	}
}
