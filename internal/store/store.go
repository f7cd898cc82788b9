// Package store fournit la persistance clé/valeur JSON de la boutique : panier,
// wishlist et avis locaux. Les clés sont versionnées (suffixe _v1) pour pouvoir
// faire cohabiter un futur changement de schéma.
package store

import "context"

// Clés persistées. Reprennent le versionnage historique de la boutique.
const (
	CartKey     = "hb_cart_v1"
	WishlistKey = "hb_wishlist_v1"
	ReviewsKey  = "hb_reviews_v1"
)

// Store : capacité de persistance injectée dans les managers, pour pouvoir
// substituer une implémentation en mémoire dans les tests.
//
// Read ne remonte jamais d'erreur pour une clé absente ou une valeur corrompue :
// dest est alors laissé à sa valeur par défaut (collection vide côté appelant).
// Write doit remonter un échec d'écriture — une mutation non persistée ne doit
// pas passer silencieusement.
type Store interface {
	Read(ctx context.Context, key string, dest any)
	Write(ctx context.Context, key string, value any) error
	Clear(ctx context.Context, key string) error
}
