// Package wishlist gère la liste d'envies : un ensemble d'identifiants produit
// sans doublon, ordre d'insertion conservé pour la stabilité d'affichage.
package wishlist

import (
	"context"

	"bhumi_back_end/internal/store"
)

type Manager struct {
	store store.Store
}

func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// Toggle est la seule mutation : retire l'identifiant s'il est présent, l'ajoute
// sinon. Deux Toggle successifs ramènent la liste à son état initial.
// Retourne true si le produit vient d'être ajouté.
func (m *Manager) Toggle(ctx context.Context, productID string) (bool, error) {
	ids := m.IDs(ctx)

	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			return false, m.store.Write(ctx, store.WishlistKey, ids)
		}
	}

	ids = append(ids, productID)
	return true, m.store.Write(ctx, store.WishlistKey, ids)
}

// IDs retourne les identifiants de la wishlist, vide si jamais écrite.
func (m *Manager) IDs(ctx context.Context) []string {
	ids := []string{}
	m.store.Read(ctx, store.WishlistKey, &ids)
	return ids
}
