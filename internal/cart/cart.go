// Package cart gère le panier : une séquence ordonnée de lignes, en ajout pur.
// Pas de fusion de lignes identiques, pas de retrait unitaire — le parcours de
// commande est ajouter, payer, vider.
package cart

import (
	"context"

	"bhumi_back_end/internal/models"
	"bhumi_back_end/internal/store"
)

type Manager struct {
	store store.Store
}

func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// Add ajoute une ligne en fin de panier. Aucune validation ici : l'existence du
// produit et la borne de quantité sont du ressort de l'appelant.
func (m *Manager) Add(ctx context.Context, item models.CartItem) error {
	items := m.Items(ctx)
	items = append(items, item)
	return m.store.Write(ctx, store.CartKey, items)
}

// Items retourne le panier courant, vide si jamais écrit.
func (m *Manager) Items(ctx context.Context) []models.CartItem {
	items := []models.CartItem{}
	m.store.Read(ctx, store.CartKey, &items)
	return items
}

// Clear supprime complètement la clé : la lecture suivante retourne un panier vide.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Clear(ctx, store.CartKey)
}
