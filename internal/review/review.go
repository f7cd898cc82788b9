// Package review gère les avis produits : ceux embarqués dans le catalogue et
// ceux rédigés localement, fusionnés à la lecture. Un avis enregistré n'est
// jamais modifié ni supprimé.
package review

import (
	"context"
	"time"

	"bhumi_back_end/internal/catalog"
	"bhumi_back_end/internal/models"
	"bhumi_back_end/internal/store"
)

// Nom d'auteur par défaut quand le champ est laissé vide.
const defaultAuthor = "Guest"

type Manager struct {
	store   store.Store
	catalog catalog.Catalog
}

func NewManager(s store.Store, c catalog.Catalog) *Manager {
	return &Manager{store: s, catalog: c}
}

// For retourne les avis d'un produit : d'abord les avis embarqués du catalogue
// dans leur ordre d'origine, puis les avis locaux dans leur ordre de création.
// Cet ordre est contractuel — les avis « officiels » précèdent toujours ceux des
// visiteurs.
func (m *Manager) For(ctx context.Context, productID string) []models.Review {
	reviews := []models.Review{}
	if p, ok := m.catalog.Find(productID); ok {
		reviews = append(reviews, p.Reviews...)
	}

	local := m.readLocal(ctx)
	reviews = append(reviews, local[productID]...)
	return reviews
}

// Submit ajoute un avis local pour un produit. Le nom vide devient Guest et la
// date vide devient la date du jour. La note est stockée telle quelle : la borne
// 1-5 est tenue par la couche de présentation.
func (m *Manager) Submit(ctx context.Context, productID string, r models.Review) error {
	if r.Name == "" {
		r.Name = defaultAuthor
	}
	if r.Date == "" {
		r.Date = time.Now().Format("2006-01-02")
	}

	local := m.readLocal(ctx)
	local[productID] = append(local[productID], r)
	return m.store.Write(ctx, store.ReviewsKey, local)
}

func (m *Manager) readLocal(ctx context.Context) map[string][]models.Review {
	local := map[string][]models.Review{}
	m.store.Read(ctx, store.ReviewsKey, &local)
	return local
}
