package review_test

import (
	"context"
	"testing"
	"time"

	"bhumi_back_end/internal/catalog"
	"bhumi_back_end/internal/models"
	"bhumi_back_end/internal/review"
	"bhumi_back_end/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() catalog.Catalog {
	return catalog.NewStatic([]models.Product{
		{
			ID:    "p1",
			Title: "Vase",
			Reviews: []models.Review{
				{Name: "Asha", Rating: 5, Text: "Beautiful!", Date: "2025-11-02"},
				{Name: "Meera", Rating: 4, Text: "Lovely colours.", Date: "2025-11-10"},
			},
		},
		{ID: "p2", Title: "Tote"},
	})
}

func TestEmbeddedReviewsComeFirst(t *testing.T) {
	ctx := context.Background()
	m := review.NewManager(store.NewMemStore(), testCatalog())

	require.NoError(t, m.Submit(ctx, "p1", models.Review{Name: "Ravi", Rating: 3, Text: "Ok"}))
	require.NoError(t, m.Submit(ctx, "p1", models.Review{Name: "Sita", Rating: 5, Text: "Super"}))

	reviews := m.For(ctx, "p1")
	require.Len(t, reviews, 4, "embarqués + locaux")

	// les avis du catalogue précèdent toujours ceux des visiteurs, ordres respectifs conservés
	assert.Equal(t, "Asha", reviews[0].Name)
	assert.Equal(t, "Meera", reviews[1].Name)
	assert.Equal(t, "Ravi", reviews[2].Name)
	assert.Equal(t, "Sita", reviews[3].Name)
}

func TestForProductWithoutReviews(t *testing.T) {
	m := review.NewManager(store.NewMemStore(), testCatalog())
	assert.Empty(t, m.For(context.Background(), "p2"))
}

func TestSubmitDefaultsNameAndDate(t *testing.T) {
	ctx := context.Background()
	m := review.NewManager(store.NewMemStore(), testCatalog())

	require.NoError(t, m.Submit(ctx, "p2", models.Review{Rating: 4}))

	reviews := m.For(ctx, "p2")
	require.Len(t, reviews, 1)
	assert.Equal(t, "Guest", reviews[0].Name)
	assert.Equal(t, time.Now().Format("2006-01-02"), reviews[0].Date)
}

func TestSubmitStoresOutOfRangeRatingAsGiven(t *testing.T) {
	ctx := context.Background()
	m := review.NewManager(store.NewMemStore(), testCatalog())

	// la borne 1-5 est tenue par la couche HTTP, pas par le manager
	require.NoError(t, m.Submit(ctx, "p2", models.Review{Name: "X", Rating: 42}))

	reviews := m.For(ctx, "p2")
	require.Len(t, reviews, 1)
	assert.Equal(t, 42, reviews[0].Rating)
}

func TestReviewsAccumulatePerProduct(t *testing.T) {
	ctx := context.Background()
	m := review.NewManager(store.NewMemStore(), testCatalog())

	require.NoError(t, m.Submit(ctx, "p1", models.Review{Name: "A", Rating: 5}))
	require.NoError(t, m.Submit(ctx, "p2", models.Review{Name: "B", Rating: 2}))

	assert.Len(t, m.For(ctx, "p1"), 3)
	assert.Len(t, m.For(ctx, "p2"), 1)
}

func TestCorruptStoredReviewsFallBackToEmbeddedOnly(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemStore()
	mem.Corrupt(store.ReviewsKey)

	m := review.NewManager(mem, testCatalog())
	assert.Len(t, m.For(ctx, "p1"), 2, "seuls les avis embarqués restent")
}
