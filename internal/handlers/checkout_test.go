package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bhumi_back_end/internal/cart"
	"bhumi_back_end/internal/catalog"
	"bhumi_back_end/internal/config"
	"bhumi_back_end/internal/handlers"
	"bhumi_back_end/internal/models"
	"bhumi_back_end/internal/review"
	"bhumi_back_end/internal/routes"
	"bhumi_back_end/internal/store"
	"bhumi_back_end/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.StoreConfig{
		Name:          "My Shop",
		UPIID:         "shop@bank",
		PackingCharge: 50,
		DeliveryBase:  200,
	}
	cat := catalog.NewStatic([]models.Product{
		{
			ID: "p1", Title: "Vase", Price: 500,
			Dimensions: models.Dimensions{Width: 30, Height: 20, Depth: 10},
			Variations: []models.VariationGroup{{Name: "Finish", Options: []string{"Matte", "Glossy"}}},
		},
	})
	kv := store.NewMemStore()

	h := handlers.New(cfg, cat,
		cart.NewManager(kv),
		wishlist.NewManager(kv),
		review.NewManager(kv, cat),
	)

	r := gin.New()
	routes.RegisterRoutes(r, h)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutFlow(t *testing.T) {
	r := testRouter()

	// ajout au panier (×2)
	w := do(r, "POST", "/api/cart/add", `{"productId":"p1","qty":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// devis
	w = do(r, "GET", "/api/checkout/quote", "")
	require.Equal(t, http.StatusOK, w.Code)

	var quoteResp struct {
		Items []models.CartItem `json:"items"`
		Quote struct {
			Subtotal       float64 `json:"subtotal"`
			DeliveryCharge float64 `json:"deliveryCharge"`
			Total          float64 `json:"total"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quoteResp))
	require.Len(t, quoteResp.Items, 1)
	assert.Equal(t, "Matte", quoteResp.Items[0].Variations["Finish"], "première option par défaut")
	assert.Equal(t, 1000.0, quoteResp.Quote.Subtotal)
	assert.Equal(t, 230.0, quoteResp.Quote.DeliveryCharge)
	assert.Equal(t, 1280.0, quoteResp.Quote.Total)

	// paiement sans adresse → refusé par la couche de présentation
	w = do(r, "POST", "/api/checkout/pay", `{"name":"Asha"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// paiement avec adresse
	w = do(r, "POST", "/api/checkout/pay", `{"name":"Asha","address":"12 MG Road, Pune"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payResp struct {
		OrderID string `json:"order_id"`
		UPILink string `json:"upi_link"`
		QR      string `json:"qr"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payResp))
	assert.NotEmpty(t, payResp.OrderID)
	assert.Contains(t, payResp.UPILink, "am=1280.00")
	assert.Contains(t, payResp.UPILink, "pa=shop@bank")
	assert.NotContains(t, payResp.UPILink, " ")
	assert.True(t, strings.HasPrefix(payResp.QR, "data:image/png;base64,"))

	// l'acheteur confirme → panier vidé
	w = do(r, "POST", "/api/checkout/confirm", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, "GET", "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cartResp struct {
		Items []models.CartItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
	assert.Empty(t, cartResp.Items)
}

func TestPayOnEmptyCartIsRejected(t *testing.T) {
	r := testRouter()

	w := do(r, "POST", "/api/checkout/pay", `{"name":"Asha","address":"12 MG Road"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteOnEmptyCartStillPrices(t *testing.T) {
	r := testRouter()

	w := do(r, "GET", "/api/checkout/quote", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Quote struct {
			Total float64 `json:"total"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 250.0, resp.Quote.Total, "emballage + livraison de base")
}

func TestAddToCartRejectsBadQuantity(t *testing.T) {
	r := testRouter()

	w := do(r, "POST", "/api/cart/add", `{"productId":"p1","qty":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "POST", "/api/cart/add", `{"productId":"p1","qty":-2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReviewBindingConstrainsRating(t *testing.T) {
	r := testRouter()

	w := do(r, "POST", "/api/products/p1/reviews", `{"rating":6,"text":"trop"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "POST", "/api/products/p1/reviews", `{"rating":5,"text":"parfait"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}
