package upload

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testGateway(baseURL string) *cloudinaryGateway {
	return &cloudinaryGateway{
		cloudName:  "demo",
		apiKey:     "key123",
		apiSecret:  "shhh",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestNewCloudinaryGateway(t *testing.T) {
	g, ok := NewCloudinaryGateway("demo", "key123", "shhh").(*cloudinaryGateway)

	assert.True(t, ok)
	assert.Equal(t, "demo", g.cloudName)
	assert.Equal(t, "key123", g.apiKey)
	assert.Equal(t, "shhh", g.apiSecret)
	assert.Equal(t, cloudinaryBaseURL, g.baseURL)
}

func TestGateway_Signature(t *testing.T) {
	g := testGateway("")

	got := g.signature("products", 1700000000)

	sum := sha1.Sum([]byte("folder=products&timestamp=1700000000shhh"))
	assert.Equal(t, hex.EncodeToString(sum[:]), got)
}

func TestGateway_UploadImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/demo/image/upload", r.URL.Path)
			assert.NoError(t, r.ParseMultipartForm(1<<20))

			assert.Equal(t, "key123", r.FormValue("api_key"))
			assert.Equal(t, "products", r.FormValue("folder"))
			assert.NotEmpty(t, r.FormValue("timestamp"))
			assert.NotEmpty(t, r.FormValue("signature"))

			_, header, err := r.FormFile("file")
			assert.NoError(t, err)
			assert.Equal(t, "mug.jpg", header.Filename)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"secure_url": "https://res.cloudinary.com/demo/image/upload/v1/products/mug.jpg",
				"public_id": "products/mug",
				"width": 800,
				"height": 600
			}`))
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		res, err := g.UploadImage(context.Background(), "mug.jpg", strings.NewReader("fake image bytes"), "products")

		assert.NoError(t, err)
		assert.Equal(t, "products/mug", res.PublicID)
		assert.Equal(t, 800, res.Width)
		assert.Contains(t, res.URL, "res.cloudinary.com")
	})

	t.Run("Upstream error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Invalid signature"}}`))
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		_, err := g.UploadImage(context.Background(), "mug.jpg", strings.NewReader("x"), "products")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid signature")
	})
}
