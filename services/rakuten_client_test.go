package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchItemsDecodesProducts(t *testing.T) {
	t.Setenv("RAKUTEN_APP_ID", "app-id")
	t.Setenv("RAKUTEN_AFFILIATE_ID", "aff-id")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "app-id", q.Get("applicationId"))
		assert.Equal(t, "aff-id", q.Get("affiliateId"))
		assert.Equal(t, "ベビー ダウン アウター", q.Get("keyword"))
		assert.Equal(t, "3", q.Get("hits"))
		assert.Equal(t, "1", q.Get("imageFlag"))
		w.Write([]byte(`{
			"Items": [
				{"Item": {
					"itemName": "ベビーダウン",
					"itemUrl": "https://item.rakuten.co.jp/a",
					"itemPrice": 3980,
					"shopName": "こどもや",
					"mediumImageUrls": [{"imageUrl": "https://img.example.com/m.jpg"}],
					"smallImageUrls": [{"imageUrl": "https://img.example.com/s.jpg"}]
				}},
				{"Item": {
					"itemName": "ベビーアウター",
					"itemUrl": "https://item.rakuten.co.jp/b",
					"itemPrice": 2480,
					"shopName": "こどもや",
					"smallImageUrls": [{"imageUrl": "https://img.example.com/s2.jpg"}]
				}}
			]
		}`))
	}))
	defer server.Close()

	client := &RakutenClient{BaseURL: server.URL, Client: server.Client()}
	products, err := client.SearchItems(context.Background(), "ベビー ダウン アウター", 3)
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "ベビーダウン", products[0].Name)
	assert.Equal(t, 3980, products[0].Price)
	// 中サイズ画像を優先し、無ければ小サイズへフォールバック
	assert.Equal(t, "https://img.example.com/m.jpg", products[0].Image)
	assert.Equal(t, "https://img.example.com/s2.jpg", products[1].Image)
}

func TestSearchItemsEmptyKeyword(t *testing.T) {
	client := &RakutenClient{BaseURL: "http://invalid.invalid", Client: http.DefaultClient}

	products, err := client.SearchItems(context.Background(), "", 3)
	require.NoError(t, err)
	assert.Nil(t, products)
}

func TestSearchItemsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := &RakutenClient{BaseURL: server.URL, Client: server.Client()}
	_, err := client.SearchItems(context.Background(), "キッズ トレーナー", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
