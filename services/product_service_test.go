package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisekae_server/models"
	"kisekae_server/rules"
)

func TestGetProductsForLayersMergesInKeywordOrder(t *testing.T) {
	kwTrainer := rules.MapLayerToKeyword(rules.AgeChild, "トレーナー")
	kwDown := rules.MapLayerToKeyword(rules.AgeChild, "ダウンジャケット")
	require.NotEqual(t, kwTrainer, kwDown)

	searcher := &stubSearcher{results: map[string][]models.Product{
		kwTrainer: {
			{Name: "トレーナーA", URL: "https://example.com/a"},
			{Name: "トレーナーB", URL: "https://example.com/b"},
		},
		kwDown: {
			{Name: "ダウンC", URL: "https://example.com/c"},
		},
	}}
	ps := &ProductService{Searcher: searcher}

	products := ps.GetProductsForLayers(context.Background(), rules.AgeChild, []string{"トレーナー", "ダウンジャケット"}, "user-1")

	require.Len(t, products, 3)
	assert.Equal(t, "https://example.com/a", products[0].URL)
	assert.Equal(t, "https://example.com/b", products[1].URL)
	assert.Equal(t, "https://example.com/c", products[2].URL)
}

func TestGetProductsForLayersDeduplicatesByURL(t *testing.T) {
	kwTrainer := rules.MapLayerToKeyword(rules.AgeChild, "トレーナー")
	kwDown := rules.MapLayerToKeyword(rules.AgeChild, "ダウンジャケット")

	shared := models.Product{Name: "兼用アイテム", URL: "https://example.com/shared"}
	searcher := &stubSearcher{results: map[string][]models.Product{
		kwTrainer: {shared, {Name: "トレーナーA", URL: "https://example.com/a"}},
		kwDown:    {shared},
	}}
	ps := &ProductService{Searcher: searcher}

	products := ps.GetProductsForLayers(context.Background(), rules.AgeChild, []string{"トレーナー", "ダウンジャケット"}, "user-1")

	require.Len(t, products, 2)
	assert.Equal(t, "https://example.com/shared", products[0].URL)
	assert.Equal(t, "https://example.com/a", products[1].URL)
}

func TestGetProductsForLayersDeduplicatesKeywords(t *testing.T) {
	// 同じキーワードに解決される複数レイヤーは一度だけ検索する
	kw := rules.MapLayerToKeyword(rules.AgeChild, "半袖Tシャツ")
	searcher := &stubSearcher{results: map[string][]models.Product{
		kw: {{Name: "Tシャツ", URL: "https://example.com/t"}},
	}}
	ps := &ProductService{Searcher: searcher}

	products := ps.GetProductsForLayers(context.Background(), rules.AgeChild, []string{"半袖Tシャツ", "半袖Tシャツ"}, "user-1")

	require.Len(t, products, 1)
}

func TestGetProductsForLayersSurvivesSearchFailure(t *testing.T) {
	kwTrainer := rules.MapLayerToKeyword(rules.AgeChild, "トレーナー")
	kwDown := rules.MapLayerToKeyword(rules.AgeChild, "ダウンジャケット")

	searcher := &stubSearcher{
		results: map[string][]models.Product{
			kwDown: {{Name: "ダウンC", URL: "https://example.com/c"}},
		},
		failOn: map[string]bool{kwTrainer: true},
	}
	ps := &ProductService{Searcher: searcher}

	products := ps.GetProductsForLayers(context.Background(), rules.AgeChild, []string{"トレーナー", "ダウンジャケット"}, "user-1")

	require.Len(t, products, 1)
	assert.Equal(t, "https://example.com/c", products[0].URL)
}
