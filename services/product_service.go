package services

import (
	"context"
	"log"
	"sync"

	"kisekae_server/models"
	"kisekae_server/rules"
)

// defaultHitsPerKeyword balances result diversity against latency.
const defaultHitsPerKeyword = 3

// ProductService turns recommended clothing layers into marketplace
// search keywords and fetches product candidates.
type ProductService struct {
	Searcher ProductSearcher
}

// GetProductsForLayers maps each layer to an age-adjusted keyword,
// deduplicates the keywords, issues the searches concurrently and merges
// the results in keyword order, deduplicated by product URL. Search
// failures are logged and contribute nothing; the caller's request never
// fails because of them.
func (ps *ProductService) GetProductsForLayers(ctx context.Context, group rules.AgeGroup, layers []string, userID string) []models.Product {
	seen := map[string]bool{}
	var keywords []string
	for _, layer := range layers {
		keyword := rules.MapLayerToKeyword(group, layer)
		if keyword == "" || seen[keyword] {
			continue
		}
		seen[keyword] = true
		keywords = append(keywords, keyword)
	}

	results := make([][]models.Product, len(keywords))
	var wg sync.WaitGroup
	for i, keyword := range keywords {
		wg.Add(1)
		go func(i int, keyword string) {
			defer wg.Done()
			items, err := ps.Searcher.SearchItems(ctx, keyword, defaultHitsPerKeyword)
			if err != nil {
				log.Printf("Product search failed for keyword %q (userId=%s): %v\n", keyword, userID, err)
				return
			}
			results[i] = items
		}(i, keyword)
	}
	wg.Wait()

	// URL を安定キーとして重複商品を排除（タイトルより衝突が少ない）
	merged := []models.Product{}
	seenURL := map[string]bool{}
	for _, items := range results {
		for _, item := range items {
			if seenURL[item.URL] {
				continue
			}
			seenURL[item.URL] = true
			merged = append(merged, item)
		}
	}

	log.Printf("Products fetched: userId=%s count=%d\n", userID, len(merged))
	return merged
}
