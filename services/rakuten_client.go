package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"kisekae_server/config"
	"kisekae_server/models"
)

// ProductSearcher finds marketplace item candidates for a keyword.
type ProductSearcher interface {
	SearchItems(ctx context.Context, keyword string, hits int) ([]models.Product, error)
}

const rakutenSearchURL = "https://app.rakuten.co.jp/services/api/IchibaItem/Search/20220601"

// RakutenClient calls the Rakuten Ichiba item search API.
// https://webservice.rakuten.co.jp/api/ichibaitemsearch/
type RakutenClient struct {
	BaseURL string
	Client  *http.Client
}

func NewRakutenClient() *RakutenClient {
	return &RakutenClient{
		BaseURL: rakutenSearchURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// rakutenSearchResponse is the boundary type for the item search payload.
type rakutenSearchResponse struct {
	Items []struct {
		Item struct {
			ItemName        string `json:"itemName"`
			ItemURL         string `json:"itemUrl"`
			ItemPrice       int    `json:"itemPrice"`
			ShopName        string `json:"shopName"`
			MediumImageURLs []struct {
				ImageURL string `json:"imageUrl"`
			} `json:"mediumImageUrls"`
			SmallImageURLs []struct {
				ImageURL string `json:"imageUrl"`
			} `json:"smallImageUrls"`
		} `json:"Item"`
	} `json:"Items"`
}

// SearchItems returns up to hits candidates for the keyword. An empty
// keyword returns nothing without calling out.
func (c *RakutenClient) SearchItems(ctx context.Context, keyword string, hits int) ([]models.Product, error) {
	if keyword == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("applicationId", config.RakutenAppID())
	params.Set("keyword", keyword)
	params.Set("hits", strconv.Itoa(hits))
	params.Set("imageFlag", "1")
	if affiliateID := config.RakutenAffiliateID(); affiliateID != "" {
		params.Set("affiliateId", affiliateID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rakuten request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rakuten returned status %d", res.StatusCode)
	}

	var payload rakutenSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rakuten response: %w", err)
	}

	products := make([]models.Product, 0, len(payload.Items))
	for _, wrap := range payload.Items {
		item := wrap.Item
		image := ""
		if len(item.MediumImageURLs) > 0 {
			image = item.MediumImageURLs[0].ImageURL
		} else if len(item.SmallImageURLs) > 0 {
			image = item.SmallImageURLs[0].ImageURL
		}
		products = append(products, models.Product{
			Name:  item.ItemName,
			URL:   item.ItemURL,
			Image: image,
			Price: item.ItemPrice,
			Shop:  item.ShopName,
		})
	}

	log.Printf("Rakuten search returned %d items for keyword %q\n", len(products), keyword)
	return products, nil
}
