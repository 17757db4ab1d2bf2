package diet

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mairapenna/nutriplan_backend/config"
)

// FoodProduct is a search hit with per-100g macros, ready to prefill a
// plan item.
type FoodProduct struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// FoodClient queries the OpenFoodFacts public search API.
type FoodClient struct {
	http *resty.Client
}

type searchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
		Nutriments  struct {
			EnergyKcal100g float64 `json:"energy-kcal_100g"`
			Proteins100g   float64 `json:"proteins_100g"`
			Carbs100g      float64 `json:"carbohydrates_100g"`
			Fat100g        float64 `json:"fat_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

func NewFoodClient(cfg config.FoodDataConfig) *FoodClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetHeader("User-Agent", "nutriplan_backend/1.0")
	return &FoodClient{http: client}
}

// Search returns up to 10 matches. Transport or decode failures surface as
// an error with no partial results; callers treat that as an empty search.
func (c *FoodClient) Search(ctx context.Context, query string) ([]FoodProduct, error) {
	var body searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search_terms":  query,
			"search_simple": "1",
			"action":        "process",
			"json":          "1",
			"page_size":     "10",
		}).
		SetResult(&body).
		Get("/cgi/search.pl")
	if err != nil {
		return nil, fmt.Errorf("food search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("food search: status %d", resp.StatusCode())
	}

	out := make([]FoodProduct, 0, len(body.Products))
	for _, p := range body.Products {
		if p.ProductName == "" {
			continue
		}
		out = append(out, FoodProduct{
			Name:     p.ProductName,
			Brand:    p.Brands,
			Calories: p.Nutriments.EnergyKcal100g,
			Protein:  p.Nutriments.Proteins100g,
			Carbs:    p.Nutriments.Carbs100g,
			Fats:     p.Nutriments.Fat100g,
		})
	}
	return out, nil
}
